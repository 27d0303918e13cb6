package database

import (
	"context"
	"time"

	"github.com/veritas-legal/lexaid-core-api/biz/infra/config"
	"github.com/veritas-legal/lexaid-core-api/pkg/errorx"
	"github.com/veritas-legal/lexaid-core-api/pkg/logs"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const pingTimeout = 2 * time.Second

// Mongo 持有原生mongo客户端, 仅用于/test诊断(连通性和集合列表)
// 业务读写走biz/infra/mapper下的各mapper
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo 构造诊断用的mongo客户端, 未配置或连接失败返回nil, 由上层降级
func NewMongo(c *config.Config) *Mongo {
	if c.Mongo.URL == "" {
		logs.Infof("[database] mongo not configured, diagnostics degraded")
		return nil
	}
	client, err := mongo.Connect(options.Client().ApplyURI(c.Mongo.URL))
	if err != nil {
		logs.Errorf("[database] mongo connect err: %s", errorx.ErrorWithoutStack(err))
		return nil
	}
	return &Mongo{client: client, db: client.Database(c.Mongo.DB)}
}

// Ping 检查mongo连通性
func (m *Mongo) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return m.client.Ping(ctx, readpref.Primary())
}

// ListCollections 返回最多limit个集合名
func (m *Mongo) ListCollections(ctx context.Context, limit int) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}
