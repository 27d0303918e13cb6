package casestudy

import (
	"context"

	"github.com/veritas-legal/lexaid-core-api/biz/infra/config"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/cst"
	"github.com/veritas-legal/lexaid-core-api/pkg/errorx"
	"github.com/veritas-legal/lexaid-core-api/pkg/logs"
	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var _ MongoMapper = (*mongoMapper)(nil)

const collection = "casestudy"

type MongoMapper interface {
	ListCaseStudies(ctx context.Context, limit int64) (cs []*CaseStudy, err error)
}

type mongoMapper struct {
	conn *mon.Model
}

func NewCaseStudyMongoMapper(config *config.Config) MongoMapper {
	if config.Mongo.URL == "" {
		logs.Infof("[mapper] [casestudy] mongo not configured, running degraded")
		return &mongoMapper{}
	}
	conn, err := mon.NewModel(config.Mongo.URL, config.Mongo.DB, collection)
	if err != nil {
		logs.Errorf("[mapper] [casestudy] new model err: %s", errorx.ErrorWithoutStack(err))
		return &mongoMapper{}
	}
	return &mongoMapper{conn: conn}
}

// ListCaseStudies 取出最多limit条案例
func (m *mongoMapper) ListCaseStudies(ctx context.Context, limit int64) (cs []*CaseStudy, err error) {
	if m.conn == nil {
		return nil, cst.ErrMongoNotAvailable
	}
	if err = m.conn.Find(ctx, &cs, bson.M{}, options.Find().SetLimit(limit)); err != nil {
		return nil, err
	}
	return cs, nil
}
