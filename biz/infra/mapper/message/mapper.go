package message

import (
	"context"

	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/basic"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/config"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/cst"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/util"
	"github.com/veritas-legal/lexaid-core-api/pkg/errorx"
	"github.com/veritas-legal/lexaid-core-api/pkg/logs"
	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var _ MongoMapper = (*mongoMapper)(nil)

const collection = "message"

type MongoMapper interface {
	InsertOne(ctx context.Context, msg *Message) error
	ListMessages(ctx context.Context, conversation string, page *basic.Page) (msgs []*Message, hasMore bool, err error)
}

type mongoMapper struct {
	conn *mon.Model
}

// NewMessageMongoMapper 构造message集合的mapper
// mongo未配置或模型创建失败时返回空连接的mapper, 所有调用返回cst.ErrMongoNotAvailable
func NewMessageMongoMapper(config *config.Config) MongoMapper {
	if config.Mongo.URL == "" {
		logs.Infof("[mapper] [message] mongo not configured, running degraded")
		return &mongoMapper{}
	}
	conn, err := mon.NewModel(config.Mongo.URL, config.Mongo.DB, collection)
	if err != nil {
		logs.Errorf("[mapper] [message] new model err: %s", errorx.ErrorWithoutStack(err))
		return &mongoMapper{}
	}
	return &mongoMapper{conn: conn}
}

// InsertOne 插入一条msg
func (m *mongoMapper) InsertOne(ctx context.Context, msg *Message) error {
	if m.conn == nil {
		return cst.ErrMongoNotAvailable
	}
	_, err := m.conn.InsertOne(ctx, msg)
	return err
}

// ListMessages 游标分页获取对话内的消息, id倒序
func (m *mongoMapper) ListMessages(ctx context.Context, conversation string, page *basic.Page) (msgs []*Message, hasMore bool, err error) {
	if m.conn == nil {
		return nil, false, cst.ErrMongoNotAvailable
	}
	ocid, err := bson.ObjectIDFromHex(conversation)
	if err != nil {
		return nil, false, err
	}
	opts := options.Find().SetSort(bson.M{cst.Id: -1}).SetLimit(page.GetSize() + 1)
	filter := bson.M{cst.ConversationId: ocid, cst.Status: bson.M{cst.NE: cst.DeletedStatus}}
	if cursor := page.GetCursor(); cursor != "" { // 取id更小的一页
		ocur, err := bson.ObjectIDFromHex(cursor)
		if err != nil {
			return nil, false, err
		}
		filter[cst.Id] = bson.M{cst.LT: ocur}
	}
	if err = m.conn.Find(ctx, &msgs, filter, opts); err != nil {
		logs.CtxErrorf(ctx, "[mapper] [message] find err: %s", errorx.ErrorWithoutStack(err))
		return nil, false, err
	}
	msgs, hasMore = util.SplitAndHasMore(msgs, page)
	return msgs, hasMore, err
}
