package conversation

import (
	"context"
	"time"

	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/basic"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/config"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/cst"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/util"
	"github.com/veritas-legal/lexaid-core-api/pkg/errorx"
	"github.com/veritas-legal/lexaid-core-api/pkg/logs"
	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var _ MongoMapper = (*mongoMapper)(nil)

const collection = "conversation"

type MongoMapper interface {
	CreateNewConversation(ctx context.Context, title string) (c *Conversation, err error)
	ListConversations(ctx context.Context, page *basic.Page) (cs []*Conversation, hasMore bool, err error)
	Touch(ctx context.Context, cid bson.ObjectID) (err error)
}

type mongoMapper struct {
	conn *mon.Model
}

// NewConversationMongoMapper 构造conversation集合的mapper
// mongo未配置或模型创建失败时返回空连接的mapper, 所有调用返回cst.ErrMongoNotAvailable
func NewConversationMongoMapper(config *config.Config) MongoMapper {
	if config.Mongo.URL == "" {
		logs.Infof("[mapper] [conversation] mongo not configured, running degraded")
		return &mongoMapper{}
	}
	conn, err := mon.NewModel(config.Mongo.URL, config.Mongo.DB, collection)
	if err != nil {
		logs.Errorf("[mapper] [conversation] new model err: %s", errorx.ErrorWithoutStack(err))
		return &mongoMapper{}
	}
	return &mongoMapper{conn: conn}
}

// CreateNewConversation 创建一个新的对话
func (m *mongoMapper) CreateNewConversation(ctx context.Context, title string) (c *Conversation, err error) {
	if m.conn == nil {
		return nil, cst.ErrMongoNotAvailable
	}

	now := time.Now()
	c = &Conversation{
		ConversationId: bson.NewObjectID(),
		Title:          title,
		CreateTime:     now,
		UpdateTime:     now,
	}

	_, err = m.conn.InsertOne(ctx, c)
	return c, err
}

// ListConversations 分页查询对话列表, 创建时间倒序
func (m *mongoMapper) ListConversations(ctx context.Context, page *basic.Page) (cs []*Conversation, hasMore bool, err error) {
	if m.conn == nil {
		return nil, false, cst.ErrMongoNotAvailable
	}

	var total int64
	opts := util.BuildFindOption(page).SetSort(bson.M{cst.CreateTime: -1})
	filter := bson.M{cst.Status: bson.M{cst.NE: cst.DeletedStatus}}
	if err = m.conn.Find(ctx, &cs, filter, opts); err != nil {
		logs.CtxErrorf(ctx, "[mapper] [conversation] find err: %s", errorx.ErrorWithoutStack(err))
		return nil, false, err
	}
	if total, err = m.conn.CountDocuments(ctx, filter); err != nil {
		return nil, false, err
	}
	return cs, util.HasMore(total, page), err
}

// Touch 刷新对话的更新时间
func (m *mongoMapper) Touch(ctx context.Context, cid bson.ObjectID) (err error) {
	if m.conn == nil {
		return cst.ErrMongoNotAvailable
	}

	filter := bson.M{cst.Id: cid, cst.Status: bson.M{cst.NE: cst.DeletedStatus}}
	_, err = m.conn.UpdateOne(ctx, filter, bson.M{cst.Set: bson.M{cst.UpdateTime: time.Now()}})
	return err
}
