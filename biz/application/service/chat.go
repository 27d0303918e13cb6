package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/wire"
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/core_api"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/cst"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/mapper/conversation"
	mmsg "github.com/veritas-legal/lexaid-core-api/biz/infra/mapper/message"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/util"
	"github.com/veritas-legal/lexaid-core-api/pkg/ac"
	"github.com/veritas-legal/lexaid-core-api/pkg/errorx"
	"github.com/veritas-legal/lexaid-core-api/pkg/logs"
	"github.com/veritas-legal/lexaid-core-api/pkg/safego"
	"github.com/veritas-legal/lexaid-core-api/types/errno"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// 回复模板, 固定话术包裹用户输入, 不接大模型
const (
	replyPrefix = "I am not a lawyer, but here is general information based on your question: "
	replySuffix = " — For legal advice, consult a licensed attorney in your jurisdiction."
)

type IChatService interface {
	Chat(ctx context.Context, req *core_api.ChatReq) (*core_api.ChatResp, error)
}

type ChatService struct {
	ConversationMapper conversation.MongoMapper
	MessageMapper      mmsg.MongoMapper
	Sensitive          []string
}

var ChatServiceSet = wire.NewSet(
	wire.Struct(new(ChatService), "*"),
	wire.Bind(new(IChatService), new(*ChatService)),
)

// Chat 处理一轮对话
// 落库是尽力而为的: mongo不可用时仍然返回回复, 会话id用占位值或调用方传入的值
func (s *ChatService) Chat(ctx context.Context, req *core_api.ChatReq) (*core_api.ChatResp, error) {
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return nil, errorx.New(errno.ChatEmptyMessageErrCode)
	}
	if hit, words := ac.AcSearch(msg, s.Sensitive, true); hit {
		logs.CtxInfof(ctx, "chat message blocked, words=%v", words)
		return nil, errorx.New(errno.ChatBlockedContentErrCode)
	}

	reply := replyPrefix + msg + replySuffix

	// 没有会话id则新建会话, 标题取消息前若干个字符
	cid := req.ConversationId
	var oid bson.ObjectID
	degraded := false
	if cid == "" {
		title := util.TruncateRunes(msg, cst.MaxTitleRunes)
		if title == "" {
			title = cst.DefaultConversationTitle
		}
		c, err := s.ConversationMapper.CreateNewConversation(ctx, title)
		if err != nil {
			logs.CtxInfof(ctx, "create conversation degraded: %s", errorx.ErrorWithoutStack(err))
			degraded = true
		} else {
			oid = c.ConversationId
			cid = oid.Hex()
		}
	} else {
		o, err := bson.ObjectIDFromHex(cid)
		if err != nil {
			// 传入的会话id不是合法ObjectID, 无法落库, 原样带回
			logs.CtxInfof(ctx, "conversation id %q is not an object id, skip persist", cid)
			degraded = true
		} else {
			oid = o
		}
	}

	// 成对持久化用户消息和助手消息, 失败只降级不报错
	if !degraded {
		if err := s.persistTurn(ctx, oid, msg, reply); err != nil {
			logs.CtxInfof(ctx, "persist chat turn degraded: %s", errorx.ErrorWithoutStack(err))
			degraded = true
		} else {
			safego.Go(ctx, func() {
				_ = s.ConversationMapper.Touch(context.WithoutCancel(ctx), oid)
			})
		}
	}

	if cid == "" {
		cid = cst.TemporaryConversationId
	}
	return &core_api.ChatResp{Resp: util.Success(), ConversationId: cid, Reply: reply}, nil
}

func (s *ChatService) persistTurn(ctx context.Context, cid bson.ObjectID, userMsg, reply string) error {
	now := time.Now()
	user := &mmsg.Message{
		MessageId:      bson.NewObjectID(),
		ConversationId: cid,
		Role:           mmsg.RoleStoI[cst.User],
		Content:        userMsg,
		CreateTime:     now,
		UpdateTime:     now,
	}
	if err := s.MessageMapper.InsertOne(ctx, user); err != nil {
		return err
	}
	assistant := &mmsg.Message{
		MessageId:      bson.NewObjectID(),
		ConversationId: cid,
		Role:           mmsg.RoleStoI[cst.Assistant],
		Content:        reply,
		CreateTime:     now,
		UpdateTime:     now,
	}
	return s.MessageMapper.InsertOne(ctx, assistant)
}
