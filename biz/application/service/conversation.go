package service

import (
	"context"

	"github.com/google/wire"
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/basic"
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/core_api"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/mapper/conversation"
	mmsg "github.com/veritas-legal/lexaid-core-api/biz/infra/mapper/message"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/util"
	"github.com/veritas-legal/lexaid-core-api/pkg/errorx"
	"github.com/veritas-legal/lexaid-core-api/pkg/logs"
	"github.com/veritas-legal/lexaid-core-api/types/errno"
)

type IConversationService interface {
	ListConversations(ctx context.Context, req *core_api.ListConversationsReq) (*core_api.ListConversationsResp, error)
	ListMessages(ctx context.Context, req *core_api.ListMessagesReq) (*core_api.ListMessagesResp, error)
}

type ConversationService struct {
	ConversationMapper conversation.MongoMapper
	MessageMapper      mmsg.MongoMapper
}

var ConversationServiceSet = wire.NewSet(
	wire.Struct(new(ConversationService), "*"),
	wire.Bind(new(IConversationService), new(*ConversationService)),
)

// ListConversations 分页获取会话列表, 创建时间倒序
func (s *ConversationService) ListConversations(ctx context.Context, req *core_api.ListConversationsReq) (*core_api.ListConversationsResp, error) {
	page := &basic.Page{}
	if req.Page > 0 {
		page.Page = &req.Page
	}
	if req.Size > 0 {
		page.Size = &req.Size
	}

	conversations, hasMore, err := s.ConversationMapper.ListConversations(ctx, page)
	if err != nil {
		logs.CtxErrorf(ctx, "list conversations error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ConversationListErrCode)
	}
	items := make([]*core_api.Conversation, len(conversations))
	for i, conv := range conversations {
		items[i] = &core_api.Conversation{
			ConversationId: conv.ConversationId.Hex(),
			Title:          conv.Title,
			CreateTime:     conv.CreateTime.Unix(),
			UpdateTime:     conv.UpdateTime.Unix(),
		}
	}
	return &core_api.ListConversationsResp{Resp: util.Success(), Conversations: items, HasMore: hasMore}, nil
}

// ListMessages 游标分页获取某个会话内的消息
func (s *ConversationService) ListMessages(ctx context.Context, req *core_api.ListMessagesReq) (*core_api.ListMessagesResp, error) {
	page := &basic.Page{}
	if req.Size > 0 {
		page.Size = &req.Size
	}
	if req.Cursor != "" {
		page.Cursor = &req.Cursor
	}

	msgs, hasMore, err := s.MessageMapper.ListMessages(ctx, req.ConversationId, page)
	if err != nil {
		logs.CtxErrorf(ctx, "list messages error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ConversationGetErrCode)
	}
	items := make([]*core_api.Message, len(msgs))
	for i, msg := range msgs {
		items[i] = &core_api.Message{
			MessageId:      msg.MessageId.Hex(),
			ConversationId: msg.ConversationId.Hex(),
			Role:           mmsg.RoleItoS[msg.Role],
			Content:        msg.Content,
			CreateTime:     msg.CreateTime.Unix(),
		}
	}
	resp := &core_api.ListMessagesResp{Resp: util.Success(), Messages: items, HasMore: hasMore}
	if len(msgs) > 0 {
		resp.Cursor = msgs[len(msgs)-1].MessageId.Hex()
	}
	return resp, nil
}
