package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/veritas-legal/lexaid-core-api/biz/adaptor"
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/core_api"
	"github.com/veritas-legal/lexaid-core-api/pkg/errorx"
	"github.com/veritas-legal/lexaid-core-api/provider"
	"github.com/veritas-legal/lexaid-core-api/types/errno"
)

// ListConversations 会话列表
// @router /api/conversations [GET]
func ListConversations(ctx context.Context, c *app.RequestContext) {
	var req core_api.ListConversationsReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, errorx.WrapByCode(err, errno.ParamErrCode))
		return
	}
	resp, err := provider.Get().ConversationService.ListConversations(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListMessages 会话内消息
// @router /api/conversations/:conversation_id/messages [GET]
func ListMessages(ctx context.Context, c *app.RequestContext) {
	var req core_api.ListMessagesReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, errorx.WrapByCode(err, errno.ParamErrCode))
		return
	}
	resp, err := provider.Get().ConversationService.ListMessages(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
