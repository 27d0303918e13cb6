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

// Chat 法律助手对话
// @router /api/chat [POST]
func Chat(ctx context.Context, c *app.RequestContext) {
	var req core_api.ChatReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, errorx.WrapByCode(err, errno.ParamErrCode))
		return
	}
	resp, err := provider.Get().ChatService.Chat(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
