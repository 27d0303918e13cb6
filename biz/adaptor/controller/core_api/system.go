package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/veritas-legal/lexaid-core-api/biz/adaptor"
	"github.com/veritas-legal/lexaid-core-api/provider"
)

// Root 服务横幅
// @router / [GET]
func Root(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().SystemService.Root(adaptor.InjectContext(ctx, c))
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

// Test 数据库连通性诊断
// @router /test [GET]
func Test(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().SystemService.Test(adaptor.InjectContext(ctx, c))
	adaptor.PostProcess(ctx, c, nil, resp, err)
}
