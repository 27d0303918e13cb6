package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/veritas-legal/lexaid-core-api/biz/adaptor"
	"github.com/veritas-legal/lexaid-core-api/provider"
)

// CaseStudies 案例列表
// @router /api/case-studies [GET]
func CaseStudies(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().ContentService.GetCaseStudies(adaptor.InjectContext(ctx, c))
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

// Plans 套餐列表
// @router /api/plans [GET]
func Plans(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().ContentService.GetPlans(adaptor.InjectContext(ctx, c))
	adaptor.PostProcess(ctx, c, nil, resp, err)
}
