package service

import (
	"context"

	"github.com/google/wire"
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/core_api"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/mapper/casestudy"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/mapper/plan"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/util"
	"github.com/veritas-legal/lexaid-core-api/pkg/errorx"
	"github.com/veritas-legal/lexaid-core-api/pkg/logs"
)

const (
	caseStudyLimit = 50
	planLimit      = 20
)

type IContentService interface {
	GetCaseStudies(ctx context.Context) (*core_api.GetCaseStudiesResp, error)
	GetPlans(ctx context.Context) (*core_api.GetPlansResp, error)
}

type ContentService struct {
	CaseStudyMapper casestudy.MongoMapper
	PlanMapper      plan.MongoMapper
}

var ContentServiceSet = wire.NewSet(
	wire.Struct(new(ContentService), "*"),
	wire.Bind(new(IContentService), new(*ContentService)),
)

// GetCaseStudies 返回案例列表
// 数据库里有定制案例时优先返回, 读取失败静默回落到内置默认值
func (s *ContentService) GetCaseStudies(ctx context.Context) (*core_api.GetCaseStudiesResp, error) {
	items := defaultCaseStudies
	docs, err := s.CaseStudyMapper.ListCaseStudies(ctx, caseStudyLimit)
	if err != nil {
		logs.CtxInfof(ctx, "case study overlay skipped: %s", errorx.ErrorWithoutStack(err))
	} else if len(docs) > 0 {
		items = make([]*core_api.CaseStudy, len(docs))
		for i, d := range docs {
			metrics := d.Metrics
			if metrics == nil {
				metrics = []string{}
			}
			items[i] = &core_api.CaseStudy{
				Title:    d.Title,
				Industry: d.Industry,
				Summary:  d.Summary,
				Impact:   d.Impact,
				Metrics:  metrics,
			}
		}
	}
	return &core_api.GetCaseStudiesResp{Resp: util.Success(), CaseStudies: items}, nil
}

// GetPlans 返回套餐列表, 覆盖逻辑与案例一致
func (s *ContentService) GetPlans(ctx context.Context) (*core_api.GetPlansResp, error) {
	items := defaultPlans
	docs, err := s.PlanMapper.ListPlans(ctx, planLimit)
	if err != nil {
		logs.CtxInfof(ctx, "plan overlay skipped: %s", errorx.ErrorWithoutStack(err))
	} else if len(docs) > 0 {
		items = make([]*core_api.Plan, len(docs))
		for i, d := range docs {
			features := d.Features
			if features == nil {
				features = []string{}
			}
			items[i] = &core_api.Plan{
				Name:        d.Name,
				Price:       d.Price,
				Description: d.Description,
				Features:    features,
			}
		}
	}
	return &core_api.GetPlansResp{Resp: util.Success(), Plans: items}, nil
}

// 内置的营销内容, 数据库为空或不可用时兜底
var defaultCaseStudies = []*core_api.CaseStudy{
	{
		Title:    "Contract Review for SaaS Provider",
		Industry: "Technology",
		Summary:  "Automated early risk flags in MSAs and DPAs.",
		Impact:   "70% faster first-pass review",
		Metrics:  []string{"-70% review time", "+30% throughput", "99% clause coverage"},
	},
	{
		Title:    "Compliance Intake for HR Policies",
		Industry: "Healthcare",
		Summary:  "Answer common employee compliance questions.",
		Impact:   "Reduced legal tickets by 45%",
		Metrics:  []string{"45% fewer tickets", "24/7 availability"},
	},
	{
		Title:    "Discovery Q&A for Litigation Team",
		Industry: "Legal Services",
		Summary:  "Natural-language search over prior filings.",
		Impact:   "Improved first-draft quality",
		Metrics:  []string{"2x faster drafting", "Centralized knowledge"},
	},
}

var defaultPlans = []*core_api.Plan{
	{
		Name:        "Starter",
		Price:       "$29/mo",
		Description: "For solos and small teams exploring AI assistance.",
		Features: []string{
			"100 chats/mo",
			"Basic contract Q&A",
			"Email summaries",
			"Community support",
		},
	},
	{
		Name:        "Pro",
		Price:       "$99/mo",
		Description: "For growing teams that need faster reviews and guardrails.",
		Features: []string{
			"1000 chats/mo",
			"Clause extraction",
			"Upload + annotate PDFs",
			"SAML SSO",
		},
	},
	{
		Name:        "Enterprise",
		Price:       "Custom",
		Description: "Tailored deployments, private data, and advanced controls.",
		Features: []string{
			"Unlimited chats",
			"Private knowledge base",
			"SOC2, HIPAA options",
			"Dedicated support",
		},
	},
}
