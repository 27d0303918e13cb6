package provider

import (
	"github.com/google/wire"
	"github.com/veritas-legal/lexaid-core-api/biz/application/service"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/config"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/database"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/mapper/casestudy"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/mapper/conversation"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/mapper/message"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/mapper/plan"
	"github.com/veritas-legal/lexaid-core-api/pkg/ac"
)

var provider *Provider

func Init() {
	var err error
	provider, err = newProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config              *config.Config
	ChatService         service.IChatService
	ContentService      service.IContentService
	ConversationService service.IConversationService
	SystemService       service.ISystemService
}

func Get() *Provider {
	return provider
}

func newProvider() (*Provider, error) {
	cfg := config.GetConfig()
	if cfg == nil {
		var err error
		if cfg, err = config.NewConfig(); err != nil {
			return nil, err
		}
	}
	if len(cfg.Sensitive) > 0 {
		if err := ac.InitAc(cfg.Sensitive); err != nil {
			return nil, err
		}
	}

	conversationMapper := conversation.NewConversationMongoMapper(cfg)
	messageMapper := message.NewMessageMongoMapper(cfg)
	caseStudyMapper := casestudy.NewCaseStudyMongoMapper(cfg)
	planMapper := plan.NewPlanMongoMapper(cfg)
	db := database.NewMongo(cfg)

	return &Provider{
		Config: cfg,
		ChatService: &service.ChatService{
			ConversationMapper: conversationMapper,
			MessageMapper:      messageMapper,
			Sensitive:          cfg.Sensitive,
		},
		ContentService: &service.ContentService{
			CaseStudyMapper: caseStudyMapper,
			PlanMapper:      planMapper,
		},
		ConversationService: &service.ConversationService{
			ConversationMapper: conversationMapper,
			MessageMapper:      messageMapper,
		},
		SystemService: &service.SystemService{DB: db},
	}, nil
}

var ApplicationSet = wire.NewSet(
	service.ChatServiceSet,
	service.ContentServiceSet,
	service.ConversationServiceSet,
	service.SystemServiceSet,
)

var InfraSet = wire.NewSet(
	config.NewConfig,
	database.NewMongo,
	conversation.NewConversationMongoMapper,
	message.NewMessageMongoMapper,
	casestudy.NewCaseStudyMongoMapper,
	plan.NewPlanMongoMapper,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfraSet,
)
