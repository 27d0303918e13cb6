package service

import (
	"context"

	"github.com/google/wire"
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/core_api"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/config"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/database"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/util"
	"github.com/veritas-legal/lexaid-core-api/pkg/errorx"
)

const collectionPreview = 10

type ISystemService interface {
	Root(ctx context.Context) (*core_api.RootResp, error)
	Test(ctx context.Context) (*core_api.TestResp, error)
}

type SystemService struct {
	DB *database.Mongo
}

var SystemServiceSet = wire.NewSet(
	wire.Struct(new(SystemService), "*"),
	wire.Bind(new(ISystemService), new(*SystemService)),
)

func (s *SystemService) Root(_ context.Context) (*core_api.RootResp, error) {
	return &core_api.RootResp{Resp: util.Success(), Message: "LexAid Legal Assistant Backend Running"}, nil
}

// Test 诊断接口, 报告mongo连通性和环境配置, 不参与业务
func (s *SystemService) Test(ctx context.Context) (*core_api.TestResp, error) {
	c := config.GetConfig()
	resp := &core_api.TestResp{
		Resp:             util.Success(),
		Backend:          "running",
		Database:         "not configured",
		DatabaseURL:      "not set",
		DatabaseName:     "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if c != nil {
		if c.Mongo.URL != "" {
			resp.DatabaseURL = "set"
		}
		if c.Mongo.DB != "" {
			resp.DatabaseName = c.Mongo.DB
		}
	}
	if s.DB == nil {
		return resp, nil
	}

	if err := s.DB.Ping(ctx); err != nil {
		resp.Database = "unavailable: " + util.TruncateRunes(errorx.ErrorWithoutStack(err), 80)
		return resp, nil
	}
	resp.Database = "connected"
	resp.ConnectionStatus = "connected"
	if names, err := s.DB.ListCollections(ctx, collectionPreview); err != nil {
		resp.Database = "connected but error: " + util.TruncateRunes(errorx.ErrorWithoutStack(err), 80)
	} else if names != nil {
		resp.Collections = names
	}
	return resp, nil
}
