package core_api

import (
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/basic"
)

type RootResp struct {
	Resp    *basic.Response `json:"-"`
	Message string          `json:"message"`
}

type TestResp struct {
	Resp             *basic.Response `json:"-"`
	Backend          string          `json:"backend"`
	Database         string          `json:"database"`
	DatabaseURL      string          `json:"database_url"`
	DatabaseName     string          `json:"database_name"`
	ConnectionStatus string          `json:"connection_status"`
	Collections      []string        `json:"collections"`
}
