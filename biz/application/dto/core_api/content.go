package core_api

import (
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/basic"
)

type CaseStudy struct {
	Title    string   `json:"title"`
	Industry string   `json:"industry"`
	Summary  string   `json:"summary"`
	Impact   string   `json:"impact"`
	Metrics  []string `json:"metrics"`
}

type GetCaseStudiesResp struct {
	Resp        *basic.Response `json:"-"`
	CaseStudies []*CaseStudy    `json:"caseStudies"`
}

type Plan struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

type GetPlansResp struct {
	Resp  *basic.Response `json:"-"`
	Plans []*Plan         `json:"plans"`
}
