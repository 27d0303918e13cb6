package casestudy

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CaseStudy 营销页案例, 存在数据库记录时覆盖内置默认值
type CaseStudy struct {
	CaseStudyId bson.ObjectID `json:"case_study_id" bson:"_id"`
	Title       string        `json:"title" bson:"title"`
	Industry    string        `json:"industry" bson:"industry"`
	Summary     string        `json:"summary" bson:"summary"`
	Impact      string        `json:"impact" bson:"impact"`
	Metrics     []string      `json:"metrics,omitempty" bson:"metrics,omitempty"`
}
