package plan

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Plan 订阅套餐, 存在数据库记录时覆盖内置默认值
type Plan struct {
	PlanId      bson.ObjectID `json:"plan_id" bson:"_id"`
	Name        string        `json:"name" bson:"name"`
	Price       string        `json:"price" bson:"price"`
	Description string        `json:"description" bson:"description"`
	Features    []string      `json:"features,omitempty" bson:"features,omitempty"`
}
