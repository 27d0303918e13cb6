package conversation

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Conversation struct {
	ConversationId bson.ObjectID `json:"conversation_id" bson:"_id"`
	Title          string        `json:"title" bson:"title"`
	CreateTime     time.Time     `json:"create_time" bson:"create_time"`
	UpdateTime     time.Time     `json:"update_time" bson:"update_time"`
	DeleteTime     time.Time     `json:"delete_time,omitempty" bson:"delete_time,omitempty"`
	Status         int32         `json:"status" bson:"status"`
}
