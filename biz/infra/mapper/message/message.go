package message

import (
	"time"

	"github.com/veritas-legal/lexaid-core-api/biz/infra/cst"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	RoleStoI = map[string]int32{cst.System: 0, cst.Assistant: 1, cst.User: 2}
	RoleItoS = map[int32]string{0: cst.System, 1: cst.Assistant, 2: cst.User}
)

// Message 一条消息, 归属于用户或助手
// conversation_id只是引用, 不做外键校验
type Message struct {
	MessageId      bson.ObjectID `json:"message_id" bson:"_id"`                              // 主键
	ConversationId bson.ObjectID `json:"conversation_id" bson:"conversation_id"`             // 归属的对话id
	Role           int32         `json:"role" bson:"role"`                                   // 角色, system/assistant/user, 依次为0,1,2
	Content        string        `json:"content" bson:"content"`                             // 消息内容
	CreateTime     time.Time     `json:"create_time" bson:"create_time"`                     // 创建时间
	UpdateTime     time.Time     `json:"update_time" bson:"update_time"`                     // 更新时间
	DeleteTime     time.Time     `json:"delete_time,omitempty" bson:"delete_time,omitempty"` // 删除时间
	Status         int32         `json:"status" bson:"status"`                               // 状态, 默认0, 删除-1
}
