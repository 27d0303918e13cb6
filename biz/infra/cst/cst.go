package cst

import "errors"

const (
	// Assistant is the role of the assistant, means the message was produced by the backend.
	Assistant = "assistant"
	// User is the role of a user, means the message is a user message.
	User = "user"
	// System is the role of a system, means the message is a system message.
	System = "system"
)

// 对话相关默认值
const (
	// TemporaryConversationId 持久化失败时返回给前端的占位会话id
	TemporaryConversationId = "temporary"
	// DefaultConversationTitle 无法从首条消息截取标题时的默认标题
	DefaultConversationTitle = "New Conversation"
	// MaxTitleRunes 会话标题取首条消息的前若干个字符
	MaxTitleRunes = 60
)

// ErrMongoNotAvailable mongo未配置或连接失败时mapper返回的错误, 上层据此降级
var ErrMongoNotAvailable = errors.New("mongo is not available")

// mapper层字段枚举
const (
	Id             = "_id"
	ConversationId = "conversation_id"
	Title          = "title"
	Role           = "role"
	Content        = "content"
	CreateTime     = "create_time"
	UpdateTime     = "update_time"
	DeleteTime     = "delete_time"

	Status        = "status"
	DeletedStatus = -1

	NE  = "$ne"
	LT  = "$lt"
	Set = "$set"
)
