package core_api

import (
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/basic"
)

type ListConversationsReq struct {
	Page int64 `query:"page"`
	Size int64 `query:"size"`
}

type Conversation struct {
	ConversationId string `json:"conversation_id"`
	Title          string `json:"title"`
	CreateTime     int64  `json:"create_time"`
	UpdateTime     int64  `json:"update_time"`
}

type ListConversationsResp struct {
	Resp          *basic.Response `json:"-"`
	Conversations []*Conversation `json:"conversations"`
	HasMore       bool            `json:"has_more"`
}

type ListMessagesReq struct {
	ConversationId string `path:"conversation_id"`
	Size           int64  `query:"size"`
	Cursor         string `query:"cursor"`
}

type Message struct {
	MessageId      string `json:"message_id"`
	ConversationId string `json:"conversation_id"`
	Role           string `json:"role"`
	Content        string `json:"content"`
	CreateTime     int64  `json:"create_time"`
}

type ListMessagesResp struct {
	Resp     *basic.Response `json:"-"`
	Messages []*Message      `json:"messages"`
	HasMore  bool            `json:"has_more"`
	Cursor   string          `json:"cursor,omitempty"`
}
