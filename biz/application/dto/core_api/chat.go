package core_api

import (
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/basic"
)

type ChatReq struct {
	ConversationId string `json:"conversation_id,omitempty"`
	Message        string `json:"message"`
}

type ChatResp struct {
	Resp           *basic.Response `json:"-"`
	ConversationId string          `json:"conversation_id"`
	Reply          string          `json:"reply"`
}
