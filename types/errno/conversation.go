package errno

import (
	"github.com/veritas-legal/lexaid-core-api/pkg/errorx/code"
)

const (
	ConversationListErrCode = 30001
	ConversationGetErrCode  = 30002
)

func init() {
	code.Register(
		ConversationListErrCode,
		"failed to list conversations",
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationGetErrCode,
		"failed to load conversation history",
		code.WithAffectStability(false),
	)
}
