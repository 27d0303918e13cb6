package errno

import (
	"net/http"

	"github.com/veritas-legal/lexaid-core-api/pkg/errorx/code"
)

const (
	ChatEmptyMessageErrCode   = 10001
	ChatBlockedContentErrCode = 10002
)

func init() {
	code.Register(
		ChatEmptyMessageErrCode,
		"Message cannot be empty",
		code.WithAffectStability(false),
		code.WithHTTPStatus(http.StatusBadRequest),
	)
	code.Register(
		ChatBlockedContentErrCode,
		"Message contains terms we cannot assist with",
		code.WithAffectStability(false),
	)
}
