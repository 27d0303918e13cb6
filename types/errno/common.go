package errno

import (
	"net/http"

	"github.com/veritas-legal/lexaid-core-api/pkg/errorx/code"
)

const (
	ParamErrCode       = 1001
	UnImplementErrCode = 888
)

func init() {
	code.Register(
		ParamErrCode,
		"invalid request parameters",
		code.WithAffectStability(false),
		code.WithHTTPStatus(http.StatusBadRequest),
	)
	code.Register(
		UnImplementErrCode,
		"not implemented yet",
		code.WithAffectStability(true),
	)
}
