package errorx

import (
	"fmt"
	"strings"

	"github.com/veritas-legal/lexaid-core-api/pkg/errorx/code"
)

// StatusError 是带业务码的错误
// 最佳实践:
// - 业务处理链路的末端返回StatusError, PostProcess据此给出用户友好的响应
// - 错误码及消息模板在types/errno中预注册
// - 链路中间的error照常包装传递
type StatusError interface {
	error
	Code() int32
	Msg() string
}

type statusError struct {
	code  int32
	msg   string
	cause error
}

func (e *statusError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("code=%d, msg=%s, cause=%s", e.code, e.msg, e.cause.Error())
	}
	return fmt.Sprintf("code=%d, msg=%s", e.code, e.msg)
}

func (e *statusError) Code() int32 {
	return e.code
}

func (e *statusError) Msg() string {
	return e.msg
}

func (e *statusError) Unwrap() error {
	return e.cause
}

type Option func(*statusError)

// KV 替换消息模板中的{key}占位符
func KV(key, value string) Option {
	return func(e *statusError) {
		e.msg = strings.ReplaceAll(e.msg, "{"+key+"}", value)
	}
}

// New 根据预注册的错误码构造StatusError
func New(c int32, opts ...Option) error {
	e := &statusError{code: c, msg: code.MsgOf(c)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WrapByCode 将err包装为指定业务码的StatusError, err为nil时返回nil
func WrapByCode(err error, c int32, opts ...Option) error {
	if err == nil {
		return nil
	}
	e := &statusError{code: c, msg: code.MsgOf(c), cause: err}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ErrorWithoutStack 返回不携带堆栈的错误描述, 用于日志
func ErrorWithoutStack(err error) string {
	if err == nil {
		return "<nil>"
	}
	msg := err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return msg
}
