package code

import (
	"net/http"
	"sync"
)

// 业务错误码注册表
// 各模块在init()中注册自己的错误码, errorx据此生成用户可见的msg
// 默认情况下业务错误以HTTP 200返回, 通过WithHTTPStatus可以指定参数校验类错误的状态码

type definition struct {
	msg             string
	httpStatus      int
	affectStability bool
}

var (
	mu       sync.RWMutex
	registry = make(map[int32]*definition)
)

type Option func(*definition)

// WithAffectStability 标记该错误是否计入服务稳定性
func WithAffectStability(affect bool) Option {
	return func(d *definition) {
		d.affectStability = affect
	}
}

// WithHTTPStatus 指定该错误码对应的HTTP状态码
func WithHTTPStatus(status int) Option {
	return func(d *definition) {
		d.httpStatus = status
	}
}

func Register(code int32, msg string, opts ...Option) {
	d := &definition{msg: msg, httpStatus: http.StatusOK}
	for _, opt := range opts {
		opt(d)
	}
	mu.Lock()
	registry[code] = d
	mu.Unlock()
}

// MsgOf 返回错误码注册时的消息模板, 未注册返回兜底消息
func MsgOf(code int32) string {
	mu.RLock()
	defer mu.RUnlock()
	if d, ok := registry[code]; ok {
		return d.msg
	}
	return "unknown error"
}

// HTTPStatusOf 返回错误码对应的HTTP状态码, 未注册默认200
func HTTPStatusOf(code int32) int {
	mu.RLock()
	defer mu.RUnlock()
	if d, ok := registry[code]; ok {
		return d.httpStatus
	}
	return http.StatusOK
}

// AffectStability 返回该错误是否计入服务稳定性
func AffectStability(code int32) bool {
	mu.RLock()
	defer mu.RUnlock()
	if d, ok := registry[code]; ok {
		return d.affectStability
	}
	return false
}
