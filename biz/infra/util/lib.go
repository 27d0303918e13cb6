package util

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/basic"
)

// Success 返回成功的basic.Response指针
func Success() *basic.Response {
	return &basic.Response{
		Code: 200,
		Msg:  "success",
	}
}

// JSONF 将v序列化为json字符串, 仅用于日志
func JSONF(v any) string {
	s, err := sonic.MarshalString(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return s
}

// TruncateRunes 按rune截断字符串, 避免截断多字节字符
func TruncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
