package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", TruncateRunes("abc", 5))
	assert.Equal(t, "abc", TruncateRunes("abcde", 3))
	// 多字节字符按rune截断
	assert.Equal(t, "法律顾", TruncateRunes("法律顾问助手", 3))
	assert.Equal(t, "", TruncateRunes("", 3))
}

func TestJSONF(t *testing.T) {
	assert.Equal(t, `{"a":1}`, JSONF(map[string]int{"a": 1}))
	assert.Equal(t, "null", JSONF(nil))
}
