package adaptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/basic"
)

type sampleResp struct {
	Resp    *basic.Response `json:"-"`
	Message string          `json:"message"`
	Cursor  string          `json:"cursor,omitempty"`
}

func TestMakeResponse(t *testing.T) {
	got := makeResponse(&sampleResp{
		Resp:    &basic.Response{Code: 200, Msg: "success"},
		Message: "hello",
	})
	require.NotNil(t, got)
	assert.EqualValues(t, 200, got["code"])
	assert.Equal(t, "success", got["msg"])

	data, ok := got["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hello", data["message"])
	// 零值且带omitempty的字段不出现, 且键名不含omitempty后缀
	_, ok = data["cursor"]
	assert.False(t, ok)
	_, ok = data["cursor,omitempty"]
	assert.False(t, ok)
}

func TestMakeResponseDefaultResp(t *testing.T) {
	got := makeResponse(&sampleResp{Message: "hello", Cursor: "abc"})
	require.NotNil(t, got)
	assert.EqualValues(t, 200, got["code"])
	assert.Equal(t, "success", got["msg"])

	data := got["data"].(map[string]any)
	assert.Equal(t, "abc", data["cursor"])
}

func TestMakeResponseNil(t *testing.T) {
	assert.Nil(t, makeResponse(nil))
	var empty *sampleResp
	assert.Nil(t, makeResponse(empty))
	assert.Nil(t, makeResponse("not a struct pointer"))
}
