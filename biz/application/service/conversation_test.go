package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/core_api"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/cst"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/mapper/conversation"
	mmsg "github.com/veritas-legal/lexaid-core-api/biz/infra/mapper/message"
	"github.com/veritas-legal/lexaid-core-api/pkg/errorx"
	"github.com/veritas-legal/lexaid-core-api/types/errno"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestListConversations(t *testing.T) {
	now := time.Now()
	cm := &stubConversationMapper{
		list: []*conversation.Conversation{
			{ConversationId: bson.NewObjectID(), Title: "lease question", CreateTime: now, UpdateTime: now},
			{ConversationId: bson.NewObjectID(), Title: "nda review", CreateTime: now.Add(-time.Hour), UpdateTime: now},
		},
		hasMore: true,
	}
	svc := &ConversationService{ConversationMapper: cm, MessageMapper: &stubMessageMapper{}}

	resp, err := svc.ListConversations(context.Background(), &core_api.ListConversationsReq{Page: 1, Size: 2})
	require.NoError(t, err)
	require.Len(t, resp.Conversations, 2)
	assert.True(t, resp.HasMore)
	assert.Equal(t, cm.list[0].ConversationId.Hex(), resp.Conversations[0].ConversationId)
	assert.Equal(t, "lease question", resp.Conversations[0].Title)
	assert.Equal(t, now.Unix(), resp.Conversations[0].CreateTime)
}

func TestListConversationsError(t *testing.T) {
	cm := &stubConversationMapper{listErr: errors.New("find failed")}
	svc := &ConversationService{ConversationMapper: cm, MessageMapper: &stubMessageMapper{}}

	_, err := svc.ListConversations(context.Background(), &core_api.ListConversationsReq{})
	require.Error(t, err)
	var statusErr errorx.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.EqualValues(t, errno.ConversationListErrCode, statusErr.Code())
}

func TestListMessages(t *testing.T) {
	now := time.Now()
	cid := bson.NewObjectID()
	mm := &stubMessageMapper{
		list: []*mmsg.Message{
			{MessageId: bson.NewObjectID(), ConversationId: cid, Role: mmsg.RoleStoI[cst.Assistant], Content: "reply", CreateTime: now},
			{MessageId: bson.NewObjectID(), ConversationId: cid, Role: mmsg.RoleStoI[cst.User], Content: "question", CreateTime: now},
		},
		hasMore: true,
	}
	svc := &ConversationService{ConversationMapper: &stubConversationMapper{}, MessageMapper: mm}

	resp, err := svc.ListMessages(context.Background(), &core_api.ListMessagesReq{ConversationId: cid.Hex(), Size: 2})
	require.NoError(t, err)
	require.Len(t, resp.Messages, 2)
	assert.True(t, resp.HasMore)
	assert.Equal(t, cst.Assistant, resp.Messages[0].Role)
	assert.Equal(t, cst.User, resp.Messages[1].Role)
	// 游标取最后一条消息的id, 供下一页的_id < cursor过滤
	assert.Equal(t, mm.list[1].MessageId.Hex(), resp.Cursor)
}

func TestListMessagesEmpty(t *testing.T) {
	svc := &ConversationService{ConversationMapper: &stubConversationMapper{}, MessageMapper: &stubMessageMapper{}}

	resp, err := svc.ListMessages(context.Background(), &core_api.ListMessagesReq{ConversationId: bson.NewObjectID().Hex()})
	require.NoError(t, err)
	assert.Empty(t, resp.Messages)
	assert.False(t, resp.HasMore)
	assert.Empty(t, resp.Cursor)
}

func TestListMessagesError(t *testing.T) {
	mm := &stubMessageMapper{listErr: cst.ErrMongoNotAvailable}
	svc := &ConversationService{ConversationMapper: &stubConversationMapper{}, MessageMapper: mm}

	_, err := svc.ListMessages(context.Background(), &core_api.ListMessagesReq{ConversationId: "whatever"})
	require.Error(t, err)
	var statusErr errorx.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.EqualValues(t, errno.ConversationGetErrCode, statusErr.Code())
}
