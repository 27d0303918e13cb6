package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/basic"
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/core_api"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/cst"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/mapper/conversation"
	mmsg "github.com/veritas-legal/lexaid-core-api/biz/infra/mapper/message"
	"github.com/veritas-legal/lexaid-core-api/pkg/ac"
	"github.com/veritas-legal/lexaid-core-api/pkg/errorx"
	"github.com/veritas-legal/lexaid-core-api/types/errno"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type stubConversationMapper struct {
	mu        sync.Mutex
	createErr error
	listErr   error
	created   *conversation.Conversation
	list      []*conversation.Conversation
	hasMore   bool
	touched   []bson.ObjectID
}

func (s *stubConversationMapper) CreateNewConversation(_ context.Context, title string) (*conversation.Conversation, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	now := time.Now()
	c := &conversation.Conversation{ConversationId: bson.NewObjectID(), Title: title, CreateTime: now, UpdateTime: now}
	s.created = c
	return c, nil
}

func (s *stubConversationMapper) ListConversations(_ context.Context, _ *basic.Page) ([]*conversation.Conversation, bool, error) {
	return s.list, s.hasMore, s.listErr
}

func (s *stubConversationMapper) Touch(_ context.Context, cid bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = append(s.touched, cid)
	return nil
}

type stubMessageMapper struct {
	mu        sync.Mutex
	insertErr error
	listErr   error
	inserted  []*mmsg.Message
	list      []*mmsg.Message
	hasMore   bool
}

func (s *stubMessageMapper) InsertOne(_ context.Context, msg *mmsg.Message) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserted = append(s.inserted, msg)
	return nil
}

func (s *stubMessageMapper) ListMessages(_ context.Context, _ string, _ *basic.Page) ([]*mmsg.Message, bool, error) {
	return s.list, s.hasMore, s.listErr
}

func newChatService(cm *stubConversationMapper, mm *stubMessageMapper) *ChatService {
	return &ChatService{ConversationMapper: cm, MessageMapper: mm}
}

func TestChatEmptyMessage(t *testing.T) {
	svc := newChatService(&stubConversationMapper{}, &stubMessageMapper{})
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := svc.Chat(context.Background(), &core_api.ChatReq{Message: input})
		require.Error(t, err)
		var statusErr errorx.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.EqualValues(t, errno.ChatEmptyMessageErrCode, statusErr.Code())
	}
}

func TestChatNewConversation(t *testing.T) {
	cm := &stubConversationMapper{}
	mm := &stubMessageMapper{}
	svc := newChatService(cm, mm)

	resp, err := svc.Chat(context.Background(), &core_api.ChatReq{Message: "Can my landlord keep my deposit?"})
	require.NoError(t, err)
	require.NotNil(t, cm.created)
	assert.Equal(t, cm.created.ConversationId.Hex(), resp.ConversationId)
	assert.Contains(t, resp.Reply, "Can my landlord keep my deposit?")
	assert.Equal(t, "Can my landlord keep my deposit?", cm.created.Title)

	mm.mu.Lock()
	defer mm.mu.Unlock()
	require.Len(t, mm.inserted, 2)
	assert.Equal(t, mmsg.RoleStoI[cst.User], mm.inserted[0].Role)
	assert.Equal(t, mmsg.RoleStoI[cst.Assistant], mm.inserted[1].Role)
	assert.Equal(t, cm.created.ConversationId, mm.inserted[0].ConversationId)
	assert.Equal(t, resp.Reply, mm.inserted[1].Content)
}

func TestChatTitleTruncated(t *testing.T) {
	cm := &stubConversationMapper{}
	svc := newChatService(cm, &stubMessageMapper{})

	long := ""
	for i := 0; i < 40; i++ {
		long += "abc"
	}
	_, err := svc.Chat(context.Background(), &core_api.ChatReq{Message: long})
	require.NoError(t, err)
	require.NotNil(t, cm.created)
	assert.Len(t, []rune(cm.created.Title), cst.MaxTitleRunes)
}

func TestChatDegradedNoDatabase(t *testing.T) {
	cm := &stubConversationMapper{createErr: cst.ErrMongoNotAvailable}
	mm := &stubMessageMapper{insertErr: cst.ErrMongoNotAvailable}
	svc := newChatService(cm, mm)

	resp, err := svc.Chat(context.Background(), &core_api.ChatReq{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, cst.TemporaryConversationId, resp.ConversationId)
	assert.Contains(t, resp.Reply, "hello")
}

func TestChatDegradedKeepsProvidedId(t *testing.T) {
	cid := bson.NewObjectID().Hex()
	mm := &stubMessageMapper{insertErr: errors.New("write failed")}
	svc := newChatService(&stubConversationMapper{}, mm)

	resp, err := svc.Chat(context.Background(), &core_api.ChatReq{ConversationId: cid, Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, cid, resp.ConversationId)
}

func TestChatNonObjectIdPassedThrough(t *testing.T) {
	mm := &stubMessageMapper{}
	svc := newChatService(&stubConversationMapper{}, mm)

	resp, err := svc.Chat(context.Background(), &core_api.ChatReq{ConversationId: "not-an-object-id", Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "not-an-object-id", resp.ConversationId)
	mm.mu.Lock()
	defer mm.mu.Unlock()
	assert.Empty(t, mm.inserted)
}

func TestChatBlockedContent(t *testing.T) {
	dict := []string{"forbidden topic"}
	require.NoError(t, ac.InitAc(dict))
	svc := newChatService(&stubConversationMapper{}, &stubMessageMapper{})
	svc.Sensitive = dict

	_, err := svc.Chat(context.Background(), &core_api.ChatReq{Message: "tell me about the Forbidden Topic"})
	require.Error(t, err)
	var statusErr errorx.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.EqualValues(t, errno.ChatBlockedContentErrCode, statusErr.Code())
}
