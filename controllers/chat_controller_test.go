package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"timepass_server/services"
	"timepass_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedBroadcast struct {
	room  string
	event string
}

type fakeBroadcaster struct {
	calls []recordedBroadcast
}

func (fb *fakeBroadcaster) BroadcastToRoom(namespace, room, event string, args ...interface{}) bool {
	fb.calls = append(fb.calls, recordedBroadcast{room: room, event: event})
	return true
}

func TestHandleSendMessageBroadcastsToRoom(t *testing.T) {
	ms := store.NewMemoryStore()
	live := &fakeBroadcaster{}
	controller := NewChatController(&services.ChatService{Store: ms}, live)

	body := `{"senderId":"u2","receiverId":"u1","text":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	controller.HandleSendMessage(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, live.calls, 1)
	assert.Equal(t, "u1|u2", live.calls[0].room)
	assert.Equal(t, "newMessage", live.calls[0].event)
}

func TestHandleSendMessageWithoutLiveServer(t *testing.T) {
	ms := store.NewMemoryStore()
	controller := NewChatController(&services.ChatService{Store: ms}, nil)

	body := `{"senderId":"u1","receiverId":"u2","text":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	controller.HandleSendMessage(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandleSendMessageValidation(t *testing.T) {
	controller := NewChatController(&services.ChatService{Store: store.NewMemoryStore()}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(`{"text":"no ids"}`))
	rec := httptest.NewRecorder()
	controller.HandleSendMessage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListConversationRequiresBothIDs(t *testing.T) {
	controller := NewChatController(&services.ChatService{Store: store.NewMemoryStore()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/messages?userId=u1", nil)
	rec := httptest.NewRecorder()
	controller.HandleListConversation(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
