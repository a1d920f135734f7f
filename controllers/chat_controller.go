package controllers

import (
	"encoding/json"
	"net/http"

	"timepass_server/services"
)

// ChatController handles direct messages. After a message is stored it is
// broadcast into the conversation's room, so subscribed clients see it
// without refetching.
type ChatController struct {
	ChatService *services.ChatService
	Live        Broadcaster
}

// NewChatController initializes the chat controller. Live may be nil when no
// socket server is mounted.
func NewChatController(chatService *services.ChatService, live Broadcaster) *ChatController {
	return &ChatController{ChatService: chatService, Live: live}
}

// HandleSendMessage stores a message and pushes it to the live room
func (cc *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SenderID   string `json:"senderId"`
		ReceiverID string `json:"receiverId"`
		Text       string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	msg, err := cc.ChatService.SendMessage(r.Context(), request.SenderID, request.ReceiverID, request.Text)
	if err != nil {
		writeError(w, "Failed to send message", err)
		return
	}
	if cc.Live != nil {
		room := services.ConversationID(msg.SenderID, msg.ReceiverID)
		cc.Live.BroadcastToRoom("/", room, "newMessage", msg)
	}
	writeJSON(w, http.StatusCreated, msg)
}

// HandleListConversation returns the messages between two users, oldest first
func (cc *ChatController) HandleListConversation(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	otherID := r.URL.Query().Get("otherId")
	if userID == "" || otherID == "" {
		http.Error(w, "userId and otherId are required", http.StatusBadRequest)
		return
	}
	messages, err := cc.ChatService.ListConversation(r.Context(), userID, otherID)
	if err != nil {
		writeError(w, "Failed to fetch messages", err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// HandleListPartners returns the viewer's message partners
func (cc *ChatController) HandleListPartners(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}
	partners, err := cc.ChatService.ListPartners(r.Context(), userID)
	if err != nil {
		writeError(w, "Failed to fetch conversations", err)
		return
	}
	writeJSON(w, http.StatusOK, partners)
}

// HandleMarkRead marks the conversation's messages to the viewer as read
func (cc *ChatController) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID  string `json:"userId"`
		OtherID string `json:"otherId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := cc.ChatService.MarkRead(r.Context(), request.UserID, request.OtherID); err != nil {
		writeError(w, "Failed to mark messages as read", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Messages marked as read"})
}
