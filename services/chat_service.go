package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timepass_server/models"
	"timepass_server/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ChatService manages direct messages between two users
type ChatService struct {
	Store store.Store
}

// ConversationID derives the room id for a pair of users; order-insensitive.
func ConversationID(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// SendMessage stores a new direct message with a server-assigned timestamp.
// The message is immutable afterwards except for the read flag.
func (cs *ChatService) SendMessage(ctx context.Context, senderID, receiverID, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if senderID == "" || receiverID == "" || text == "" {
		return nil, fmt.Errorf("senderId, receiverId and text are required: %w", ErrValidation)
	}

	msg := models.Message{
		MessageID:    uuid.NewString(),
		SenderID:     senderID,
		ReceiverID:   receiverID,
		Text:         text,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Read:         false,
		Participants: []string{senderID, receiverID},
	}
	if err := cs.Store.Put(ctx, models.MessagesCollection, msg.MessageID, msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	log.Debug().Str("component", "chat").Str("messageId", msg.MessageID).Msg("message stored")
	return &msg, nil
}

// ListConversation returns the messages between viewer and other, oldest
// first. The store query selects on participant membership; narrowing to the
// exact pair happens here because a set predicate cannot express "both".
func (cs *ChatService) ListConversation(ctx context.Context, viewerID, otherID string) ([]models.Message, error) {
	var messages []models.Message
	q := store.Query{
		Contains: map[string]string{"participants": viewerID},
		OrderBy:  "createdAt",
	}
	if err := cs.Store.Query(ctx, models.MessagesCollection, q, &messages); err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	conversation := []models.Message{}
	for _, m := range messages {
		if (m.SenderID == viewerID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == viewerID) {
			conversation = append(conversation, m)
		}
	}
	return conversation, nil
}

// ListPartners resolves the viewer's followers to profiles for the inbox
// listing. Followers with a missing profile document are skipped.
func (cs *ChatService) ListPartners(ctx context.Context, viewerID string) ([]models.User, error) {
	var viewer models.User
	if err := cs.Store.Get(ctx, models.UsersCollection, viewerID, &viewer); err != nil {
		return nil, fmt.Errorf("failed to fetch viewer profile: %w", err)
	}

	partners := []models.User{}
	for _, followerID := range viewer.Followers {
		var u models.User
		if err := cs.Store.Get(ctx, models.UsersCollection, followerID, &u); err != nil {
			log.Warn().Err(err).Str("component", "chat").Str("userId", followerID).Msg("skipping follower without profile")
			continue
		}
		partners = append(partners, u)
	}
	return partners, nil
}

// MarkRead flips the read flag on every message in the conversation that was
// sent to the viewer.
func (cs *ChatService) MarkRead(ctx context.Context, viewerID, otherID string) error {
	conversation, err := cs.ListConversation(ctx, viewerID, otherID)
	if err != nil {
		return err
	}
	for _, m := range conversation {
		if m.ReceiverID != viewerID || m.Read {
			continue
		}
		fields := map[string]interface{}{"read": true}
		if err := cs.Store.UpdateFields(ctx, models.MessagesCollection, m.MessageID, fields); err != nil {
			return fmt.Errorf("failed to mark message '%s' as read: %w", m.MessageID, err)
		}
	}
	return nil
}
