package usecase

import (
	"context"

	"chaski/internal/domain/entity"

	"github.com/google/uuid"
)

// MessagingUsecase is the conversations and messages mirror of the current identity.
type MessagingUsecase interface {
	SessionListener

	// FetchConversations reloads the conversation list. Failures are logged.
	FetchConversations(ctx context.Context)

	// FetchMessages loads a history, makes it current, opens its live subscription
	// and marks the counterpart's messages as read.
	FetchMessages(ctx context.Context, conversationID uuid.UUID) error

	// SendMessage rejects blank content, inserts the message and reloads conversations.
	SendMessage(ctx context.Context, conversationID uuid.UUID, content string) error

	// CreateConversation returns the conversation with otherUserID, creating it when absent.
	CreateConversation(ctx context.Context, otherUserID string) (uuid.UUID, error)

	// CloseConversation drops the current conversation and its subscription.
	CloseConversation()

	Conversations() []*entity.Conversation
	Messages() []*entity.Message
	CurrentConversation() (uuid.UUID, bool)
	UnreadTotal() int

	// Watch registers fn for every message appended live. The returned func unregisters it.
	Watch(fn func(entity.Message)) (cancel func())
}

// SendMessageInput carries a message body.
type SendMessageInput struct {
	Content string `json:"content" validate:"max=4000"`
}

// CreateConversationInput names the counterpart.
type CreateConversationInput struct {
	OtherUserID string `json:"otherUserId" validate:"required"`
}
