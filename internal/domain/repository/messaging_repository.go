package repository

import (
	"context"
	"errors"

	"chaski/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrConversationNotFound is returned when a conversation is not found.
var ErrConversationNotFound = errors.New("conversation not found")

// ConversationRepository is the row boundary of the 'conversations' collection.
type ConversationRepository interface {
	// FindByParticipant returns the conversations where userID is either participant,
	// most recently updated first. Only the row fields are populated.
	FindByParticipant(ctx context.Context, userID string) ([]*entity.Conversation, error)

	// FindByID retrieves one conversation.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// GetOrCreate returns the conversation of the unordered pair {a, b}, creating it when absent.
	// Calling it with (a, b) or (b, a) yields the same id.
	GetOrCreate(ctx context.Context, a, b string) (uuid.UUID, error)

	// Touch bumps updated_at of a conversation.
	Touch(ctx context.Context, id uuid.UUID) error
}

// MessageRepository is the row boundary of the 'messages' collection.
type MessageRepository interface {
	// FindByConversation returns the history in creation order.
	FindByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error)

	// FindLatest returns the most recent message, or nil for an empty conversation.
	FindLatest(ctx context.Context, conversationID uuid.UUID) (*entity.Message, error)

	// CountUnread counts messages not yet read and not sent by readerID.
	CountUnread(ctx context.Context, conversationID uuid.UUID, readerID string) (int, error)

	// Insert appends a message and fills in its generated fields.
	Insert(ctx context.Context, message *entity.Message) error

	// MarkRead flags every message not sent by readerID as read.
	MarkRead(ctx context.Context, conversationID uuid.UUID, readerID string) error
}
