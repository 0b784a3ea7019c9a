package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Conversation is a thread between an unordered pair of identities.
type Conversation struct {
	ID               uuid.UUID
	Participant1     string
	Participant2     string
	LastMessage      *Message    // Most recent message, nil for an empty thread.
	UnreadCount      int         // Messages from the other participant not yet read.
	OtherParticipant Participant // Counterpart seen from the current identity.
	UpdatedAt        time.Time
}

// OtherParticipantID returns the participant that is not me.
func (c *Conversation) OtherParticipantID(me string) string {
	if c.Participant1 == me {
		return c.Participant2
	}

	return c.Participant1
}

// HasParticipant reports whether userID is one side of the conversation.
func (c *Conversation) HasParticipant(userID string) bool {
	return c.Participant1 == userID || c.Participant2 == userID
}

// Message is an immutable entry of a conversation.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// NormalizeContent trims content and reports whether anything is left to send.
func NormalizeContent(content string) (string, bool) {
	trimmed := strings.TrimSpace(content)

	return trimmed, trimmed != ""
}

// ParticipantPair orders two identities so that the pair is independent of argument order.
func ParticipantPair(a, b string) (first, second string) {
	if a <= b {
		return a, b
	}

	return b, a
}
