package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationModel mirrors the 'conversations' table. Participant1 sorts before
// Participant2, and the pair is unique.
type ConversationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Participant1 string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_conversations_pair"`
	Participant2 string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_conversations_pair"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// MessageModel mirrors the 'messages' table. Rows are append-only.
type MessageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_conversation_created"`
	SenderID       string    `gorm:"type:varchar(64);not null"`
	Content        string    `gorm:"type:text;not null"`
	IsRead         bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"index:idx_messages_conversation_created"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
