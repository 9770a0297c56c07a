package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConversationTitleMaxLength is where first-message-derived titles get cut.
const ConversationTitleMaxLength = 50

// Conversation is a chat thread. The title is derived once from the first
// message at creation time and never resynced afterwards.
type Conversation struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string    `gorm:"type:varchar(100);not null" json:"title"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;index" json:"updated_at"`

	Messages []Message `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Conversation) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("conversation owner is required")
	}

	if c.Title == "" {
		return errors.New("conversation title is required")
	}

	return nil
}

func (c *Conversation) TableName() string {
	return "conversations"
}

// TitleFromMessage derives a conversation title from its first message:
// the first 50 characters, with "..." appended when truncated.
func TitleFromMessage(message string) string {
	runes := []rune(message)
	if len(runes) <= ConversationTitleMaxLength {
		return message
	}
	return string(runes[:ConversationTitleMaxLength]) + "..."
}
