package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// IsValidMessageRole reports whether role is one of the two transcript roles.
func IsValidMessageRole(role string) bool {
	return role == MessageRoleUser || role == MessageRoleAssistant
}

type Message struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index" json:"conversation_id"`
	Role           string    `gorm:"type:varchar(20);not null" json:"role"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	CreatedAt      time.Time `gorm:"not null;index" json:"created_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	return m.Validate()
}

func (m *Message) Validate() error {
	if m.ConversationID == uuid.Nil {
		return errors.New("message conversation is required")
	}

	if !IsValidMessageRole(m.Role) {
		return fmt.Errorf("invalid message role: %s", m.Role)
	}

	if m.Content == "" {
		return errors.New("message content cannot be empty")
	}

	return nil
}

func (m *Message) TableName() string {
	return "messages"
}
