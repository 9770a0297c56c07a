package repositories

import (
	"errors"
	"fmt"

	"sidequest/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRepository handles database operations for transcript messages
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) MessageRepositoryInterface {
	return &MessageRepository{
		db: db,
	}
}

// Create creates a new message in the database
func (r *MessageRepository) Create(message *models.Message) error {
	if message == nil {
		return errors.New("message cannot be nil")
	}

	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

// GetByConversationID retrieves a conversation's messages in chronological order
func (r *MessageRepository) GetByConversationID(conversationID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	return messages, nil
}
