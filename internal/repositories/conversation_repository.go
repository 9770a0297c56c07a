package repositories

import (
	"errors"
	"fmt"
	"time"

	"sidequest/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrConversationNotFound = errors.New("conversation not found")

// ConversationRepository handles database operations for chat conversations
type ConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *gorm.DB) ConversationRepositoryInterface {
	return &ConversationRepository{
		db: db,
	}
}

// Create creates a new conversation in the database
func (r *ConversationRepository) Create(conversation *models.Conversation) error {
	if conversation == nil {
		return errors.New("conversation cannot be nil")
	}

	if err := r.db.Create(conversation).Error; err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}

	return nil
}

// GetByID retrieves a conversation scoped to its owning user
func (r *ConversationRepository) GetByID(id, userID uuid.UUID) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).
		First(&conversation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	return &conversation, nil
}

// GetByUserID retrieves all conversations for a user, most recently updated first
func (r *ConversationRepository) GetByUserID(userID uuid.UUID) ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := r.db.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&conversations).Error; err != nil {
		return nil, fmt.Errorf("failed to get conversations: %w", err)
	}

	return conversations, nil
}

// Touch bumps the conversation's updated_at so it sorts to the top of the list
func (r *ConversationRepository) Touch(id uuid.UUID) error {
	if err := r.db.Model(&models.Conversation{}).
		Where("id = ?", id).
		Update("updated_at", time.Now().UTC()).Error; err != nil {
		return fmt.Errorf("failed to touch conversation: %w", err)
	}
	return nil
}

// Delete removes a conversation and its messages (cascade) scoped to the owning user
func (r *ConversationRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Conversation{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete conversation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrConversationNotFound
	}

	return nil
}
