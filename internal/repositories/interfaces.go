package repositories

import (
	"time"

	"sidequest/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateFields(userID uuid.UUID, fields map[string]interface{}) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	UpdateFailedLoginAttempts(user *models.User) error
	ResetFailedLoginAttempts(userID uuid.UUID) error
	Delete(userID uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	CountByUserID(userID uuid.UUID) (int64, error)
	GetByUserID(userID uuid.UUID) ([]models.Category, error)
	ReplaceAllForUser(userID uuid.UUID, categories []models.Category) error
}

// ExpenseRepositoryInterface defines the contract for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id, userID uuid.UUID) (*models.Expense, error)
	GetByUserID(userID uuid.UUID) ([]models.Expense, error)
	GetByUserIDAndDateRange(userID uuid.UUID, start, end time.Time) ([]models.Expense, error)
	Update(expense *models.Expense) error
	Delete(id, userID uuid.UUID) error
}

// IncomeRepositoryInterface defines the contract for income repository operations
type IncomeRepositoryInterface interface {
	Create(income *models.Income) error
	GetByID(id, userID uuid.UUID) (*models.Income, error)
	GetByUserID(userID uuid.UUID) ([]models.Income, error)
	GetByUserIDAndDateRange(userID uuid.UUID, start, end time.Time) ([]models.Income, error)
	Update(income *models.Income) error
	Delete(id, userID uuid.UUID) error
}

// ConversationRepositoryInterface defines the contract for conversation repository operations
type ConversationRepositoryInterface interface {
	Create(conversation *models.Conversation) error
	GetByID(id, userID uuid.UUID) (*models.Conversation, error)
	GetByUserID(userID uuid.UUID) ([]models.Conversation, error)
	Touch(id uuid.UUID) error
	Delete(id, userID uuid.UUID) error
}

// MessageRepositoryInterface defines the contract for message repository operations
type MessageRepositoryInterface interface {
	Create(message *models.Message) error
	GetByConversationID(conversationID uuid.UUID) ([]models.Message, error)
}

type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	Revoke(tokenID uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	DeleteExpired() (int64, error)
}
