package services

import (
	"context"
	"time"

	"sidequest/internal/dto"
	"sidequest/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(accessToken, ipAddress, userAgent string) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	GenerateSecurePassword() (string, error)
	PasswordStrength(password string) int
}

// UserServiceInterface defines profile operations for the authenticated user
type UserServiceInterface interface {
	GetProfile(userID uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	UpdateCurrency(userID uuid.UUID, currency string) (*dto.UserProfileResponse, error)
	ChangePassword(userID uuid.UUID, currentPassword, newPassword string) error
}

// CurrencyServiceInterface converts amounts between the base currency and
// a user's display currency using a fixed rate table.
type CurrencyServiceInterface interface {
	Convert(amount decimal.Decimal, from, to string) decimal.Decimal
	ToBase(amount decimal.Decimal, from string) decimal.Decimal
	FromBase(amount decimal.Decimal, to string) decimal.Decimal
	IsSupported(code string) bool
	SupportedCurrencies() []string
	Symbol(code string) string
}

// CategoryServiceInterface defines the contract for grouped category operations
type CategoryServiceInterface interface {
	GetCategories(userID uuid.UUID) (*dto.GroupedCategoriesResponse, error)
	SaveCategories(userID uuid.UUID, req *dto.SaveCategoriesRequest) (*dto.GroupedCategoriesResponse, error)
}

// ExpenseServiceInterface defines the contract for expense operations
type ExpenseServiceInterface interface {
	CreateExpense(userID uuid.UUID, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	GetExpense(userID, expenseID uuid.UUID) (*dto.ExpenseResponse, error)
	ListExpenses(userID uuid.UUID) (*dto.ListExpensesResponse, error)
	UpdateExpense(userID, expenseID uuid.UUID, req *dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error)
	DeleteExpense(userID, expenseID uuid.UUID) error
}

// IncomeServiceInterface defines the contract for income operations
type IncomeServiceInterface interface {
	CreateIncome(userID uuid.UUID, req *dto.CreateIncomeRequest) (*dto.IncomeResponse, error)
	GetIncome(userID, incomeID uuid.UUID) (*dto.IncomeResponse, error)
	ListIncome(userID uuid.UUID) (*dto.ListIncomeResponse, error)
	UpdateIncome(userID, incomeID uuid.UUID, req *dto.UpdateIncomeRequest) (*dto.IncomeResponse, error)
	DeleteIncome(userID, incomeID uuid.UUID) error
}

// ChatServiceInterface manages conversations and their transcripts
type ChatServiceInterface interface {
	ListConversations(userID uuid.UUID) (*dto.ListConversationsResponse, error)
	CreateConversation(userID uuid.UUID, message string) (*dto.ConversationResponse, error)
	GetConversation(userID, conversationID uuid.UUID) (*dto.ConversationWithMessagesResponse, error)
	AddMessage(userID, conversationID uuid.UUID, role, content string) (*dto.MessageResponse, error)
	DeleteConversation(userID, conversationID uuid.UUID) error
}

// CompletionServiceInterface streams assistant replies from the upstream
// model provider. Deltas are pushed through onDelta as they arrive; the
// full assembled reply is returned once the stream ends.
type CompletionServiceInterface interface {
	Enabled() bool
	StreamCompletion(ctx context.Context, messages []dto.ChatMessage, onDelta func(delta string) error) (string, error)
}

// SummaryServiceInterface aggregates a user's finances for the dashboard
type SummaryServiceInterface interface {
	GetDashboardSummary(userID uuid.UUID) (*dto.DashboardSummaryResponse, error)
}

// SampleDataServiceInterface seeds realistic demo records for a user
type SampleDataServiceInterface interface {
	GenerateSampleData(userID uuid.UUID, months int) (*dto.SampleDataResponse, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
