package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sidequest/internal/dto"
	"sidequest/internal/models"
	"sidequest/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound      = errors.New("user profile not found")
	ErrUnsupportedCurrency  = errors.New("unsupported currency code")
	ErrCurrentPasswordWrong = errors.New("current password is incorrect")
	ErrSamePassword         = errors.New("new password must be different from current password")
	ErrNoProfileChanges     = errors.New("no profile changes provided")
)

// UserService handles profile operations for the authenticated user
type UserService struct {
	userRepo         repositories.UserRepositoryInterface
	refreshTokenRepo repositories.RefreshTokenRepositoryInterface
	passwordService  PasswordServiceInterface
	currencyService  CurrencyServiceInterface
	logger           *slog.Logger
}

// NewUserService creates a new user profile service
func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	refreshTokenRepo repositories.RefreshTokenRepositoryInterface,
	passwordService PasswordServiceInterface,
	currencyService CurrencyServiceInterface,
	logger *slog.Logger,
) UserServiceInterface {
	return &UserService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		passwordService:  passwordService,
		currencyService:  currencyService,
		logger:           logger,
	}
}

// GetProfile returns the user's profile
func (s *UserService) GetProfile(userID uuid.UUID) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toProfileResponse(user), nil
}

// UpdateProfile applies the provided profile fields and returns the updated profile
func (s *UserService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	fields := map[string]interface{}{}

	if req.DisplayName != nil {
		fields["display_name"] = *req.DisplayName
	}

	if req.Currency != nil {
		if !s.currencyService.IsSupported(*req.Currency) {
			return nil, ErrUnsupportedCurrency
		}
		fields["currency"] = *req.Currency
	}

	if len(fields) == 0 {
		return nil, ErrNoProfileChanges
	}

	fields["updated_at"] = time.Now().UTC()

	if err := s.userRepo.UpdateFields(userID, fields); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.GetProfile(userID)
}

// UpdateCurrency changes the user's display currency
func (s *UserService) UpdateCurrency(userID uuid.UUID, currency string) (*dto.UserProfileResponse, error) {
	if !s.currencyService.IsSupported(currency) {
		return nil, ErrUnsupportedCurrency
	}

	fields := map[string]interface{}{
		"currency":   currency,
		"updated_at": time.Now().UTC(),
	}

	if err := s.userRepo.UpdateFields(userID, fields); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to update currency: %w", err)
	}

	s.logger.Info("display currency updated", "user_id", userID, "currency", currency)

	return s.GetProfile(userID)
}

// ChangePassword verifies the current password and stores a new hash.
// All refresh tokens are revoked so other sessions must sign in again.
func (s *UserService) ChangePassword(userID uuid.UUID, currentPassword, newPassword string) error {
	if currentPassword == newPassword {
		return ErrSamePassword
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(currentPassword, user.PasswordHash) {
		return ErrCurrentPasswordWrong
	}

	hashedPassword, err := s.passwordService.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePasswordHash(userID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.refreshTokenRepo.RevokeAllForUser(userID); err != nil {
		// Non-critical: the new password is already in effect
		s.logger.Warn("failed to revoke refresh tokens after password change",
			"error", err,
			"user_id", userID)
	}

	return nil
}

func toProfileResponse(user *models.User) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Currency:    user.Currency,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
