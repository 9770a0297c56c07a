package dto

// UpdateProfileRequest contains the mutable profile fields
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,min=1,max=100"`
	Currency    *string `json:"currency" validate:"omitempty,currency_code"`
}

// UpdateCurrencyRequest changes the user's display currency
type UpdateCurrencyRequest struct {
	Currency string `json:"currency" validate:"required,currency_code"`
}

// ChangePasswordRequest updates the user's own password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}
