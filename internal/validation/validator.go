package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"sidequest/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("chat_role", validateChatRole)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validatePositiveAmount validates that an amount is a decimal string greater than 0
// with at most 2 decimal places
func validatePositiveAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	if !amount.IsPositive() {
		return false
	}
	return amount.Exponent() >= -2
}

// validateCurrencyCode validates that a currency code is one of the supported ISO codes
func validateCurrencyCode(fl validator.FieldLevel) bool {
	code := strings.ToUpper(fl.Field().String())
	supported := map[string]bool{
		"USD": true,
		"EUR": true,
		"GBP": true,
		"PLN": true,
		"JPY": true,
	}
	return supported[code]
}

// validateChatRole validates that a message role is one of the transcript roles
func validateChatRole(fl validator.FieldLevel) bool {
	return models.IsValidMessageRole(fl.Field().String())
}
