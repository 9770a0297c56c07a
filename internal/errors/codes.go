package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials  ErrorCode = "AUTH_001"
	AuthMissingToken        ErrorCode = "AUTH_002"
	AuthExpiredToken        ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat  ErrorCode = "AUTH_004"
	AuthNotResourceOwner    ErrorCode = "AUTH_005"
	AuthAccountLocked       ErrorCode = "AUTH_006"
	AuthUserNotAuthenticated ErrorCode = "AUTH_007"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidAmount ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
	ValidationInvalidCurrency ErrorCode = "VALIDATION_007"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserAlreadyExists ErrorCode = "USER_002"
	UserInvalidID     ErrorCode = "USER_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound     ErrorCode = "CATEGORY_001"
	CategoryEmptySet     ErrorCode = "CATEGORY_002"
	CategorySaveFailed   ErrorCode = "CATEGORY_003"
	CategoryInvalidGroup ErrorCode = "CATEGORY_004"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound  ErrorCode = "EXPENSE_001"
	ExpenseInvalidID ErrorCode = "EXPENSE_002"
)

// Income error codes (INCOME_*)
const (
	IncomeNotFound  ErrorCode = "INCOME_001"
	IncomeInvalidID ErrorCode = "INCOME_002"
)

// Chat error codes (CHAT_*)
const (
	ChatConversationNotFound ErrorCode = "CHAT_001"
	ChatEmptyMessage         ErrorCode = "CHAT_002"
	ChatInvalidRole          ErrorCode = "CHAT_003"
	ChatCompletionFailed     ErrorCode = "CHAT_004"
	ChatNotConfigured        ErrorCode = "CHAT_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:   "Invalid email or password",
	AuthMissingToken:         "Authorization token is required",
	AuthExpiredToken:         "Authorization token has expired",
	AuthInvalidTokenFormat:   "Invalid authorization token format",
	AuthNotResourceOwner:     "You do not have access to this resource",
	AuthAccountLocked:        "Account is locked or disabled",
	AuthUserNotAuthenticated: "User not authenticated",

	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationInvalidAmount:   "Amount must be a positive number greater than zero",
	ValidationInvalidEmail:    "Invalid email address format",
	ValidationInvalidDate:     "Invalid date format or range",
	ValidationInvalidCurrency: "Unsupported currency code",

	// User errors
	UserNotFound:      "User not found",
	UserAlreadyExists: "An account with this email already exists",
	UserInvalidID:     "Invalid user ID format",

	// Category errors
	CategoryNotFound:     "Category not found",
	CategoryEmptySet:     "At least one category is required",
	CategorySaveFailed:   "Failed to save categories",
	CategoryInvalidGroup: "Invalid category group",

	// Expense errors
	ExpenseNotFound:  "Expense not found",
	ExpenseInvalidID: "Valid expense ID is required",

	// Income errors
	IncomeNotFound:  "Income record not found",
	IncomeInvalidID: "Valid income ID is required",

	// Chat errors
	ChatConversationNotFound: "Conversation not found",
	ChatEmptyMessage:         "Message content cannot be empty",
	ChatInvalidRole:          "Message role must be 'user' or 'assistant'",
	ChatCompletionFailed:     "The assistant is unavailable right now. Please try again",
	ChatNotConfigured:        "Chat is not configured on this server",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
