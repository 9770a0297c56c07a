// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package service_mocks is a generated GoMock package.
package service_mocks

import (
	context "context"
	reflect "reflect"
	dto "sidequest/internal/dto"
	models "sidequest/internal/models"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
	decimal "github.com/shopspring/decimal"
)

// MockAuthServiceInterface is a mock of AuthServiceInterface interface.
type MockAuthServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuthServiceInterfaceMockRecorder
}

// MockAuthServiceInterfaceMockRecorder is the mock recorder for MockAuthServiceInterface.
type MockAuthServiceInterfaceMockRecorder struct {
	mock *MockAuthServiceInterface
}

// NewMockAuthServiceInterface creates a new mock instance.
func NewMockAuthServiceInterface(ctrl *gomock.Controller) *MockAuthServiceInterface {
	mock := &MockAuthServiceInterface{ctrl: ctrl}
	mock.recorder = &MockAuthServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthServiceInterface) EXPECT() *MockAuthServiceInterfaceMockRecorder {
	return m.recorder
}

// Login mocks base method.
func (m *MockAuthServiceInterface) Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", req, ipAddress, userAgent)
	ret0, _ := ret[0].(*dto.TokenResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Login indicates an expected call of Login.
func (mr *MockAuthServiceInterfaceMockRecorder) Login(req, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthServiceInterface)(nil).Login), req, ipAddress, userAgent)
}

// Logout mocks base method.
func (m *MockAuthServiceInterface) Logout(accessToken, ipAddress, userAgent string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Logout", accessToken, ipAddress, userAgent)
	ret0, _ := ret[0].(error)
	return ret0
}

// Logout indicates an expected call of Logout.
func (mr *MockAuthServiceInterfaceMockRecorder) Logout(accessToken, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Logout", reflect.TypeOf((*MockAuthServiceInterface)(nil).Logout), accessToken, ipAddress, userAgent)
}

// RefreshTokens mocks base method.
func (m *MockAuthServiceInterface) RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RefreshTokens", refreshToken, ipAddress, userAgent)
	ret0, _ := ret[0].(*dto.TokenResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RefreshTokens indicates an expected call of RefreshTokens.
func (mr *MockAuthServiceInterfaceMockRecorder) RefreshTokens(refreshToken, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RefreshTokens", reflect.TypeOf((*MockAuthServiceInterface)(nil).RefreshTokens), refreshToken, ipAddress, userAgent)
}

// Register mocks base method.
func (m *MockAuthServiceInterface) Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Register", req, ipAddress, userAgent)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Register indicates an expected call of Register.
func (mr *MockAuthServiceInterfaceMockRecorder) Register(req, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Register", reflect.TypeOf((*MockAuthServiceInterface)(nil).Register), req, ipAddress, userAgent)
}

// MockTokenServiceInterface is a mock of TokenServiceInterface interface.
type MockTokenServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTokenServiceInterfaceMockRecorder
}

// MockTokenServiceInterfaceMockRecorder is the mock recorder for MockTokenServiceInterface.
type MockTokenServiceInterfaceMockRecorder struct {
	mock *MockTokenServiceInterface
}

// NewMockTokenServiceInterface creates a new mock instance.
func NewMockTokenServiceInterface(ctrl *gomock.Controller) *MockTokenServiceInterface {
	mock := &MockTokenServiceInterface{ctrl: ctrl}
	mock.recorder = &MockTokenServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenServiceInterface) EXPECT() *MockTokenServiceInterfaceMockRecorder {
	return m.recorder
}

// ExtractTokenFromHeader mocks base method.
func (m *MockTokenServiceInterface) ExtractTokenFromHeader(authHeader string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExtractTokenFromHeader", authHeader)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExtractTokenFromHeader indicates an expected call of ExtractTokenFromHeader.
func (mr *MockTokenServiceInterfaceMockRecorder) ExtractTokenFromHeader(authHeader interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExtractTokenFromHeader", reflect.TypeOf((*MockTokenServiceInterface)(nil).ExtractTokenFromHeader), authHeader)
}

// GenerateAccessToken mocks base method.
func (m *MockTokenServiceInterface) GenerateAccessToken(user *models.User) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateAccessToken", user)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GenerateAccessToken indicates an expected call of GenerateAccessToken.
func (mr *MockTokenServiceInterfaceMockRecorder) GenerateAccessToken(user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateAccessToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).GenerateAccessToken), user)
}

// GenerateRefreshToken mocks base method.
func (m *MockTokenServiceInterface) GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateRefreshToken", userID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GenerateRefreshToken indicates an expected call of GenerateRefreshToken.
func (mr *MockTokenServiceInterfaceMockRecorder) GenerateRefreshToken(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateRefreshToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).GenerateRefreshToken), userID)
}

// GetJTI mocks base method.
func (m *MockTokenServiceInterface) GetJTI(tokenString string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetJTI", tokenString)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetJTI indicates an expected call of GetJTI.
func (mr *MockTokenServiceInterfaceMockRecorder) GetJTI(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetJTI", reflect.TypeOf((*MockTokenServiceInterface)(nil).GetJTI), tokenString)
}

// GetTokenExpiry mocks base method.
func (m *MockTokenServiceInterface) GetTokenExpiry(tokenString string) (time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTokenExpiry", tokenString)
	ret0, _ := ret[0].(time.Time)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTokenExpiry indicates an expected call of GetTokenExpiry.
func (mr *MockTokenServiceInterfaceMockRecorder) GetTokenExpiry(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTokenExpiry", reflect.TypeOf((*MockTokenServiceInterface)(nil).GetTokenExpiry), tokenString)
}

// ValidateAccessToken mocks base method.
func (m *MockTokenServiceInterface) ValidateAccessToken(tokenString string) (*models.CustomClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateAccessToken", tokenString)
	ret0, _ := ret[0].(*models.CustomClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ValidateAccessToken indicates an expected call of ValidateAccessToken.
func (mr *MockTokenServiceInterfaceMockRecorder) ValidateAccessToken(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateAccessToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).ValidateAccessToken), tokenString)
}

// ValidateRefreshToken mocks base method.
func (m *MockTokenServiceInterface) ValidateRefreshToken(tokenString string) (*models.CustomClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateRefreshToken", tokenString)
	ret0, _ := ret[0].(*models.CustomClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ValidateRefreshToken indicates an expected call of ValidateRefreshToken.
func (mr *MockTokenServiceInterfaceMockRecorder) ValidateRefreshToken(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateRefreshToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).ValidateRefreshToken), tokenString)
}

// MockPasswordServiceInterface is a mock of PasswordServiceInterface interface.
type MockPasswordServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockPasswordServiceInterfaceMockRecorder
}

// MockPasswordServiceInterfaceMockRecorder is the mock recorder for MockPasswordServiceInterface.
type MockPasswordServiceInterfaceMockRecorder struct {
	mock *MockPasswordServiceInterface
}

// NewMockPasswordServiceInterface creates a new mock instance.
func NewMockPasswordServiceInterface(ctrl *gomock.Controller) *MockPasswordServiceInterface {
	mock := &MockPasswordServiceInterface{ctrl: ctrl}
	mock.recorder = &MockPasswordServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPasswordServiceInterface) EXPECT() *MockPasswordServiceInterfaceMockRecorder {
	return m.recorder
}

// ComparePassword mocks base method.
func (m *MockPasswordServiceInterface) ComparePassword(password, hash string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ComparePassword", password, hash)
	ret0, _ := ret[0].(bool)
	return ret0
}

// ComparePassword indicates an expected call of ComparePassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) ComparePassword(password, hash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ComparePassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).ComparePassword), password, hash)
}

// GenerateSecurePassword mocks base method.
func (m *MockPasswordServiceInterface) GenerateSecurePassword() (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateSecurePassword")
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GenerateSecurePassword indicates an expected call of GenerateSecurePassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) GenerateSecurePassword() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateSecurePassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).GenerateSecurePassword))
}

// HashPassword mocks base method.
func (m *MockPasswordServiceInterface) HashPassword(password string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HashPassword", password)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HashPassword indicates an expected call of HashPassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) HashPassword(password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HashPassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).HashPassword), password)
}

// PasswordStrength mocks base method.
func (m *MockPasswordServiceInterface) PasswordStrength(password string) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PasswordStrength", password)
	ret0, _ := ret[0].(int)
	return ret0
}

// PasswordStrength indicates an expected call of PasswordStrength.
func (mr *MockPasswordServiceInterfaceMockRecorder) PasswordStrength(password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PasswordStrength", reflect.TypeOf((*MockPasswordServiceInterface)(nil).PasswordStrength), password)
}

// ValidatePassword mocks base method.
func (m *MockPasswordServiceInterface) ValidatePassword(password string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidatePassword", password)
	ret0, _ := ret[0].(error)
	return ret0
}

// ValidatePassword indicates an expected call of ValidatePassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) ValidatePassword(password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidatePassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).ValidatePassword), password)
}

// MockUserServiceInterface is a mock of UserServiceInterface interface.
type MockUserServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockUserServiceInterfaceMockRecorder
}

// MockUserServiceInterfaceMockRecorder is the mock recorder for MockUserServiceInterface.
type MockUserServiceInterfaceMockRecorder struct {
	mock *MockUserServiceInterface
}

// NewMockUserServiceInterface creates a new mock instance.
func NewMockUserServiceInterface(ctrl *gomock.Controller) *MockUserServiceInterface {
	mock := &MockUserServiceInterface{ctrl: ctrl}
	mock.recorder = &MockUserServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserServiceInterface) EXPECT() *MockUserServiceInterfaceMockRecorder {
	return m.recorder
}

// ChangePassword mocks base method.
func (m *MockUserServiceInterface) ChangePassword(userID uuid.UUID, currentPassword, newPassword string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChangePassword", userID, currentPassword, newPassword)
	ret0, _ := ret[0].(error)
	return ret0
}

// ChangePassword indicates an expected call of ChangePassword.
func (mr *MockUserServiceInterfaceMockRecorder) ChangePassword(userID, currentPassword, newPassword interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ChangePassword", reflect.TypeOf((*MockUserServiceInterface)(nil).ChangePassword), userID, currentPassword, newPassword)
}

// GetProfile mocks base method.
func (m *MockUserServiceInterface) GetProfile(userID uuid.UUID) (*dto.UserProfileResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProfile", userID)
	ret0, _ := ret[0].(*dto.UserProfileResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProfile indicates an expected call of GetProfile.
func (mr *MockUserServiceInterfaceMockRecorder) GetProfile(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProfile", reflect.TypeOf((*MockUserServiceInterface)(nil).GetProfile), userID)
}

// UpdateCurrency mocks base method.
func (m *MockUserServiceInterface) UpdateCurrency(userID uuid.UUID, currency string) (*dto.UserProfileResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateCurrency", userID, currency)
	ret0, _ := ret[0].(*dto.UserProfileResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateCurrency indicates an expected call of UpdateCurrency.
func (mr *MockUserServiceInterfaceMockRecorder) UpdateCurrency(userID, currency interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateCurrency", reflect.TypeOf((*MockUserServiceInterface)(nil).UpdateCurrency), userID, currency)
}

// UpdateProfile mocks base method.
func (m *MockUserServiceInterface) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateProfile", userID, req)
	ret0, _ := ret[0].(*dto.UserProfileResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateProfile indicates an expected call of UpdateProfile.
func (mr *MockUserServiceInterfaceMockRecorder) UpdateProfile(userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateProfile", reflect.TypeOf((*MockUserServiceInterface)(nil).UpdateProfile), userID, req)
}

// MockCurrencyServiceInterface is a mock of CurrencyServiceInterface interface.
type MockCurrencyServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockCurrencyServiceInterfaceMockRecorder
}

// MockCurrencyServiceInterfaceMockRecorder is the mock recorder for MockCurrencyServiceInterface.
type MockCurrencyServiceInterfaceMockRecorder struct {
	mock *MockCurrencyServiceInterface
}

// NewMockCurrencyServiceInterface creates a new mock instance.
func NewMockCurrencyServiceInterface(ctrl *gomock.Controller) *MockCurrencyServiceInterface {
	mock := &MockCurrencyServiceInterface{ctrl: ctrl}
	mock.recorder = &MockCurrencyServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCurrencyServiceInterface) EXPECT() *MockCurrencyServiceInterfaceMockRecorder {
	return m.recorder
}

// Convert mocks base method.
func (m *MockCurrencyServiceInterface) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Convert", amount, from, to)
	ret0, _ := ret[0].(decimal.Decimal)
	return ret0
}

// Convert indicates an expected call of Convert.
func (mr *MockCurrencyServiceInterfaceMockRecorder) Convert(amount, from, to interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Convert", reflect.TypeOf((*MockCurrencyServiceInterface)(nil).Convert), amount, from, to)
}

// FromBase mocks base method.
func (m *MockCurrencyServiceInterface) FromBase(amount decimal.Decimal, to string) decimal.Decimal {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FromBase", amount, to)
	ret0, _ := ret[0].(decimal.Decimal)
	return ret0
}

// FromBase indicates an expected call of FromBase.
func (mr *MockCurrencyServiceInterfaceMockRecorder) FromBase(amount, to interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FromBase", reflect.TypeOf((*MockCurrencyServiceInterface)(nil).FromBase), amount, to)
}

// IsSupported mocks base method.
func (m *MockCurrencyServiceInterface) IsSupported(code string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsSupported", code)
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsSupported indicates an expected call of IsSupported.
func (mr *MockCurrencyServiceInterfaceMockRecorder) IsSupported(code interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsSupported", reflect.TypeOf((*MockCurrencyServiceInterface)(nil).IsSupported), code)
}

// SupportedCurrencies mocks base method.
func (m *MockCurrencyServiceInterface) SupportedCurrencies() []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SupportedCurrencies")
	ret0, _ := ret[0].([]string)
	return ret0
}

// SupportedCurrencies indicates an expected call of SupportedCurrencies.
func (mr *MockCurrencyServiceInterfaceMockRecorder) SupportedCurrencies() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SupportedCurrencies", reflect.TypeOf((*MockCurrencyServiceInterface)(nil).SupportedCurrencies))
}

// Symbol mocks base method.
func (m *MockCurrencyServiceInterface) Symbol(code string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Symbol", code)
	ret0, _ := ret[0].(string)
	return ret0
}

// Symbol indicates an expected call of Symbol.
func (mr *MockCurrencyServiceInterfaceMockRecorder) Symbol(code interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Symbol", reflect.TypeOf((*MockCurrencyServiceInterface)(nil).Symbol), code)
}

// ToBase mocks base method.
func (m *MockCurrencyServiceInterface) ToBase(amount decimal.Decimal, from string) decimal.Decimal {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ToBase", amount, from)
	ret0, _ := ret[0].(decimal.Decimal)
	return ret0
}

// ToBase indicates an expected call of ToBase.
func (mr *MockCurrencyServiceInterfaceMockRecorder) ToBase(amount, from interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ToBase", reflect.TypeOf((*MockCurrencyServiceInterface)(nil).ToBase), amount, from)
}

// MockCategoryServiceInterface is a mock of CategoryServiceInterface interface.
type MockCategoryServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockCategoryServiceInterfaceMockRecorder
}

// MockCategoryServiceInterfaceMockRecorder is the mock recorder for MockCategoryServiceInterface.
type MockCategoryServiceInterfaceMockRecorder struct {
	mock *MockCategoryServiceInterface
}

// NewMockCategoryServiceInterface creates a new mock instance.
func NewMockCategoryServiceInterface(ctrl *gomock.Controller) *MockCategoryServiceInterface {
	mock := &MockCategoryServiceInterface{ctrl: ctrl}
	mock.recorder = &MockCategoryServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCategoryServiceInterface) EXPECT() *MockCategoryServiceInterfaceMockRecorder {
	return m.recorder
}

// GetCategories mocks base method.
func (m *MockCategoryServiceInterface) GetCategories(userID uuid.UUID) (*dto.GroupedCategoriesResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCategories", userID)
	ret0, _ := ret[0].(*dto.GroupedCategoriesResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCategories indicates an expected call of GetCategories.
func (mr *MockCategoryServiceInterfaceMockRecorder) GetCategories(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCategories", reflect.TypeOf((*MockCategoryServiceInterface)(nil).GetCategories), userID)
}

// SaveCategories mocks base method.
func (m *MockCategoryServiceInterface) SaveCategories(userID uuid.UUID, req *dto.SaveCategoriesRequest) (*dto.GroupedCategoriesResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveCategories", userID, req)
	ret0, _ := ret[0].(*dto.GroupedCategoriesResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SaveCategories indicates an expected call of SaveCategories.
func (mr *MockCategoryServiceInterfaceMockRecorder) SaveCategories(userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveCategories", reflect.TypeOf((*MockCategoryServiceInterface)(nil).SaveCategories), userID, req)
}

// MockExpenseServiceInterface is a mock of ExpenseServiceInterface interface.
type MockExpenseServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockExpenseServiceInterfaceMockRecorder
}

// MockExpenseServiceInterfaceMockRecorder is the mock recorder for MockExpenseServiceInterface.
type MockExpenseServiceInterfaceMockRecorder struct {
	mock *MockExpenseServiceInterface
}

// NewMockExpenseServiceInterface creates a new mock instance.
func NewMockExpenseServiceInterface(ctrl *gomock.Controller) *MockExpenseServiceInterface {
	mock := &MockExpenseServiceInterface{ctrl: ctrl}
	mock.recorder = &MockExpenseServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExpenseServiceInterface) EXPECT() *MockExpenseServiceInterfaceMockRecorder {
	return m.recorder
}

// CreateExpense mocks base method.
func (m *MockExpenseServiceInterface) CreateExpense(userID uuid.UUID, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateExpense", userID, req)
	ret0, _ := ret[0].(*dto.ExpenseResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateExpense indicates an expected call of CreateExpense.
func (mr *MockExpenseServiceInterfaceMockRecorder) CreateExpense(userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateExpense", reflect.TypeOf((*MockExpenseServiceInterface)(nil).CreateExpense), userID, req)
}

// DeleteExpense mocks base method.
func (m *MockExpenseServiceInterface) DeleteExpense(userID, expenseID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteExpense", userID, expenseID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteExpense indicates an expected call of DeleteExpense.
func (mr *MockExpenseServiceInterfaceMockRecorder) DeleteExpense(userID, expenseID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteExpense", reflect.TypeOf((*MockExpenseServiceInterface)(nil).DeleteExpense), userID, expenseID)
}

// GetExpense mocks base method.
func (m *MockExpenseServiceInterface) GetExpense(userID, expenseID uuid.UUID) (*dto.ExpenseResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetExpense", userID, expenseID)
	ret0, _ := ret[0].(*dto.ExpenseResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetExpense indicates an expected call of GetExpense.
func (mr *MockExpenseServiceInterfaceMockRecorder) GetExpense(userID, expenseID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetExpense", reflect.TypeOf((*MockExpenseServiceInterface)(nil).GetExpense), userID, expenseID)
}

// ListExpenses mocks base method.
func (m *MockExpenseServiceInterface) ListExpenses(userID uuid.UUID) (*dto.ListExpensesResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListExpenses", userID)
	ret0, _ := ret[0].(*dto.ListExpensesResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListExpenses indicates an expected call of ListExpenses.
func (mr *MockExpenseServiceInterfaceMockRecorder) ListExpenses(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListExpenses", reflect.TypeOf((*MockExpenseServiceInterface)(nil).ListExpenses), userID)
}

// UpdateExpense mocks base method.
func (m *MockExpenseServiceInterface) UpdateExpense(userID, expenseID uuid.UUID, req *dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateExpense", userID, expenseID, req)
	ret0, _ := ret[0].(*dto.ExpenseResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateExpense indicates an expected call of UpdateExpense.
func (mr *MockExpenseServiceInterfaceMockRecorder) UpdateExpense(userID, expenseID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateExpense", reflect.TypeOf((*MockExpenseServiceInterface)(nil).UpdateExpense), userID, expenseID, req)
}

// MockIncomeServiceInterface is a mock of IncomeServiceInterface interface.
type MockIncomeServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockIncomeServiceInterfaceMockRecorder
}

// MockIncomeServiceInterfaceMockRecorder is the mock recorder for MockIncomeServiceInterface.
type MockIncomeServiceInterfaceMockRecorder struct {
	mock *MockIncomeServiceInterface
}

// NewMockIncomeServiceInterface creates a new mock instance.
func NewMockIncomeServiceInterface(ctrl *gomock.Controller) *MockIncomeServiceInterface {
	mock := &MockIncomeServiceInterface{ctrl: ctrl}
	mock.recorder = &MockIncomeServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIncomeServiceInterface) EXPECT() *MockIncomeServiceInterfaceMockRecorder {
	return m.recorder
}

// CreateIncome mocks base method.
func (m *MockIncomeServiceInterface) CreateIncome(userID uuid.UUID, req *dto.CreateIncomeRequest) (*dto.IncomeResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateIncome", userID, req)
	ret0, _ := ret[0].(*dto.IncomeResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateIncome indicates an expected call of CreateIncome.
func (mr *MockIncomeServiceInterfaceMockRecorder) CreateIncome(userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateIncome", reflect.TypeOf((*MockIncomeServiceInterface)(nil).CreateIncome), userID, req)
}

// DeleteIncome mocks base method.
func (m *MockIncomeServiceInterface) DeleteIncome(userID, incomeID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteIncome", userID, incomeID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteIncome indicates an expected call of DeleteIncome.
func (mr *MockIncomeServiceInterfaceMockRecorder) DeleteIncome(userID, incomeID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteIncome", reflect.TypeOf((*MockIncomeServiceInterface)(nil).DeleteIncome), userID, incomeID)
}

// GetIncome mocks base method.
func (m *MockIncomeServiceInterface) GetIncome(userID, incomeID uuid.UUID) (*dto.IncomeResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIncome", userID, incomeID)
	ret0, _ := ret[0].(*dto.IncomeResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIncome indicates an expected call of GetIncome.
func (mr *MockIncomeServiceInterfaceMockRecorder) GetIncome(userID, incomeID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIncome", reflect.TypeOf((*MockIncomeServiceInterface)(nil).GetIncome), userID, incomeID)
}

// ListIncome mocks base method.
func (m *MockIncomeServiceInterface) ListIncome(userID uuid.UUID) (*dto.ListIncomeResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListIncome", userID)
	ret0, _ := ret[0].(*dto.ListIncomeResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListIncome indicates an expected call of ListIncome.
func (mr *MockIncomeServiceInterfaceMockRecorder) ListIncome(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListIncome", reflect.TypeOf((*MockIncomeServiceInterface)(nil).ListIncome), userID)
}

// UpdateIncome mocks base method.
func (m *MockIncomeServiceInterface) UpdateIncome(userID, incomeID uuid.UUID, req *dto.UpdateIncomeRequest) (*dto.IncomeResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateIncome", userID, incomeID, req)
	ret0, _ := ret[0].(*dto.IncomeResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateIncome indicates an expected call of UpdateIncome.
func (mr *MockIncomeServiceInterfaceMockRecorder) UpdateIncome(userID, incomeID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateIncome", reflect.TypeOf((*MockIncomeServiceInterface)(nil).UpdateIncome), userID, incomeID, req)
}

// MockChatServiceInterface is a mock of ChatServiceInterface interface.
type MockChatServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockChatServiceInterfaceMockRecorder
}

// MockChatServiceInterfaceMockRecorder is the mock recorder for MockChatServiceInterface.
type MockChatServiceInterfaceMockRecorder struct {
	mock *MockChatServiceInterface
}

// NewMockChatServiceInterface creates a new mock instance.
func NewMockChatServiceInterface(ctrl *gomock.Controller) *MockChatServiceInterface {
	mock := &MockChatServiceInterface{ctrl: ctrl}
	mock.recorder = &MockChatServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockChatServiceInterface) EXPECT() *MockChatServiceInterfaceMockRecorder {
	return m.recorder
}

// AddMessage mocks base method.
func (m *MockChatServiceInterface) AddMessage(userID, conversationID uuid.UUID, role, content string) (*dto.MessageResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddMessage", userID, conversationID, role, content)
	ret0, _ := ret[0].(*dto.MessageResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddMessage indicates an expected call of AddMessage.
func (mr *MockChatServiceInterfaceMockRecorder) AddMessage(userID, conversationID, role, content interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddMessage", reflect.TypeOf((*MockChatServiceInterface)(nil).AddMessage), userID, conversationID, role, content)
}

// CreateConversation mocks base method.
func (m *MockChatServiceInterface) CreateConversation(userID uuid.UUID, message string) (*dto.ConversationResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateConversation", userID, message)
	ret0, _ := ret[0].(*dto.ConversationResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateConversation indicates an expected call of CreateConversation.
func (mr *MockChatServiceInterfaceMockRecorder) CreateConversation(userID, message interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateConversation", reflect.TypeOf((*MockChatServiceInterface)(nil).CreateConversation), userID, message)
}

// DeleteConversation mocks base method.
func (m *MockChatServiceInterface) DeleteConversation(userID, conversationID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteConversation", userID, conversationID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteConversation indicates an expected call of DeleteConversation.
func (mr *MockChatServiceInterfaceMockRecorder) DeleteConversation(userID, conversationID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteConversation", reflect.TypeOf((*MockChatServiceInterface)(nil).DeleteConversation), userID, conversationID)
}

// GetConversation mocks base method.
func (m *MockChatServiceInterface) GetConversation(userID, conversationID uuid.UUID) (*dto.ConversationWithMessagesResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetConversation", userID, conversationID)
	ret0, _ := ret[0].(*dto.ConversationWithMessagesResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetConversation indicates an expected call of GetConversation.
func (mr *MockChatServiceInterfaceMockRecorder) GetConversation(userID, conversationID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetConversation", reflect.TypeOf((*MockChatServiceInterface)(nil).GetConversation), userID, conversationID)
}

// ListConversations mocks base method.
func (m *MockChatServiceInterface) ListConversations(userID uuid.UUID) (*dto.ListConversationsResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListConversations", userID)
	ret0, _ := ret[0].(*dto.ListConversationsResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListConversations indicates an expected call of ListConversations.
func (mr *MockChatServiceInterfaceMockRecorder) ListConversations(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListConversations", reflect.TypeOf((*MockChatServiceInterface)(nil).ListConversations), userID)
}

// MockCompletionServiceInterface is a mock of CompletionServiceInterface interface.
type MockCompletionServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockCompletionServiceInterfaceMockRecorder
}

// MockCompletionServiceInterfaceMockRecorder is the mock recorder for MockCompletionServiceInterface.
type MockCompletionServiceInterfaceMockRecorder struct {
	mock *MockCompletionServiceInterface
}

// NewMockCompletionServiceInterface creates a new mock instance.
func NewMockCompletionServiceInterface(ctrl *gomock.Controller) *MockCompletionServiceInterface {
	mock := &MockCompletionServiceInterface{ctrl: ctrl}
	mock.recorder = &MockCompletionServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCompletionServiceInterface) EXPECT() *MockCompletionServiceInterfaceMockRecorder {
	return m.recorder
}

// Enabled mocks base method.
func (m *MockCompletionServiceInterface) Enabled() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Enabled")
	ret0, _ := ret[0].(bool)
	return ret0
}

// Enabled indicates an expected call of Enabled.
func (mr *MockCompletionServiceInterfaceMockRecorder) Enabled() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Enabled", reflect.TypeOf((*MockCompletionServiceInterface)(nil).Enabled))
}

// StreamCompletion mocks base method.
func (m *MockCompletionServiceInterface) StreamCompletion(ctx context.Context, messages []dto.ChatMessage, onDelta func(string) error) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StreamCompletion", ctx, messages, onDelta)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StreamCompletion indicates an expected call of StreamCompletion.
func (mr *MockCompletionServiceInterfaceMockRecorder) StreamCompletion(ctx, messages, onDelta interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StreamCompletion", reflect.TypeOf((*MockCompletionServiceInterface)(nil).StreamCompletion), ctx, messages, onDelta)
}

// MockSummaryServiceInterface is a mock of SummaryServiceInterface interface.
type MockSummaryServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSummaryServiceInterfaceMockRecorder
}

// MockSummaryServiceInterfaceMockRecorder is the mock recorder for MockSummaryServiceInterface.
type MockSummaryServiceInterfaceMockRecorder struct {
	mock *MockSummaryServiceInterface
}

// NewMockSummaryServiceInterface creates a new mock instance.
func NewMockSummaryServiceInterface(ctrl *gomock.Controller) *MockSummaryServiceInterface {
	mock := &MockSummaryServiceInterface{ctrl: ctrl}
	mock.recorder = &MockSummaryServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSummaryServiceInterface) EXPECT() *MockSummaryServiceInterfaceMockRecorder {
	return m.recorder
}

// GetDashboardSummary mocks base method.
func (m *MockSummaryServiceInterface) GetDashboardSummary(userID uuid.UUID) (*dto.DashboardSummaryResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDashboardSummary", userID)
	ret0, _ := ret[0].(*dto.DashboardSummaryResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDashboardSummary indicates an expected call of GetDashboardSummary.
func (mr *MockSummaryServiceInterfaceMockRecorder) GetDashboardSummary(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDashboardSummary", reflect.TypeOf((*MockSummaryServiceInterface)(nil).GetDashboardSummary), userID)
}

// MockSampleDataServiceInterface is a mock of SampleDataServiceInterface interface.
type MockSampleDataServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSampleDataServiceInterfaceMockRecorder
}

// MockSampleDataServiceInterfaceMockRecorder is the mock recorder for MockSampleDataServiceInterface.
type MockSampleDataServiceInterfaceMockRecorder struct {
	mock *MockSampleDataServiceInterface
}

// NewMockSampleDataServiceInterface creates a new mock instance.
func NewMockSampleDataServiceInterface(ctrl *gomock.Controller) *MockSampleDataServiceInterface {
	mock := &MockSampleDataServiceInterface{ctrl: ctrl}
	mock.recorder = &MockSampleDataServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSampleDataServiceInterface) EXPECT() *MockSampleDataServiceInterfaceMockRecorder {
	return m.recorder
}

// GenerateSampleData mocks base method.
func (m *MockSampleDataServiceInterface) GenerateSampleData(userID uuid.UUID, months int) (*dto.SampleDataResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateSampleData", userID, months)
	ret0, _ := ret[0].(*dto.SampleDataResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GenerateSampleData indicates an expected call of GenerateSampleData.
func (mr *MockSampleDataServiceInterfaceMockRecorder) GenerateSampleData(userID, months interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateSampleData", reflect.TypeOf((*MockSampleDataServiceInterface)(nil).GenerateSampleData), userID, months)
}

// MockMetricsRecorderInterface is a mock of MetricsRecorderInterface interface.
type MockMetricsRecorderInterface struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsRecorderInterfaceMockRecorder
}

// MockMetricsRecorderInterfaceMockRecorder is the mock recorder for MockMetricsRecorderInterface.
type MockMetricsRecorderInterfaceMockRecorder struct {
	mock *MockMetricsRecorderInterface
}

// NewMockMetricsRecorderInterface creates a new mock instance.
func NewMockMetricsRecorderInterface(ctrl *gomock.Controller) *MockMetricsRecorderInterface {
	mock := &MockMetricsRecorderInterface{ctrl: ctrl}
	mock.recorder = &MockMetricsRecorderInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetricsRecorderInterface) EXPECT() *MockMetricsRecorderInterfaceMockRecorder {
	return m.recorder
}

// IncrementCounter mocks base method.
func (m *MockMetricsRecorderInterface) IncrementCounter(name string, tags map[string]string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "IncrementCounter", name, tags)
}

// IncrementCounter indicates an expected call of IncrementCounter.
func (mr *MockMetricsRecorderInterfaceMockRecorder) IncrementCounter(name, tags interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementCounter", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).IncrementCounter), name, tags)
}

// RecordGauge mocks base method.
func (m *MockMetricsRecorderInterface) RecordGauge(name string, value float64, tags map[string]string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordGauge", name, value, tags)
}

// RecordGauge indicates an expected call of RecordGauge.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordGauge(name, value, tags interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordGauge", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordGauge), name, value, tags)
}

// RecordProcessingTime mocks base method.
func (m *MockMetricsRecorderInterface) RecordProcessingTime(name string, duration time.Duration) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordProcessingTime", name, duration)
}

// RecordProcessingTime indicates an expected call of RecordProcessingTime.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordProcessingTime(name, duration interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordProcessingTime", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordProcessingTime), name, duration)
}
