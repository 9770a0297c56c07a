// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package repository_mocks is a generated GoMock package.
package repository_mocks

import (
	reflect "reflect"
	models "sidequest/internal/models"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
)

// MockUserRepositoryInterface is a mock of UserRepositoryInterface interface.
type MockUserRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockUserRepositoryInterfaceMockRecorder
}

// MockUserRepositoryInterfaceMockRecorder is the mock recorder for MockUserRepositoryInterface.
type MockUserRepositoryInterfaceMockRecorder struct {
	mock *MockUserRepositoryInterface
}

// NewMockUserRepositoryInterface creates a new mock instance.
func NewMockUserRepositoryInterface(ctrl *gomock.Controller) *MockUserRepositoryInterface {
	mock := &MockUserRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockUserRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserRepositoryInterface) EXPECT() *MockUserRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockUserRepositoryInterface) Create(user *models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", user)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockUserRepositoryInterfaceMockRecorder) Create(user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockUserRepositoryInterface)(nil).Create), user)
}

// Delete mocks base method.
func (m *MockUserRepositoryInterface) Delete(userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockUserRepositoryInterfaceMockRecorder) Delete(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockUserRepositoryInterface)(nil).Delete), userID)
}

// GetByEmail mocks base method.
func (m *MockUserRepositoryInterface) GetByEmail(email string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByEmail", email)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByEmail indicates an expected call of GetByEmail.
func (mr *MockUserRepositoryInterfaceMockRecorder) GetByEmail(email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByEmail", reflect.TypeOf((*MockUserRepositoryInterface)(nil).GetByEmail), email)
}

// GetByID mocks base method.
func (m *MockUserRepositoryInterface) GetByID(id uuid.UUID) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockUserRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockUserRepositoryInterface)(nil).GetByID), id)
}

// ResetFailedLoginAttempts mocks base method.
func (m *MockUserRepositoryInterface) ResetFailedLoginAttempts(userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResetFailedLoginAttempts", userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// ResetFailedLoginAttempts indicates an expected call of ResetFailedLoginAttempts.
func (mr *MockUserRepositoryInterfaceMockRecorder) ResetFailedLoginAttempts(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResetFailedLoginAttempts", reflect.TypeOf((*MockUserRepositoryInterface)(nil).ResetFailedLoginAttempts), userID)
}

// Update mocks base method.
func (m *MockUserRepositoryInterface) Update(user *models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", user)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockUserRepositoryInterfaceMockRecorder) Update(user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockUserRepositoryInterface)(nil).Update), user)
}

// UpdateFailedLoginAttempts mocks base method.
func (m *MockUserRepositoryInterface) UpdateFailedLoginAttempts(user *models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateFailedLoginAttempts", user)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateFailedLoginAttempts indicates an expected call of UpdateFailedLoginAttempts.
func (mr *MockUserRepositoryInterfaceMockRecorder) UpdateFailedLoginAttempts(user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateFailedLoginAttempts", reflect.TypeOf((*MockUserRepositoryInterface)(nil).UpdateFailedLoginAttempts), user)
}

// UpdateFields mocks base method.
func (m *MockUserRepositoryInterface) UpdateFields(userID uuid.UUID, fields map[string]interface{}) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateFields", userID, fields)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateFields indicates an expected call of UpdateFields.
func (mr *MockUserRepositoryInterfaceMockRecorder) UpdateFields(userID, fields interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateFields", reflect.TypeOf((*MockUserRepositoryInterface)(nil).UpdateFields), userID, fields)
}

// UpdatePasswordHash mocks base method.
func (m *MockUserRepositoryInterface) UpdatePasswordHash(userID uuid.UUID, passwordHash string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePasswordHash", userID, passwordHash)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdatePasswordHash indicates an expected call of UpdatePasswordHash.
func (mr *MockUserRepositoryInterfaceMockRecorder) UpdatePasswordHash(userID, passwordHash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePasswordHash", reflect.TypeOf((*MockUserRepositoryInterface)(nil).UpdatePasswordHash), userID, passwordHash)
}

// MockCategoryRepositoryInterface is a mock of CategoryRepositoryInterface interface.
type MockCategoryRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockCategoryRepositoryInterfaceMockRecorder
}

// MockCategoryRepositoryInterfaceMockRecorder is the mock recorder for MockCategoryRepositoryInterface.
type MockCategoryRepositoryInterfaceMockRecorder struct {
	mock *MockCategoryRepositoryInterface
}

// NewMockCategoryRepositoryInterface creates a new mock instance.
func NewMockCategoryRepositoryInterface(ctrl *gomock.Controller) *MockCategoryRepositoryInterface {
	mock := &MockCategoryRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockCategoryRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCategoryRepositoryInterface) EXPECT() *MockCategoryRepositoryInterfaceMockRecorder {
	return m.recorder
}

// CountByUserID mocks base method.
func (m *MockCategoryRepositoryInterface) CountByUserID(userID uuid.UUID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountByUserID", userID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountByUserID indicates an expected call of CountByUserID.
func (mr *MockCategoryRepositoryInterfaceMockRecorder) CountByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountByUserID", reflect.TypeOf((*MockCategoryRepositoryInterface)(nil).CountByUserID), userID)
}

// GetByUserID mocks base method.
func (m *MockCategoryRepositoryInterface) GetByUserID(userID uuid.UUID) ([]models.Category, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID)
	ret0, _ := ret[0].([]models.Category)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockCategoryRepositoryInterfaceMockRecorder) GetByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockCategoryRepositoryInterface)(nil).GetByUserID), userID)
}

// ReplaceAllForUser mocks base method.
func (m *MockCategoryRepositoryInterface) ReplaceAllForUser(userID uuid.UUID, categories []models.Category) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReplaceAllForUser", userID, categories)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReplaceAllForUser indicates an expected call of ReplaceAllForUser.
func (mr *MockCategoryRepositoryInterfaceMockRecorder) ReplaceAllForUser(userID, categories interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReplaceAllForUser", reflect.TypeOf((*MockCategoryRepositoryInterface)(nil).ReplaceAllForUser), userID, categories)
}

// MockExpenseRepositoryInterface is a mock of ExpenseRepositoryInterface interface.
type MockExpenseRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockExpenseRepositoryInterfaceMockRecorder
}

// MockExpenseRepositoryInterfaceMockRecorder is the mock recorder for MockExpenseRepositoryInterface.
type MockExpenseRepositoryInterfaceMockRecorder struct {
	mock *MockExpenseRepositoryInterface
}

// NewMockExpenseRepositoryInterface creates a new mock instance.
func NewMockExpenseRepositoryInterface(ctrl *gomock.Controller) *MockExpenseRepositoryInterface {
	mock := &MockExpenseRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockExpenseRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExpenseRepositoryInterface) EXPECT() *MockExpenseRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockExpenseRepositoryInterface) Create(expense *models.Expense) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", expense)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) Create(expense interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).Create), expense)
}

// Delete mocks base method.
func (m *MockExpenseRepositoryInterface) Delete(id, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) Delete(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).Delete), id, userID)
}

// GetByID mocks base method.
func (m *MockExpenseRepositoryInterface) GetByID(id, userID uuid.UUID) (*models.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id, userID)
	ret0, _ := ret[0].(*models.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) GetByID(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).GetByID), id, userID)
}

// GetByUserID mocks base method.
func (m *MockExpenseRepositoryInterface) GetByUserID(userID uuid.UUID) ([]models.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID)
	ret0, _ := ret[0].([]models.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) GetByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).GetByUserID), userID)
}

// GetByUserIDAndDateRange mocks base method.
func (m *MockExpenseRepositoryInterface) GetByUserIDAndDateRange(userID uuid.UUID, start, end time.Time) ([]models.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserIDAndDateRange", userID, start, end)
	ret0, _ := ret[0].([]models.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserIDAndDateRange indicates an expected call of GetByUserIDAndDateRange.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) GetByUserIDAndDateRange(userID, start, end interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserIDAndDateRange", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).GetByUserIDAndDateRange), userID, start, end)
}

// Update mocks base method.
func (m *MockExpenseRepositoryInterface) Update(expense *models.Expense) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", expense)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) Update(expense interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).Update), expense)
}

// MockIncomeRepositoryInterface is a mock of IncomeRepositoryInterface interface.
type MockIncomeRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockIncomeRepositoryInterfaceMockRecorder
}

// MockIncomeRepositoryInterfaceMockRecorder is the mock recorder for MockIncomeRepositoryInterface.
type MockIncomeRepositoryInterfaceMockRecorder struct {
	mock *MockIncomeRepositoryInterface
}

// NewMockIncomeRepositoryInterface creates a new mock instance.
func NewMockIncomeRepositoryInterface(ctrl *gomock.Controller) *MockIncomeRepositoryInterface {
	mock := &MockIncomeRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockIncomeRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIncomeRepositoryInterface) EXPECT() *MockIncomeRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockIncomeRepositoryInterface) Create(income *models.Income) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", income)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockIncomeRepositoryInterfaceMockRecorder) Create(income interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockIncomeRepositoryInterface)(nil).Create), income)
}

// Delete mocks base method.
func (m *MockIncomeRepositoryInterface) Delete(id, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockIncomeRepositoryInterfaceMockRecorder) Delete(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockIncomeRepositoryInterface)(nil).Delete), id, userID)
}

// GetByID mocks base method.
func (m *MockIncomeRepositoryInterface) GetByID(id, userID uuid.UUID) (*models.Income, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id, userID)
	ret0, _ := ret[0].(*models.Income)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockIncomeRepositoryInterfaceMockRecorder) GetByID(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockIncomeRepositoryInterface)(nil).GetByID), id, userID)
}

// GetByUserID mocks base method.
func (m *MockIncomeRepositoryInterface) GetByUserID(userID uuid.UUID) ([]models.Income, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID)
	ret0, _ := ret[0].([]models.Income)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockIncomeRepositoryInterfaceMockRecorder) GetByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockIncomeRepositoryInterface)(nil).GetByUserID), userID)
}

// GetByUserIDAndDateRange mocks base method.
func (m *MockIncomeRepositoryInterface) GetByUserIDAndDateRange(userID uuid.UUID, start, end time.Time) ([]models.Income, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserIDAndDateRange", userID, start, end)
	ret0, _ := ret[0].([]models.Income)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserIDAndDateRange indicates an expected call of GetByUserIDAndDateRange.
func (mr *MockIncomeRepositoryInterfaceMockRecorder) GetByUserIDAndDateRange(userID, start, end interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserIDAndDateRange", reflect.TypeOf((*MockIncomeRepositoryInterface)(nil).GetByUserIDAndDateRange), userID, start, end)
}

// Update mocks base method.
func (m *MockIncomeRepositoryInterface) Update(income *models.Income) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", income)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockIncomeRepositoryInterfaceMockRecorder) Update(income interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockIncomeRepositoryInterface)(nil).Update), income)
}

// MockConversationRepositoryInterface is a mock of ConversationRepositoryInterface interface.
type MockConversationRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockConversationRepositoryInterfaceMockRecorder
}

// MockConversationRepositoryInterfaceMockRecorder is the mock recorder for MockConversationRepositoryInterface.
type MockConversationRepositoryInterfaceMockRecorder struct {
	mock *MockConversationRepositoryInterface
}

// NewMockConversationRepositoryInterface creates a new mock instance.
func NewMockConversationRepositoryInterface(ctrl *gomock.Controller) *MockConversationRepositoryInterface {
	mock := &MockConversationRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockConversationRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockConversationRepositoryInterface) EXPECT() *MockConversationRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockConversationRepositoryInterface) Create(conversation *models.Conversation) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", conversation)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockConversationRepositoryInterfaceMockRecorder) Create(conversation interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockConversationRepositoryInterface)(nil).Create), conversation)
}

// Delete mocks base method.
func (m *MockConversationRepositoryInterface) Delete(id, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockConversationRepositoryInterfaceMockRecorder) Delete(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockConversationRepositoryInterface)(nil).Delete), id, userID)
}

// GetByID mocks base method.
func (m *MockConversationRepositoryInterface) GetByID(id, userID uuid.UUID) (*models.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id, userID)
	ret0, _ := ret[0].(*models.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockConversationRepositoryInterfaceMockRecorder) GetByID(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockConversationRepositoryInterface)(nil).GetByID), id, userID)
}

// GetByUserID mocks base method.
func (m *MockConversationRepositoryInterface) GetByUserID(userID uuid.UUID) ([]models.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID)
	ret0, _ := ret[0].([]models.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockConversationRepositoryInterfaceMockRecorder) GetByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockConversationRepositoryInterface)(nil).GetByUserID), userID)
}

// Touch mocks base method.
func (m *MockConversationRepositoryInterface) Touch(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Touch", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Touch indicates an expected call of Touch.
func (mr *MockConversationRepositoryInterfaceMockRecorder) Touch(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Touch", reflect.TypeOf((*MockConversationRepositoryInterface)(nil).Touch), id)
}

// MockMessageRepositoryInterface is a mock of MessageRepositoryInterface interface.
type MockMessageRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockMessageRepositoryInterfaceMockRecorder
}

// MockMessageRepositoryInterfaceMockRecorder is the mock recorder for MockMessageRepositoryInterface.
type MockMessageRepositoryInterfaceMockRecorder struct {
	mock *MockMessageRepositoryInterface
}

// NewMockMessageRepositoryInterface creates a new mock instance.
func NewMockMessageRepositoryInterface(ctrl *gomock.Controller) *MockMessageRepositoryInterface {
	mock := &MockMessageRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockMessageRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMessageRepositoryInterface) EXPECT() *MockMessageRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockMessageRepositoryInterface) Create(message *models.Message) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", message)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockMessageRepositoryInterfaceMockRecorder) Create(message interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockMessageRepositoryInterface)(nil).Create), message)
}

// GetByConversationID mocks base method.
func (m *MockMessageRepositoryInterface) GetByConversationID(conversationID uuid.UUID) ([]models.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByConversationID", conversationID)
	ret0, _ := ret[0].([]models.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByConversationID indicates an expected call of GetByConversationID.
func (mr *MockMessageRepositoryInterfaceMockRecorder) GetByConversationID(conversationID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByConversationID", reflect.TypeOf((*MockMessageRepositoryInterface)(nil).GetByConversationID), conversationID)
}

// MockRefreshTokenRepositoryInterface is a mock of RefreshTokenRepositoryInterface interface.
type MockRefreshTokenRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockRefreshTokenRepositoryInterfaceMockRecorder
}

// MockRefreshTokenRepositoryInterfaceMockRecorder is the mock recorder for MockRefreshTokenRepositoryInterface.
type MockRefreshTokenRepositoryInterfaceMockRecorder struct {
	mock *MockRefreshTokenRepositoryInterface
}

// NewMockRefreshTokenRepositoryInterface creates a new mock instance.
func NewMockRefreshTokenRepositoryInterface(ctrl *gomock.Controller) *MockRefreshTokenRepositoryInterface {
	mock := &MockRefreshTokenRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockRefreshTokenRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRefreshTokenRepositoryInterface) EXPECT() *MockRefreshTokenRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockRefreshTokenRepositoryInterface) Create(token *models.RefreshToken) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", token)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockRefreshTokenRepositoryInterfaceMockRecorder) Create(token interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRefreshTokenRepositoryInterface)(nil).Create), token)
}

// DeleteExpired mocks base method.
func (m *MockRefreshTokenRepositoryInterface) DeleteExpired() (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteExpired")
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteExpired indicates an expected call of DeleteExpired.
func (mr *MockRefreshTokenRepositoryInterfaceMockRecorder) DeleteExpired() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteExpired", reflect.TypeOf((*MockRefreshTokenRepositoryInterface)(nil).DeleteExpired))
}

// GetByTokenHash mocks base method.
func (m *MockRefreshTokenRepositoryInterface) GetByTokenHash(tokenHash string) (*models.RefreshToken, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByTokenHash", tokenHash)
	ret0, _ := ret[0].(*models.RefreshToken)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByTokenHash indicates an expected call of GetByTokenHash.
func (mr *MockRefreshTokenRepositoryInterfaceMockRecorder) GetByTokenHash(tokenHash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByTokenHash", reflect.TypeOf((*MockRefreshTokenRepositoryInterface)(nil).GetByTokenHash), tokenHash)
}

// Revoke mocks base method.
func (m *MockRefreshTokenRepositoryInterface) Revoke(tokenID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Revoke", tokenID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Revoke indicates an expected call of Revoke.
func (mr *MockRefreshTokenRepositoryInterfaceMockRecorder) Revoke(tokenID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Revoke", reflect.TypeOf((*MockRefreshTokenRepositoryInterface)(nil).Revoke), tokenID)
}

// RevokeAllForUser mocks base method.
func (m *MockRefreshTokenRepositoryInterface) RevokeAllForUser(userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RevokeAllForUser", userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RevokeAllForUser indicates an expected call of RevokeAllForUser.
func (mr *MockRefreshTokenRepositoryInterfaceMockRecorder) RevokeAllForUser(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RevokeAllForUser", reflect.TypeOf((*MockRefreshTokenRepositoryInterface)(nil).RevokeAllForUser), userID)
}

// MockBlacklistedTokenRepositoryInterface is a mock of BlacklistedTokenRepositoryInterface interface.
type MockBlacklistedTokenRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockBlacklistedTokenRepositoryInterfaceMockRecorder
}

// MockBlacklistedTokenRepositoryInterfaceMockRecorder is the mock recorder for MockBlacklistedTokenRepositoryInterface.
type MockBlacklistedTokenRepositoryInterfaceMockRecorder struct {
	mock *MockBlacklistedTokenRepositoryInterface
}

// NewMockBlacklistedTokenRepositoryInterface creates a new mock instance.
func NewMockBlacklistedTokenRepositoryInterface(ctrl *gomock.Controller) *MockBlacklistedTokenRepositoryInterface {
	mock := &MockBlacklistedTokenRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockBlacklistedTokenRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBlacklistedTokenRepositoryInterface) EXPECT() *MockBlacklistedTokenRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockBlacklistedTokenRepositoryInterface) Create(token *models.BlacklistedToken) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", token)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockBlacklistedTokenRepositoryInterfaceMockRecorder) Create(token interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockBlacklistedTokenRepositoryInterface)(nil).Create), token)
}

// DeleteExpired mocks base method.
func (m *MockBlacklistedTokenRepositoryInterface) DeleteExpired() (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteExpired")
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteExpired indicates an expected call of DeleteExpired.
func (mr *MockBlacklistedTokenRepositoryInterfaceMockRecorder) DeleteExpired() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteExpired", reflect.TypeOf((*MockBlacklistedTokenRepositoryInterface)(nil).DeleteExpired))
}

// GetByJTI mocks base method.
func (m *MockBlacklistedTokenRepositoryInterface) GetByJTI(jti string) (*models.BlacklistedToken, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByJTI", jti)
	ret0, _ := ret[0].(*models.BlacklistedToken)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByJTI indicates an expected call of GetByJTI.
func (mr *MockBlacklistedTokenRepositoryInterfaceMockRecorder) GetByJTI(jti interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByJTI", reflect.TypeOf((*MockBlacklistedTokenRepositoryInterface)(nil).GetByJTI), jti)
}
