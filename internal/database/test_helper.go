package database

import (
	"fmt"
	"testing"
	"time"

	"sidequest/internal/config"
	"sidequest/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "hashed_password",
		DisplayName:  "Test User",
		Currency:     models.DefaultCurrency,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestExpense(t *testing.T, db *DB, user *models.User, amount string, category string) *models.Expense {
	t.Helper()

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid test amount %q: %v", amount, err)
	}

	expense := &models.Expense{
		UserID:      user.ID,
		Date:        time.Now().UTC().Truncate(24 * time.Hour),
		Amount:      amt,
		Description: "Test expense",
		Category:    category,
	}

	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}

	return expense
}

func CreateTestIncome(t *testing.T, db *DB, user *models.User, amount string, category string) *models.Income {
	t.Helper()

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid test amount %q: %v", amount, err)
	}

	income := &models.Income{
		UserID:      user.ID,
		Date:        time.Now().UTC().Truncate(24 * time.Hour),
		Amount:      amt,
		Description: "Test income",
		Category:    category,
	}

	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}

	return income
}

func CreateTestConversation(t *testing.T, db *DB, user *models.User, title string) *models.Conversation {
	t.Helper()

	conversation := &models.Conversation{
		UserID: user.ID,
		Title:  title,
	}

	if err := db.Create(conversation).Error; err != nil {
		t.Fatalf("failed to create test conversation: %v", err)
	}

	return conversation
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"messages",
		"conversations",
		"expenses",
		"income",
		"categories",
		"blacklisted_tokens",
		"refresh_tokens",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
