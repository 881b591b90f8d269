// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"testing"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/config"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RequireTestEnvironment fails the test unless GO_ENV=test, so a stray run
// never points at a real database.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: tests must run with GO_ENV=test. Current GO_ENV=%q", env)
	}
}

// MustSetTestEnvironment sets GO_ENV to test and fails if it cannot be set.
// Use this in TestMain or suite setup functions.
func MustSetTestEnvironment(t *testing.T) {
	t.Helper()

	if err := os.Setenv("GO_ENV", "test"); err != nil {
		t.Fatalf("Failed to set GO_ENV=test: %v", err)
	}
}

// NewTestDB opens a private, migrated in-memory SQLite database with foreign
// keys enforced. It is closed when the test ends.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// SeedUser inserts a user with a placeholder password hash
func SeedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{Name: "Test User", Email: email, PasswordHash: "not-a-real-hash"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

// SeedCustomer inserts a customer owned by userID
func SeedCustomer(t *testing.T, db *gorm.DB, userID uint, firstName string) models.Customer {
	t.Helper()

	customer := models.Customer{UserID: userID, FirstName: firstName, LastName: "Tester"}
	if err := db.Omit(clause.Associations).Create(&customer).Error; err != nil {
		t.Fatalf("Failed to seed customer: %v", err)
	}
	return customer
}

// SeedService inserts a service owned by userID
func SeedService(t *testing.T, db *gorm.DB, userID uint, name string) models.Service {
	t.Helper()

	service := models.Service{UserID: userID, Name: name, DurationMinutes: 30, PriceCents: 2500}
	if err := db.Omit(clause.Associations).Create(&service).Error; err != nil {
		t.Fatalf("Failed to seed service: %v", err)
	}
	return service
}
