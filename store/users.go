package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	"gorm.io/gorm"
)

// ErrDuplicateEmail is returned when signing up with an email already in use
var ErrDuplicateEmail = errors.New("email already registered")

// Users persists accounts for the auth service
type Users struct {
	db *gorm.DB
}

// NewUsers returns the user store
func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// FindByEmail returns ErrNotFound for unknown addresses. Emails compare
// case-insensitively.
func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// Create inserts user, rejecting emails that are already registered
func (s *Users) Create(ctx context.Context, user *models.User) error {
	user.ID = 0
	user.Email = normalizeEmail(user.Email)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return ErrDuplicateEmail
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
