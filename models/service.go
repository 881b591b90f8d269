package models

import (
	"time"
)

// Service is an offering a user sells, e.g. a haircut
type Service struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"` // foreign key to users table
	User            User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name            string    `gorm:"not null" json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `gorm:"not null;default:0;check:duration_minutes >= 0" json:"duration_minutes"`
	PriceCents      int64     `gorm:"not null;default:0;check:price_cents >= 0" json:"price_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}

// GetID returns the service's identity
func (s Service) GetID() uint {
	return s.ID
}

// SetID overwrites the identity; stores clear it before insert
func (s *Service) SetID(id uint) {
	s.ID = id
}
