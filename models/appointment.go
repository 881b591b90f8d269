package models

import (
	"time"
)

// Appointment is a booking for one customer, optionally for one service
type Appointment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"` // foreign key to customers table
	Customer   Customer  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	ServiceID  *uint     `gorm:"index" json:"service_id"` // nullable, foreign key to services table
	Service    *Service  `gorm:"foreignKey:ServiceID;constraint:OnDelete:SET NULL" json:"-"`
	Title      string    `json:"title"`
	StartsAt   time.Time `gorm:"not null" json:"starts_at"`
	EndsAt     time.Time `gorm:"not null" json:"ends_at"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// GetID returns the appointment's identity
func (a Appointment) GetID() uint {
	return a.ID
}

// SetID overwrites the identity; stores clear it before insert
func (a *Appointment) SetID(id uint) {
	a.ID = id
}
