package store

import (
	"context"
	"fmt"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	"gorm.io/gorm"
)

// Appointments is the appointment table, owned by customers
type Appointments struct {
	*Table[models.Appointment, *models.Appointment]
	db *gorm.DB
}

// NewAppointments returns the appointment store
func NewAppointments(db *gorm.DB) *Appointments {
	return &Appointments{Table: NewTable[models.Appointment](db, "customer_id"), db: db}
}

// ListByUserID returns the appointments of every customer belonging to userID
func (s *Appointments) ListByUserID(ctx context.Context, userID uint) ([]models.Appointment, error) {
	customers := s.db.Model(&models.Customer{}).Select("id").Where("user_id = ?", userID)

	appointments := make([]models.Appointment, 0)
	err := s.db.WithContext(ctx).
		Where("customer_id IN (?)", customers).
		Order("starts_at, id").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for user %d: %w", userID, err)
	}
	return appointments, nil
}

// NewCustomers returns the customer store, owned by users
func NewCustomers(db *gorm.DB) *Table[models.Customer, *models.Customer] {
	return NewTable[models.Customer](db, "user_id")
}

// NewServices returns the service store, owned by users
func NewServices(db *gorm.DB) *Table[models.Service, *models.Service] {
	return NewTable[models.Service](db, "user_id")
}
