package gateway

import (
	"context"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
)

// AppointmentStore adds the by-user query appointments support
type AppointmentStore interface {
	Store[models.Appointment]
	ListByUserID(ctx context.Context, userID uint) ([]models.Appointment, error)
}

// Appointments is the appointment gateway; its owner is a customer
type Appointments struct {
	*Entity[models.Appointment]
	store AppointmentStore
}

// NewAppointments binds the appointment gateway to store
func NewAppointments(store AppointmentStore) *Appointments {
	return &Appointments{Entity: NewEntity[models.Appointment]("appointment", store), store: store}
}

// ListByUserID lists appointments of every customer owned by userID
func (g *Appointments) ListByUserID(ctx context.Context, userID uint) Envelope[[]models.Appointment] {
	return list(g.kind, func() ([]models.Appointment, error) { return g.store.ListByUserID(ctx, userID) })
}
