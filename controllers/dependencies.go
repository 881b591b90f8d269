package controllers

import (
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/gateway"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/services"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/store"
	"gorm.io/gorm"
)

// Dependencies are the gateways and services the router serves
type Dependencies struct {
	DB           *gorm.DB
	Customers    *gateway.Entity[models.Customer]
	Services     *gateway.Entity[models.Service]
	Appointments *gateway.Appointments
	Notes        *gateway.Notes
	Auth         *services.AuthService
	Exports      *services.ExportService
}

// NewDependencies wires gorm stores into gateways. Writes publish change
// events to pub when it is non-nil; exports are disabled when objects is nil.
func NewDependencies(db *gorm.DB, auth *services.AuthService, pub store.Publisher, objects services.S3Interface) Dependencies {
	customers := store.NewCustomers(db)
	svcs := store.NewServices(db)
	appointments := store.NewAppointments(db)
	notes := store.NewNotes(db)

	return Dependencies{
		DB:           db,
		Customers:    gateway.NewEntity[models.Customer]("customer", store.Observe[models.Customer](customers, pub, "customer")),
		Services:     gateway.NewEntity[models.Service]("service", store.Observe[models.Service](svcs, pub, "service")),
		Appointments: gateway.NewAppointments(store.ObserveAppointments(appointments, pub)),
		Notes:        gateway.NewNotes(store.ObserveNotes(notes, pub), notes.NoteOwners(pub)),
		Auth:         auth,
		Exports: services.NewExportService(services.ExportSources{
			Customers:    customers,
			Services:     svcs,
			Appointments: appointments,
			Notes:        notes.NoteOwners(nil),
		}, objects),
	}
}
