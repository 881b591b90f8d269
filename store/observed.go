package store

import (
	"context"
	"log"
	"time"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/gateway"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
)

// Publisher delivers change events. Failures are logged and never fail the
// write that produced the event.
type Publisher interface {
	Publish(ctx context.Context, event models.ChangeEvent) error
}

type identified interface {
	GetID() uint
}

func emit(ctx context.Context, pub Publisher, entity, action string, id uint) {
	event := models.ChangeEvent{Entity: entity, Action: action, ID: id, OccurredAt: time.Now().UTC()}
	if err := pub.Publish(ctx, event); err != nil {
		log.Printf("Failed to publish %s %s event for %d: %v", entity, action, id, err)
	}
}

// Observed wraps an entity store so successful writes publish events
type Observed[E any] struct {
	gateway.Store[E]
	pub    Publisher
	entity string
}

// Observe returns inner unchanged when pub is nil
func Observe[E any](inner gateway.Store[E], pub Publisher, entity string) gateway.Store[E] {
	if pub == nil {
		return inner
	}
	return &Observed[E]{Store: inner, pub: pub, entity: entity}
}

func (o *Observed[E]) Create(ctx context.Context, payload *E) (uint, error) {
	id, err := o.Store.Create(ctx, payload)
	if err == nil {
		emit(ctx, o.pub, o.entity, models.ActionCreated, id)
	}
	return id, err
}

func (o *Observed[E]) Update(ctx context.Context, payload *E) error {
	err := o.Store.Update(ctx, payload)
	if err == nil {
		var id uint
		if rec, ok := interface{}(*payload).(identified); ok {
			id = rec.GetID()
		}
		emit(ctx, o.pub, o.entity, models.ActionUpdated, id)
	}
	return err
}

func (o *Observed[E]) Delete(ctx context.Context, id uint) error {
	err := o.Store.Delete(ctx, id)
	if err == nil {
		emit(ctx, o.pub, o.entity, models.ActionDeleted, id)
	}
	return err
}

// ObservedAppointments keeps the by-user query of the wrapped store
type ObservedAppointments struct {
	gateway.Store[models.Appointment]
	inner gateway.AppointmentStore
}

// ObserveAppointments is Observe for the appointment store
func ObserveAppointments(inner gateway.AppointmentStore, pub Publisher) gateway.AppointmentStore {
	if pub == nil {
		return inner
	}
	return &ObservedAppointments{Store: Observe[models.Appointment](inner, pub, "appointment"), inner: inner}
}

func (o *ObservedAppointments) ListByUserID(ctx context.Context, userID uint) ([]models.Appointment, error) {
	return o.inner.ListByUserID(ctx, userID)
}

// ObservedNotes publishes events for note writes made by identity
type ObservedNotes struct {
	gateway.NoteStore
	pub Publisher
}

// ObserveNotes returns inner unchanged when pub is nil
func ObserveNotes(inner gateway.NoteStore, pub Publisher) gateway.NoteStore {
	if pub == nil {
		return inner
	}
	return &ObservedNotes{NoteStore: inner, pub: pub}
}

func (o *ObservedNotes) Update(ctx context.Context, note *models.Note) error {
	err := o.NoteStore.Update(ctx, note)
	if err == nil {
		emit(ctx, o.pub, "note", models.ActionUpdated, note.ID)
	}
	return err
}

func (o *ObservedNotes) Delete(ctx context.Context, id uint) error {
	err := o.NoteStore.Delete(ctx, id)
	if err == nil {
		emit(ctx, o.pub, "note", models.ActionDeleted, id)
	}
	return err
}

// ObservedNoteOwner publishes an event for every note it creates
type ObservedNoteOwner struct {
	gateway.NoteOwnerStore
	pub Publisher
}

// ObserveNoteOwner returns inner unchanged when pub is nil
func ObserveNoteOwner(inner gateway.NoteOwnerStore, pub Publisher) gateway.NoteOwnerStore {
	if pub == nil {
		return inner
	}
	return &ObservedNoteOwner{NoteOwnerStore: inner, pub: pub}
}

func (o *ObservedNoteOwner) Create(ctx context.Context, ownerID uint, input models.NoteInput) (uint, error) {
	id, err := o.NoteOwnerStore.Create(ctx, ownerID, input)
	if err == nil {
		emit(ctx, o.pub, "note", models.ActionCreated, id)
	}
	return id, err
}

// NoteOwners returns one binding per owner kind, each observed by pub
func (s *Notes) NoteOwners(pub Publisher) map[models.OwnerKind]gateway.NoteOwnerStore {
	owners := make(map[models.OwnerKind]gateway.NoteOwnerStore, len(models.OwnerKinds))
	for _, kind := range models.OwnerKinds {
		owners[kind] = ObserveNoteOwner(s.Owner(kind), pub)
	}
	return owners
}
