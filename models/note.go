package models

import (
	"time"
)

// NoteInput is the caller-supplied part of a note: no identity and no owner
type NoteInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Note is free text attached to exactly one customer, appointment or service.
// All notes share one identity sequence, so an ID alone finds a note.
type Note struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Title         string       `json:"title"`
	Body          string       `gorm:"type:text;not null" json:"body"`
	CustomerID    *uint        `gorm:"index;check:note_single_owner,(CASE WHEN customer_id IS NULL THEN 0 ELSE 1 END) + (CASE WHEN appointment_id IS NULL THEN 0 ELSE 1 END) + (CASE WHEN service_id IS NULL THEN 0 ELSE 1 END) = 1" json:"customer_id"`
	Customer      *Customer    `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	AppointmentID *uint        `gorm:"index" json:"appointment_id"`
	Appointment   *Appointment `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"-"`
	ServiceID     *uint        `gorm:"index" json:"service_id"`
	Service       *Service     `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// TableName specifies the table name for the Note model
func (Note) TableName() string {
	return "notes"
}

// NewNote builds an unsaved note owned by ref
func NewNote(ref OwnerRef, input NoteInput) Note {
	note := Note{Title: input.Title, Body: input.Body}
	id := ref.ID
	switch ref.Kind {
	case OwnerCustomer:
		note.CustomerID = &id
	case OwnerAppointment:
		note.AppointmentID = &id
	case OwnerService:
		note.ServiceID = &id
	}
	return note
}

// Owner reports which entity the note belongs to. ok is false when the note
// has no owner column set, or more than one.
func (n Note) Owner() (ref OwnerRef, ok bool) {
	set := 0
	if n.CustomerID != nil {
		ref, set = OwnerRef{Kind: OwnerCustomer, ID: *n.CustomerID}, set+1
	}
	if n.AppointmentID != nil {
		ref, set = OwnerRef{Kind: OwnerAppointment, ID: *n.AppointmentID}, set+1
	}
	if n.ServiceID != nil {
		ref, set = OwnerRef{Kind: OwnerService, ID: *n.ServiceID}, set+1
	}
	if set != 1 {
		return OwnerRef{}, false
	}
	return ref, true
}
