package models

import "time"

// Change actions carried by ChangeEvent
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeEvent describes a successful write to one record
type ChangeEvent struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ID         uint      `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}
