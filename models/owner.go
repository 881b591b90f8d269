package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OwnerKind names the kind of entity a note is attached to
type OwnerKind string

const (
	OwnerCustomer    OwnerKind = "customer"
	OwnerAppointment OwnerKind = "appointment"
	OwnerService     OwnerKind = "service"
)

// OwnerKinds lists every recognized owner kind
var OwnerKinds = []OwnerKind{OwnerCustomer, OwnerAppointment, OwnerService}

// ErrInvalidOwnerKind is returned when a tag is outside the closed set of owner kinds
type ErrInvalidOwnerKind struct {
	Kind string
}

func (e *ErrInvalidOwnerKind) Error() string {
	return fmt.Sprintf("invalid owner kind %q", e.Kind)
}

// ParseOwnerKind accepts any casing of a recognized kind ("Customer", "customer")
func ParseOwnerKind(s string) (OwnerKind, error) {
	kind := OwnerKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.Valid() {
		return "", &ErrInvalidOwnerKind{Kind: s}
	}
	return kind, nil
}

// Valid reports whether k is one of the recognized owner kinds
func (k OwnerKind) Valid() bool {
	switch k {
	case OwnerCustomer, OwnerAppointment, OwnerService:
		return true
	}
	return false
}

// Column is the notes table column holding the owner's identity
func (k OwnerKind) Column() string {
	return string(k) + "_id"
}

func (k OwnerKind) String() string {
	return string(k)
}

// UnmarshalJSON keeps the raw tag so an unknown kind can be reported by the
// caller instead of failing the whole request decode.
func (k *OwnerKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if parsed, err := ParseOwnerKind(s); err == nil {
		*k = parsed
		return nil
	}
	*k = OwnerKind(s)
	return nil
}

// OwnerRef identifies the single entity a note belongs to
type OwnerRef struct {
	Kind OwnerKind `json:"owner_kind"`
	ID   uint      `json:"owner_id"`
}

func (r OwnerRef) String() string {
	return fmt.Sprintf("%s/%d", r.Kind, r.ID)
}
