// Package store persists the API's entities with gorm.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// ErrNotFound is returned when no row matches the requested identity
var ErrNotFound = errors.New("record not found")

// Record is satisfied by pointers to the models a Table can hold
type Record[E any] interface {
	*E
	GetID() uint
	SetID(id uint)
}

// Table stores one entity kind whose rows belong to an owner through
// ownerColumn (e.g. customers.user_id).
type Table[E any, P Record[E]] struct {
	db          *gorm.DB
	ownerColumn string
}

// NewTable returns a table for E; P is inferred as *E
func NewTable[E any, P Record[E]](db *gorm.DB, ownerColumn string) *Table[E, P] {
	return &Table[E, P]{db: db, ownerColumn: ownerColumn}
}

func (t *Table[E, P]) name() string {
	var e E
	if tabler, ok := interface{}(e).(schema.Tabler); ok {
		return tabler.TableName()
	}
	return fmt.Sprintf("%T", e)
}

// Get returns ErrNotFound when id does not exist
func (t *Table[E, P]) Get(ctx context.Context, id uint) (*E, error) {
	var record E
	err := t.db.WithContext(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %d: %w", t.name(), id, err)
	}
	return &record, nil
}

// ListByOwner returns the owner's rows in insertion order
func (t *Table[E, P]) ListByOwner(ctx context.Context, ownerID uint) ([]E, error) {
	records := make([]E, 0)
	err := t.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: t.ownerColumn}, Value: ownerID}).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s for owner %d: %w", t.name(), ownerID, err)
	}
	return records, nil
}

// Create inserts payload and writes the assigned identity back into it
func (t *Table[E, P]) Create(ctx context.Context, payload *E) (uint, error) {
	P(payload).SetID(0)
	if err := t.db.WithContext(ctx).Omit(clause.Associations).Create(payload).Error; err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", t.name(), err)
	}
	return P(payload).GetID(), nil
}

// Update overwrites every column of the row identified by payload except
// its identity and creation time.
func (t *Table[E, P]) Update(ctx context.Context, payload *E) error {
	id := P(payload).GetID()
	if id == 0 {
		return fmt.Errorf("failed to update %s: missing id: %w", t.name(), ErrNotFound)
	}
	result := t.db.WithContext(ctx).
		Model(payload).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(payload)
	if result.Error != nil {
		return fmt.Errorf("failed to update %s %d: %w", t.name(), id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update %s %d: %w", t.name(), id, ErrNotFound)
	}
	return nil
}

// Delete removes the row; deleting a missing row returns ErrNotFound
func (t *Table[E, P]) Delete(ctx context.Context, id uint) error {
	result := t.db.WithContext(ctx).Delete(new(E), id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s %d: %w", t.name(), id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete %s %d: %w", t.name(), id, ErrNotFound)
	}
	return nil
}
