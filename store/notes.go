package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Notes reads and writes notes by their global identity
type Notes struct {
	db *gorm.DB
}

// NewNotes returns the note store
func NewNotes(db *gorm.DB) *Notes {
	return &Notes{db: db}
}

// Get returns ErrNotFound when no note has id
func (s *Notes) Get(ctx context.Context, id uint) (*models.Note, error) {
	var note models.Note
	err := s.db.WithContext(ctx).First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note %d: %w", id, err)
	}
	return &note, nil
}

// Update writes title and body only. The owner columns are never touched,
// so a note stays with the entity it was created for.
func (s *Notes) Update(ctx context.Context, note *models.Note) error {
	if note.ID == 0 {
		return fmt.Errorf("failed to update note: missing id: %w", ErrNotFound)
	}
	result := s.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", note.ID).
		Updates(map[string]interface{}{
			"title":      note.Title,
			"body":       note.Body,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update note %d: %w", note.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update note %d: %w", note.ID, ErrNotFound)
	}
	return nil
}

// Delete returns ErrNotFound when no note has id
func (s *Notes) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Note{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete note %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete note %d: %w", id, ErrNotFound)
	}
	return nil
}

// Owner binds note creation and listing to one owner kind
func (s *Notes) Owner(kind models.OwnerKind) *NoteOwner {
	return &NoteOwner{db: s.db, kind: kind}
}

// NoteOwner is the notes table seen through one owner column
type NoteOwner struct {
	db   *gorm.DB
	kind models.OwnerKind
}

// Kind returns the owner kind this binding writes
func (o *NoteOwner) Kind() models.OwnerKind {
	return o.kind
}

// Create attaches a new note to ownerID
func (o *NoteOwner) Create(ctx context.Context, ownerID uint, input models.NoteInput) (uint, error) {
	if !o.kind.Valid() {
		return 0, &models.ErrInvalidOwnerKind{Kind: string(o.kind)}
	}
	note := models.NewNote(models.OwnerRef{Kind: o.kind, ID: ownerID}, input)
	if err := o.db.WithContext(ctx).Omit(clause.Associations).Create(&note).Error; err != nil {
		return 0, fmt.Errorf("failed to create %s note: %w", o.kind, err)
	}
	return note.ID, nil
}

// List returns the notes attached to ownerID
func (o *NoteOwner) List(ctx context.Context, ownerID uint) ([]models.Note, error) {
	if !o.kind.Valid() {
		return nil, &models.ErrInvalidOwnerKind{Kind: string(o.kind)}
	}
	notes := make([]models.Note, 0)
	err := o.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: o.kind.Column()}, Value: ownerID}).
		Order("id").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s notes: %w", o.kind, err)
	}
	return notes, nil
}
