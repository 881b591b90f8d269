package gateway

import (
	"context"
	"log"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
)

// NoteStore reaches any note by its identity, whatever its owner
type NoteStore interface {
	Get(ctx context.Context, id uint) (*models.Note, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id uint) error
}

// NoteOwnerStore creates and lists notes through one owner column
type NoteOwnerStore interface {
	Create(ctx context.Context, ownerID uint, input models.NoteInput) (uint, error)
	List(ctx context.Context, ownerID uint) ([]models.Note, error)
}

// Notes is the note gateway. Create and list dispatch on the owner kind;
// get, update and delete need only the note's identity.
type Notes struct {
	store  NoteStore
	owners map[models.OwnerKind]NoteOwnerStore
}

// NewNotes binds the note gateway to its stores
func NewNotes(store NoteStore, owners map[models.OwnerKind]NoteOwnerStore) *Notes {
	return &Notes{store: store, owners: owners}
}

func (n *Notes) owner(kind models.OwnerKind) (NoteOwnerStore, bool) {
	if !kind.Valid() {
		return nil, false
	}
	owner, ok := n.owners[kind]
	return owner, ok && owner != nil
}

// CreateNote attaches a new note to the owner identified by kind and ownerID
func (n *Notes) CreateNote(ctx context.Context, kind models.OwnerKind, ownerID uint, input models.NoteInput) Envelope[Created] {
	owner, ok := n.owner(kind)
	if !ok {
		return Fail[Created](MessageInvalidOwnerKind)
	}
	id, err := owner.Create(ctx, ownerID, input)
	if err != nil {
		log.Printf("gateway: create %s note failed: %v", kind, err)
		return Fail[Created](createFailed("note"))
	}
	return OK(&Created{ID: id})
}

// ListNotesByOwner succeeds with an empty list when the owner has no notes
func (n *Notes) ListNotesByOwner(ctx context.Context, kind models.OwnerKind, ownerID uint) Envelope[[]models.Note] {
	owner, ok := n.owner(kind)
	if !ok {
		return Fail[[]models.Note](MessageInvalidOwnerKind)
	}
	return list("note", func() ([]models.Note, error) { return owner.List(ctx, ownerID) })
}

// GetNoteByID finds a note of any owner kind
func (n *Notes) GetNoteByID(ctx context.Context, id uint) Envelope[models.Note] {
	note, err := n.store.Get(ctx, id)
	if err != nil || note == nil {
		if err != nil {
			log.Printf("gateway: get note %d: %v", id, err)
		}
		return Fail[models.Note](notFound("note"))
	}
	return OK(note)
}

// UpdateNoteByID replaces the title and body of note.ID; the owner is kept
func (n *Notes) UpdateNoteByID(ctx context.Context, note *models.Note) Envelope[Empty] {
	if note == nil {
		return Fail[Empty](MessageInvalidRequest)
	}
	if err := n.store.Update(ctx, note); err != nil {
		log.Printf("gateway: update note %d failed: %v", note.ID, err)
		return Fail[Empty](updateFailed("note"))
	}
	return Done()
}

// DeleteNoteByID fails when the note is already gone
func (n *Notes) DeleteNoteByID(ctx context.Context, id uint) Envelope[Empty] {
	if err := n.store.Delete(ctx, id); err != nil {
		log.Printf("gateway: delete note %d failed: %v", id, err)
		return Fail[Empty](deleteFailed("note"))
	}
	return Done()
}
