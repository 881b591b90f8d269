package gateway

import (
	"context"
	"errors"
	"sort"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
)

var errMissing = errors.New("missing")

// memCustomers is an in-memory Store[models.Customer]
type memCustomers struct {
	rows   map[uint]models.Customer
	nextID uint
	fail   error
	calls  int
}

func newMemCustomers() *memCustomers {
	return &memCustomers{rows: map[uint]models.Customer{}}
}

func (m *memCustomers) Get(_ context.Context, id uint) (*models.Customer, error) {
	m.calls++
	if m.fail != nil {
		return nil, m.fail
	}
	c, ok := m.rows[id]
	if !ok {
		return nil, errMissing
	}
	return &c, nil
}

func (m *memCustomers) ListByOwner(_ context.Context, ownerID uint) ([]models.Customer, error) {
	m.calls++
	if m.fail != nil {
		return nil, m.fail
	}
	var out []models.Customer
	for _, c := range m.rows {
		if c.UserID == ownerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memCustomers) Create(_ context.Context, c *models.Customer) (uint, error) {
	m.calls++
	if m.fail != nil {
		return 0, m.fail
	}
	m.nextID++
	c.ID = m.nextID
	m.rows[c.ID] = *c
	return c.ID, nil
}

func (m *memCustomers) Update(_ context.Context, c *models.Customer) error {
	m.calls++
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.rows[c.ID]; !ok {
		return errMissing
	}
	m.rows[c.ID] = *c
	return nil
}

func (m *memCustomers) Delete(_ context.Context, id uint) error {
	m.calls++
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.rows[id]; !ok {
		return errMissing
	}
	delete(m.rows, id)
	return nil
}

// memNotes backs both NoteStore and the per-kind NoteOwnerStores
type memNotes struct {
	rows   map[uint]models.Note
	nextID uint
	calls  int
}

func newMemNotes() *memNotes {
	return &memNotes{rows: map[uint]models.Note{}}
}

func (m *memNotes) Get(_ context.Context, id uint) (*models.Note, error) {
	m.calls++
	n, ok := m.rows[id]
	if !ok {
		return nil, errMissing
	}
	return &n, nil
}

func (m *memNotes) Update(_ context.Context, note *models.Note) error {
	m.calls++
	existing, ok := m.rows[note.ID]
	if !ok {
		return errMissing
	}
	existing.Title, existing.Body = note.Title, note.Body
	m.rows[note.ID] = existing
	return nil
}

func (m *memNotes) Delete(_ context.Context, id uint) error {
	m.calls++
	if _, ok := m.rows[id]; !ok {
		return errMissing
	}
	delete(m.rows, id)
	return nil
}

func (m *memNotes) owners() map[models.OwnerKind]NoteOwnerStore {
	out := map[models.OwnerKind]NoteOwnerStore{}
	for _, kind := range models.OwnerKinds {
		out[kind] = &memNoteOwner{notes: m, kind: kind}
	}
	return out
}

type memNoteOwner struct {
	notes *memNotes
	kind  models.OwnerKind
}

func (o *memNoteOwner) Create(_ context.Context, ownerID uint, input models.NoteInput) (uint, error) {
	o.notes.calls++
	o.notes.nextID++
	note := models.NewNote(models.OwnerRef{Kind: o.kind, ID: ownerID}, input)
	note.ID = o.notes.nextID
	o.notes.rows[note.ID] = note
	return note.ID, nil
}

func (o *memNoteOwner) List(_ context.Context, ownerID uint) ([]models.Note, error) {
	o.notes.calls++
	var out []models.Note
	for _, n := range o.notes.rows {
		if ref, ok := n.Owner(); ok && ref.Kind == o.kind && ref.ID == ownerID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
