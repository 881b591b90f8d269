package gateway

import (
	"context"
	"testing"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesCreateAndListPerOwnerKind(t *testing.T) {
	ctx := context.Background()
	mem := newMemNotes()
	notes := NewNotes(mem, mem.owners())

	for _, kind := range models.OwnerKinds {
		t.Run(string(kind), func(t *testing.T) {
			created := notes.CreateNote(ctx, kind, 3, models.NoteInput{Title: "t", Body: string(kind) + " body"})
			require.True(t, created.Success)

			listed := notes.ListNotesByOwner(ctx, kind, 3)
			require.True(t, listed.Success)
			require.Len(t, *listed.Data, 1)
			assert.Equal(t, string(kind)+" body", (*listed.Data)[0].Body)

			ref, ok := (*listed.Data)[0].Owner()
			require.True(t, ok)
			assert.Equal(t, models.OwnerRef{Kind: kind, ID: 3}, ref)
		})
	}
}

func TestNotesIdentityIsGlobal(t *testing.T) {
	ctx := context.Background()
	mem := newMemNotes()
	notes := NewNotes(mem, mem.owners())

	a := notes.CreateNote(ctx, models.OwnerCustomer, 1, models.NoteInput{Body: "a"})
	b := notes.CreateNote(ctx, models.OwnerService, 1, models.NoteInput{Body: "b"})
	require.True(t, a.Success)
	require.True(t, b.Success)
	assert.NotEqual(t, a.Data.ID, b.Data.ID)

	got := notes.GetNoteByID(ctx, b.Data.ID)
	require.True(t, got.Success)
	assert.Equal(t, "b", got.Data.Body)
}

func TestNotesInvalidOwnerKindSkipsStore(t *testing.T) {
	ctx := context.Background()
	mem := newMemNotes()
	notes := NewNotes(mem, mem.owners())

	created := notes.CreateNote(ctx, models.OwnerKind("user"), 1, models.NoteInput{Body: "x"})
	assert.False(t, created.Success)
	assert.Equal(t, MessageInvalidOwnerKind, created.Message)

	listed := notes.ListNotesByOwner(ctx, models.OwnerKind(""), 1)
	assert.False(t, listed.Success)
	assert.Nil(t, listed.Data)

	assert.Zero(t, mem.calls)
}

func TestNotesMissingOwnerBinding(t *testing.T) {
	mem := newMemNotes()
	notes := NewNotes(mem, map[models.OwnerKind]NoteOwnerStore{})

	env := notes.CreateNote(context.Background(), models.OwnerCustomer, 1, models.NoteInput{})
	assert.False(t, env.Success)
	assert.Equal(t, MessageInvalidOwnerKind, env.Message)
}

func TestNotesUpdateKeepsOwner(t *testing.T) {
	ctx := context.Background()
	mem := newMemNotes()
	notes := NewNotes(mem, mem.owners())
	created := notes.CreateNote(ctx, models.OwnerAppointment, 8, models.NoteInput{Title: "old", Body: "old"})

	other := uint(99)
	env := notes.UpdateNoteByID(ctx, &models.Note{ID: created.Data.ID, Title: "new", Body: "new", CustomerID: &other})
	require.True(t, env.Success)

	got := notes.GetNoteByID(ctx, created.Data.ID)
	require.True(t, got.Success)
	assert.Equal(t, "new", got.Data.Body)
	ref, ok := got.Data.Owner()
	require.True(t, ok)
	assert.Equal(t, models.OwnerRef{Kind: models.OwnerAppointment, ID: 8}, ref)
}

func TestNotesDeleteAndMissing(t *testing.T) {
	ctx := context.Background()
	mem := newMemNotes()
	notes := NewNotes(mem, mem.owners())
	created := notes.CreateNote(ctx, models.OwnerCustomer, 1, models.NoteInput{Body: "x"})

	assert.True(t, notes.DeleteNoteByID(ctx, created.Data.ID).Success)

	again := notes.DeleteNoteByID(ctx, created.Data.ID)
	assert.False(t, again.Success)
	assert.Equal(t, "Error deleting note", again.Message)

	missing := notes.GetNoteByID(ctx, created.Data.ID)
	assert.False(t, missing.Success)
	assert.Nil(t, missing.Data)

	updated := notes.UpdateNoteByID(ctx, &models.Note{ID: created.Data.ID, Body: "y"})
	assert.False(t, updated.Success)
	assert.Equal(t, "Error updating note", updated.Message)

	empty := notes.ListNotesByOwner(ctx, models.OwnerCustomer, 1)
	require.True(t, empty.Success)
	assert.NotNil(t, *empty.Data)
	assert.Empty(t, *empty.Data)
}
