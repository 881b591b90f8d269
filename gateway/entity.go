package gateway

import (
	"context"
	"log"
)

// Store is the persistence contract for one entity kind. ListByOwner returns
// an empty slice, not an error, when the owner has no children.
type Store[E any] interface {
	Get(ctx context.Context, id uint) (*E, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]E, error)
	Create(ctx context.Context, payload *E) (uint, error)
	Update(ctx context.Context, payload *E) error
	Delete(ctx context.Context, id uint) error
}

// Entity is the CRUD gateway for one entity kind
type Entity[E any] struct {
	kind  string
	store Store[E]
}

// NewEntity binds a gateway to the store for kind (e.g. "customer")
func NewEntity[E any](kind string, store Store[E]) *Entity[E] {
	return &Entity[E]{kind: kind, store: store}
}

// Kind returns the entity kind label used in messages
func (g *Entity[E]) Kind() string {
	return g.kind
}

// Create inserts payload; its identity is assigned by the store
func (g *Entity[E]) Create(ctx context.Context, payload *E) Envelope[Created] {
	if payload == nil {
		return Fail[Created](MessageInvalidRequest)
	}
	id, err := g.store.Create(ctx, payload)
	if err != nil {
		log.Printf("gateway: create %s failed: %v", g.kind, err)
		return Fail[Created](createFailed(g.kind))
	}
	return OK(&Created{ID: id})
}

// Update overwrites the record identified by payload
func (g *Entity[E]) Update(ctx context.Context, payload *E) Envelope[Empty] {
	if payload == nil {
		return Fail[Empty](MessageInvalidRequest)
	}
	if err := g.store.Update(ctx, payload); err != nil {
		log.Printf("gateway: update %s failed: %v", g.kind, err)
		return Fail[Empty](updateFailed(g.kind))
	}
	return Done()
}

// Delete removes the record with id. Deleting a missing record fails, so a
// second delete of the same id is rejected.
func (g *Entity[E]) Delete(ctx context.Context, id uint) Envelope[Empty] {
	if err := g.store.Delete(ctx, id); err != nil {
		log.Printf("gateway: delete %s %d failed: %v", g.kind, id, err)
		return Fail[Empty](deleteFailed(g.kind))
	}
	return Done()
}

// GetByID fails with no data when the record does not exist
func (g *Entity[E]) GetByID(ctx context.Context, id uint) Envelope[E] {
	record, err := g.store.Get(ctx, id)
	if err != nil || record == nil {
		if err != nil {
			log.Printf("gateway: get %s %d: %v", g.kind, id, err)
		}
		return Fail[E](notFound(g.kind))
	}
	return OK(record)
}

// ListByOwner succeeds with an empty list when the owner has no records
func (g *Entity[E]) ListByOwner(ctx context.Context, ownerID uint) Envelope[[]E] {
	return list(g.kind, func() ([]E, error) { return g.store.ListByOwner(ctx, ownerID) })
}

func list[E any](kind string, fetch func() ([]E, error)) Envelope[[]E] {
	items, err := fetch()
	if err != nil {
		log.Printf("gateway: list %s failed: %v", kind, err)
		return Fail[[]E](listFailed(kind))
	}
	if items == nil {
		items = []E{}
	}
	return OK(&items)
}
