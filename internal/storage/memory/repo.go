// Package memory is the default listing store: a process-local collection
// guarded by a RWMutex. A real deployment swaps it for the mysql driver
// behind the same domain.ListingRepository contract.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/domain"
)

type Repo struct {
	mu sync.RWMutex
	// byID holds the records; order keeps insertion order stable for
	// ListAll and ListByOwner within a process run.
	byID  map[string]domain.Listing
	order []string
}

func New() *Repo {
	return &Repo{byID: make(map[string]domain.Listing)}
}

// Create validates and stores the listing, assigning a fresh id.
// Validation rejects before any write. OwnerID must be set by the caller.
func (r *Repo) Create(ctx context.Context, l domain.Listing) (domain.Listing, error) {
	if err := l.Validate(); err != nil {
		return domain.Listing{}, err
	}
	l = l.Clone()
	l.ID = uuid.NewString()

	r.mu.Lock()
	r.byID[l.ID] = l
	r.order = append(r.order, l.ID)
	r.mu.Unlock()

	return l.Clone(), nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (domain.Listing, error) {
	r.mu.RLock()
	l, ok := r.byID[id]
	r.mu.RUnlock()
	if !ok {
		return domain.Listing{}, domain.ErrNotFound
	}
	return l.Clone(), nil
}

func (r *Repo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Listing
	for _, id := range r.order {
		if l := r.byID[id]; l.OwnerID == ownerID {
			out = append(out, l.Clone())
		}
	}
	return out, nil
}

// ListAll returns a snapshot of the whole collection in insertion order.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Listing, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

// Update replaces every mutable field of the record with the patch.
// ID and OwnerID are preserved even when the patch carries different values.
// The replace happens atomically under the write lock (last writer wins).
func (r *Repo) Update(ctx context.Context, id string, patch domain.Listing) (domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return domain.Listing{}, fmt.Errorf("update %s: %w", id, domain.ErrNotFound)
	}

	next := patch.Clone()
	next.ID = current.ID
	next.OwnerID = current.OwnerID
	if err := next.Validate(); err != nil {
		return domain.Listing{}, err
	}

	r.byID[id] = next
	return next.Clone(), nil
}

// Delete removes the record. Deleting an already-deleted id reports
// ErrNotFound, not success.
func (r *Repo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("delete %s: %w", id, domain.ErrNotFound)
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
