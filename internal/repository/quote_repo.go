// Package repository implements the in-memory stores owning the canonical
// quote and policy records. All operations are safe under concurrent
// pipeline runs.
package repository

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seguro/quotes-service/internal/domain/entity"
)

// QuoteRepository is a concurrent keyed store with idempotency-key
// deduplication. It stores full value copies; writers replace whole records.
type QuoteRepository struct {
	mu              sync.RWMutex
	quotes          map[uuid.UUID]entity.Quote
	idempotencyKeys map[string]uuid.UUID
	logger          *zap.Logger
}

// NewQuoteRepository creates an empty store.
func NewQuoteRepository(logger *zap.Logger) *QuoteRepository {
	return &QuoteRepository{
		quotes:          make(map[uuid.UUID]entity.Quote),
		idempotencyKeys: make(map[string]uuid.UUID),
		logger:          logger,
	}
}

// Save stores the quote, replacing any record with the same id.
func (r *QuoteRepository) Save(quote entity.Quote) entity.Quote {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.quotes[quote.ID] = quote
	return quote
}

// SaveIdempotent stores the quote unless the idempotency key was seen
// before, in which case the previously stored quote for that key is returned
// unchanged (first-write-wins). An empty key degrades to Save.
func (r *QuoteRepository) SaveIdempotent(quote entity.Quote, idempotencyKey string) entity.Quote {
	if idempotencyKey == "" {
		return r.Save(quote)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existingID, seen := r.idempotencyKeys[idempotencyKey]; seen {
		if existing, ok := r.quotes[existingID]; ok {
			r.logger.Debug("Idempotency key replay, returning stored quote",
				zap.String("quote_id", existingID.String()))
			return existing
		}
	}

	r.idempotencyKeys[idempotencyKey] = quote.ID
	r.quotes[quote.ID] = quote
	return quote
}

// FindByID returns the stored quote and whether it exists.
func (r *QuoteRepository) FindByID(id uuid.UUID) (entity.Quote, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	quote, ok := r.quotes[id]
	return quote, ok
}

// FindAll returns all quotes in store-iteration order.
func (r *QuoteRepository) FindAll() []entity.Quote {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Quote, 0, len(r.quotes))
	for _, q := range r.quotes {
		out = append(out, q)
	}
	return out
}

// DeleteByID removes the quote, reporting whether it existed.
func (r *QuoteRepository) DeleteByID(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.quotes[id]
	delete(r.quotes, id)
	return ok
}

// Count returns the number of stored quotes.
func (r *QuoteRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.quotes)
}

// Update applies mutate to the current stored record and writes the result
// back in one critical section, so concurrent writers cannot interleave
// between the read and the write. Semantics stay last-writer-wins; this is
// the seam where an optimistic version check could be added without touching
// callers. Reports false when the id is unknown.
func (r *QuoteRepository) Update(id uuid.UUID, mutate func(entity.Quote) entity.Quote) (entity.Quote, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.quotes[id]
	if !ok {
		return entity.Quote{}, false
	}

	updated := mutate(current)
	updated.ID = id
	r.quotes[id] = updated
	return updated, true
}
