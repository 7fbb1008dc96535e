package repository

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seguro/quotes-service/internal/domain/entity"
)

// PolicyRepository is the concurrent in-memory store for issued policies.
type PolicyRepository struct {
	mu       sync.RWMutex
	policies map[uuid.UUID]entity.Policy
	logger   *zap.Logger
}

// NewPolicyRepository creates an empty store.
func NewPolicyRepository(logger *zap.Logger) *PolicyRepository {
	return &PolicyRepository{
		policies: make(map[uuid.UUID]entity.Policy),
		logger:   logger,
	}
}

// Save stores the policy.
func (r *PolicyRepository) Save(policy entity.Policy) entity.Policy {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.policies[policy.ID] = policy
	return policy
}

// FindByID returns the stored policy and whether it exists.
func (r *PolicyRepository) FindByID(id uuid.UUID) (entity.Policy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	policy, ok := r.policies[id]
	return policy, ok
}

// FindByQuoteID returns the policy bound to the given quote, if any.
func (r *PolicyRepository) FindByQuoteID(quoteID uuid.UUID) (entity.Policy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.policies {
		if p.QuoteID == quoteID {
			return p, true
		}
	}
	return entity.Policy{}, false
}

// FindAll returns all policies in store-iteration order.
func (r *PolicyRepository) FindAll() []entity.Policy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Policy, 0, len(r.policies))
	for _, p := range r.policies {
		out = append(out, p)
	}
	return out
}
