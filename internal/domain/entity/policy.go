package entity

import (
	"time"

	"github.com/google/uuid"
)

// Policy is a bound one-year contract issued from an approved, unexpired
// quote. Policies are never mutated after creation.
type Policy struct {
	ID           uuid.UUID
	QuoteID      uuid.UUID
	Status       PolicyStatus
	StartDate    time.Time
	EndDate      time.Time
	PolicyNumber string
}

// NewPolicy creates an active one-year policy bound to the given quote.
func NewPolicy(quoteID uuid.UUID, policyNumber string) Policy {
	now := time.Now()
	return Policy{
		ID:           uuid.New(),
		QuoteID:      quoteID,
		Status:       PolicyStatusActive,
		StartDate:    now,
		EndDate:      now.AddDate(1, 0, 0),
		PolicyNumber: policyNumber,
	}
}

// IsActive reports whether the policy is in force right now.
func (p Policy) IsActive() bool {
	now := time.Now()
	return p.Status == PolicyStatusActive && now.After(p.StartDate) && now.Before(p.EndDate)
}
