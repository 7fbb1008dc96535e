// Package event defines the domain events emitted by the quoting pipeline.
// Events are ephemeral: they carry the minimal facts a listener needs and
// are never persisted or replayed.
package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/seguro/quotes-service/internal/domain/entity"
)

// Event is implemented by every domain event.
type Event interface {
	EventID() uuid.UUID
	EventType() Type
	OccurredAt() time.Time
}

type base struct {
	ID        uuid.UUID
	Timestamp time.Time
}

func newBase() base {
	return base{ID: uuid.New(), Timestamp: time.Now()}
}

func (b base) EventID() uuid.UUID    { return b.ID }
func (b base) OccurredAt() time.Time { return b.Timestamp }

// QuoteApproved is emitted when a quote ends the pipeline approved.
type QuoteApproved struct {
	base
	QuoteID       uuid.UUID
	Price         float64
	InsuranceType entity.InsuranceType
}

func (QuoteApproved) EventType() Type { return TypeQuoteApproved }

// QuoteRejected is emitted when a quote ends the pipeline rejected.
type QuoteRejected struct {
	base
	QuoteID uuid.UUID
	Reasons []string
}

func (QuoteRejected) EventType() Type { return TypeQuoteRejected }

// PolicyIssued is emitted when a policy is bound from an approved quote.
type PolicyIssued struct {
	base
	PolicyID     uuid.UUID
	QuoteID      uuid.UUID
	PolicyNumber string
}

func (PolicyIssued) EventType() Type { return TypePolicyIssued }

// QuoteApprovedFrom builds the approval event for a quote, or reports false
// when the quote cannot generate a policy.
func QuoteApprovedFrom(q entity.Quote) (QuoteApproved, bool) {
	if !q.CanGeneratePolicy() {
		return QuoteApproved{}, false
	}
	return QuoteApproved{
		base:          newBase(),
		QuoteID:       q.ID,
		Price:         *q.Price,
		InsuranceType: q.Application.InsuranceType,
	}, true
}

// QuoteRejectedFrom builds the rejection event for a quote, or reports false
// when the quote is not rejected.
func QuoteRejectedFrom(q entity.Quote) (QuoteRejected, bool) {
	if q.Status != entity.QuoteStatusRejected {
		return QuoteRejected{}, false
	}
	return QuoteRejected{
		base:    newBase(),
		QuoteID: q.ID,
		Reasons: q.RejectionReasons,
	}, true
}

// PolicyIssuedFrom builds the issuance event for a policy.
func PolicyIssuedFrom(p entity.Policy) PolicyIssued {
	return PolicyIssued{
		base:         newBase(),
		PolicyID:     p.ID,
		QuoteID:      p.QuoteID,
		PolicyNumber: p.PolicyNumber,
	}
}
