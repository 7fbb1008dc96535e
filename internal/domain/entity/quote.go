package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// QuoteTTL is how long a quote stays issuable after creation.
const QuoteTTL = 7 * 24 * time.Hour

// Quote is a priced, stateful insurance application record. Price is non-nil
// only after the pipeline reached the pricing stage: a quote rejected by
// validation keeps a nil price.
type Quote struct {
	ID               uuid.UUID
	Status           QuoteStatus
	Price            *float64
	RejectionReasons []string
	CreatedAt        time.Time
	Application      Application
}

// NewQuote creates a quote in the given status for a normalized application.
func NewQuote(status QuoteStatus, app Application) Quote {
	return Quote{
		ID:          uuid.New(),
		Status:      status,
		CreatedAt:   time.Now(),
		Application: app,
	}
}

// CanGeneratePolicy reports whether a policy may be issued from this quote.
func (q Quote) CanGeneratePolicy() bool {
	return q.Status == QuoteStatusApproved && q.Price != nil
}

// IsExpired reports whether the issuance window has elapsed. Expiry is
// derived, never written back to the stored status.
func (q Quote) IsExpired() bool {
	return time.Since(q.CreatedAt) > QuoteTTL
}

// MaskedDocument returns the applicant document safe for logging.
func (q Quote) MaskedDocument() string {
	return MaskDocument(q.Application.Document)
}

// SafeLogString renders the quote without exposing the raw document.
func (q Quote) SafeLogString() string {
	price := "<nil>"
	if q.Price != nil {
		price = fmt.Sprintf("%.2f", *q.Price)
	}
	return fmt.Sprintf("Quote[id=%s, status=%s, price=%s, document=%s, coverages=%d]",
		q.ID, q.Status, price, q.MaskedDocument(), len(q.Application.Coverages))
}
