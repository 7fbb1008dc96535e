package event

// Type identifies a domain event kind.
type Type string

const (
	TypeQuoteApproved Type = "quote.approved"
	TypeQuoteRejected Type = "quote.rejected"
	TypePolicyIssued  Type = "policy.issued"
)

// String returns the wire name of the event type.
func (t Type) String() string {
	return string(t)
}

// IsValid reports whether t is a known event type.
func (t Type) IsValid() bool {
	switch t {
	case TypeQuoteApproved, TypeQuoteRejected, TypePolicyIssued:
		return true
	}
	return false
}
