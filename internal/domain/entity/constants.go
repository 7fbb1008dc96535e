package entity

// InsuranceType is the insured line of business. Each type carries a fixed
// base price used by the price calculator.
type InsuranceType string

const (
	InsuranceTypeAuto InsuranceType = "AUTO"
	InsuranceTypeHome InsuranceType = "HOME"
	InsuranceTypeLife InsuranceType = "LIFE"
)

// BasePrice returns the fixed base price for the insurance type.
func (t InsuranceType) BasePrice() float64 {
	switch t {
	case InsuranceTypeAuto:
		return 100.0
	case InsuranceTypeHome:
		return 150.0
	case InsuranceTypeLife:
		return 200.0
	}
	return 0
}

// IsValid reports whether t is one of the known insurance types.
func (t InsuranceType) IsValid() bool {
	switch t {
	case InsuranceTypeAuto, InsuranceTypeHome, InsuranceTypeLife:
		return true
	}
	return false
}

// Coverage is a named add-on with a fixed additional cost.
type Coverage string

const (
	CoverageTheft            Coverage = "THEFT"
	CoverageCollision        Coverage = "COLLISION"
	CoverageAssistance       Coverage = "ASSISTANCE"
	CoverageThirdPartyDamage Coverage = "THIRD_PARTY_DAMAGE"
)

// AdditionalCost returns the fixed extra cost of the coverage.
func (c Coverage) AdditionalCost() float64 {
	switch c {
	case CoverageTheft:
		return 20.0
	case CoverageCollision:
		return 30.0
	case CoverageAssistance:
		return 10.0
	case CoverageThirdPartyDamage:
		return 25.0
	}
	return 0
}

// IsValid reports whether c is one of the known coverages.
func (c Coverage) IsValid() bool {
	return c.AdditionalCost() > 0
}

// QuoteStatus is the lifecycle state of a quote. PRICED is part of the state
// set but is never persisted: both pipelines jump straight from CREATED to a
// terminal decision. EXPIRED is a derived predicate, never stored.
type QuoteStatus string

const (
	QuoteStatusCreated  QuoteStatus = "CREATED"
	QuoteStatusPriced   QuoteStatus = "PRICED"
	QuoteStatusApproved QuoteStatus = "APPROVED"
	QuoteStatusRejected QuoteStatus = "REJECTED"
	QuoteStatusExpired  QuoteStatus = "EXPIRED"
)

// PolicyStatus is the lifecycle state of an issued policy.
type PolicyStatus string

const (
	PolicyStatusActive    PolicyStatus = "ACTIVE"
	PolicyStatusCancelled PolicyStatus = "CANCELLED"
)
