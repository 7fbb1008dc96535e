// Package pricing computes the pre-risk baseline price of an application.
package pricing

import "github.com/seguro/quotes-service/internal/domain/entity"

// PriceLimit is the hard approval ceiling.
const PriceLimit = 300.0

// RejectionReasonLimitExceeded is the reason recorded when the price
// breaches PriceLimit.
const RejectionReasonLimitExceeded = "LIMIT_EXCEEDED"

// Result is the outcome of a baseline price calculation. The approved flag
// is a pre-risk verdict: the orchestrator applies a risk multiplier and makes
// the final decision, which supersedes this flag.
type Result struct {
	Price           float64
	Approved        bool
	RejectionReason string
}

// Calculate derives the baseline price deterministically:
// (base price + coverage costs) * age factor.
func Calculate(app entity.Application) Result {
	basePrice := app.InsuranceType.BasePrice()
	coveragesCost := coveragesCost(app.Coverages)
	price := (basePrice + coveragesCost) * ageFactor(app)

	res := Result{Price: price, Approved: price <= PriceLimit}
	if !res.Approved {
		res.RejectionReason = RejectionReasonLimitExceeded
	}
	return res
}

func coveragesCost(coverages []entity.Coverage) float64 {
	total := 0.0
	for _, c := range coverages {
		total += c.AdditionalCost()
	}
	return total
}

// Age only matters for LIFE; a LIFE application without an age prices at 1.0.
func ageFactor(app entity.Application) float64 {
	if app.InsuranceType != entity.InsuranceTypeLife || app.Age == nil {
		return 1.0
	}
	switch age := *app.Age; {
	case age < 25:
		return 1.20
	case age <= 50:
		return 1.0
	default:
		return 1.30
	}
}
