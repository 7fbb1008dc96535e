package httpapi

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/seguro/quotes-service/internal/domain/entity"
)

// QuoteRequest is the create-quote payload.
type QuoteRequest struct {
	Name          string          `json:"name" binding:"required"`
	Document      string          `json:"document" binding:"required"`
	Email         *string         `json:"email"`
	InsuranceType string          `json:"insuranceType" binding:"required"`
	Age           *int            `json:"age"`
	Vehicle       *VehicleRequest `json:"vehicle"`
	ZipCode       *string         `json:"zipCode"`
	Coverages     []string        `json:"coverages"`
}

// VehicleRequest is the vehicle descriptor of an AUTO application.
type VehicleRequest struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// ToApplication maps the payload onto the domain application, rejecting
// unknown enum values before they enter the pipeline.
func (r QuoteRequest) ToApplication() (entity.Application, error) {
	insuranceType := entity.InsuranceType(r.InsuranceType)
	if !insuranceType.IsValid() {
		return entity.Application{}, fmt.Errorf("unknown insurance type %q", r.InsuranceType)
	}

	var coverages []entity.Coverage
	for _, c := range r.Coverages {
		coverage := entity.Coverage(c)
		if !coverage.IsValid() {
			return entity.Application{}, fmt.Errorf("unknown coverage %q", c)
		}
		coverages = append(coverages, coverage)
	}

	app := entity.Application{
		Name:          r.Name,
		Document:      r.Document,
		Email:         r.Email,
		InsuranceType: insuranceType,
		Age:           r.Age,
		ZipCode:       r.ZipCode,
		Coverages:     coverages,
	}
	if r.Vehicle != nil {
		app.Vehicle = &entity.VehicleData{
			Make:  r.Vehicle.Make,
			Model: r.Vehicle.Model,
			Year:  r.Vehicle.Year,
		}
	}
	return app, nil
}

// IssuePolicyRequest is the policy issuance payload.
type IssuePolicyRequest struct {
	QuoteID string `json:"quoteId" binding:"required"`
}

// QuoteResponse is the API view of a quote.
type QuoteResponse struct {
	ID               uuid.UUID          `json:"id"`
	Status           entity.QuoteStatus `json:"status"`
	Price            *float64           `json:"price"`
	RejectionReasons []string           `json:"rejectionReasons"`
	Timestamp        time.Time          `json:"timestamp"`
}

// QuoteResponseFrom maps a quote to its API view.
func QuoteResponseFrom(q entity.Quote) QuoteResponse {
	reasons := q.RejectionReasons
	if reasons == nil {
		reasons = []string{}
	}
	return QuoteResponse{
		ID:               q.ID,
		Status:           q.Status,
		Price:            q.Price,
		RejectionReasons: reasons,
		Timestamp:        q.CreatedAt,
	}
}

// PolicyResponse is the API view of a policy.
type PolicyResponse struct {
	ID           uuid.UUID           `json:"id"`
	QuoteID      uuid.UUID           `json:"quoteId"`
	PolicyNumber string              `json:"policyNumber"`
	Status       entity.PolicyStatus `json:"status"`
	StartDate    time.Time           `json:"startDate"`
	EndDate      time.Time           `json:"endDate"`
}

// PolicyResponseFrom maps a policy to its API view.
func PolicyResponseFrom(p entity.Policy) PolicyResponse {
	return PolicyResponse{
		ID:           p.ID,
		QuoteID:      p.QuoteID,
		PolicyNumber: p.PolicyNumber,
		Status:       p.Status,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
	}
}

// ErrorResponse is the structured error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
