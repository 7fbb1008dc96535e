// Package domainerr defines the closed, code-carrying error taxonomy of the
// quoting domain. Every error the pipeline can return to a caller is one of
// the values below; codes are stable and safe to expose over the API.
package domainerr

import "fmt"

// DomainError is a typed business error with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Validation errors.
var (
	ErrInvalidDocument = &DomainError{
		Code:    "INVALID_DOCUMENT",
		Message: "document is required and cannot be blank",
	}
	ErrInvalidEmail = &DomainError{
		Code:    "INVALID_EMAIL",
		Message: "email must contain @",
	}
	ErrMissingVehicle = &DomainError{
		Code:    "MISSING_VEHICLE",
		Message: "vehicle is required for AUTO insurance",
	}
	ErrInvalidVehicle = &DomainError{
		Code:    "INVALID_VEHICLE",
		Message: "vehicle must have at least make or model",
	}
	ErrMissingAge = &DomainError{
		Code:    "MISSING_AGE",
		Message: "age is required for LIFE insurance",
	}
	ErrUnderage = &DomainError{
		Code:    "UNDERAGE",
		Message: "minimum age is 18 years",
	}
	ErrMissingZipCode = &DomainError{
		Code:    "MISSING_ZIP_CODE",
		Message: "zip code is required for HOME insurance",
	}
	ErrInvalidZipCode = &DomainError{
		Code:    "INVALID_ZIP_CODE",
		Message: "zip code cannot be blank",
	}
)

// Business errors.
var (
	ErrQuoteNotFound = &DomainError{
		Code:    "QUOTE_NOT_FOUND",
		Message: "quote not found",
	}
	ErrQuoteNotApproved = &DomainError{
		Code:    "QUOTE_NOT_APPROVED",
		Message: "quote is not approved for policy issuance",
	}
	ErrQuoteExpired = &DomainError{
		Code:    "QUOTE_EXPIRED",
		Message: "quote expired (7 days without policy issuance)",
	}
	ErrPolicyNotFound = &DomainError{
		Code:    "POLICY_NOT_FOUND",
		Message: "policy not found",
	}
)

// LimitExceeded builds the business error for a price above the hard limit.
func LimitExceeded(limit, actual float64) *DomainError {
	return &DomainError{
		Code:    "LIMIT_EXCEEDED",
		Message: fmt.Sprintf("price %.2f exceeds limit %.2f", actual, limit),
	}
}
