// Package validation implements the business-rule checks applied to an
// application before it enters the pricing pipeline.
package validation

import (
	"strings"

	"github.com/seguro/quotes-service/internal/domain/domainerr"
	"github.com/seguro/quotes-service/internal/domain/entity"
)

// Validate runs the rule chain in fixed order (document, email, then the
// category-specific rule) and stops at the first failure. It is pure: on
// success the application is returned unchanged.
func Validate(app entity.Application) (entity.Application, *domainerr.DomainError) {
	if err := validateDocument(app.Document); err != nil {
		return entity.Application{}, err
	}
	if err := validateEmail(app.Email); err != nil {
		return entity.Application{}, err
	}
	if err := validateTypeRules(app); err != nil {
		return entity.Application{}, err
	}
	return app, nil
}

func validateDocument(document string) *domainerr.DomainError {
	if strings.TrimSpace(document) == "" {
		return domainerr.ErrInvalidDocument
	}
	return nil
}

// Email is optional; when present it must contain an @.
func validateEmail(email *string) *domainerr.DomainError {
	if email == nil {
		return nil
	}
	if !strings.Contains(*email, "@") {
		return domainerr.ErrInvalidEmail
	}
	return nil
}

func validateTypeRules(app entity.Application) *domainerr.DomainError {
	switch app.InsuranceType {
	case entity.InsuranceTypeAuto:
		return validateAutoRules(app)
	case entity.InsuranceTypeLife:
		return validateLifeRules(app)
	case entity.InsuranceTypeHome:
		return validateHomeRules(app)
	}
	return nil
}

func validateAutoRules(app entity.Application) *domainerr.DomainError {
	if app.Vehicle == nil {
		return domainerr.ErrMissingVehicle
	}
	if !app.Vehicle.HasIdentity() {
		return domainerr.ErrInvalidVehicle
	}
	return nil
}

func validateLifeRules(app entity.Application) *domainerr.DomainError {
	if app.Age == nil {
		return domainerr.ErrMissingAge
	}
	if *app.Age < 18 {
		return domainerr.ErrUnderage
	}
	return nil
}

func validateHomeRules(app entity.Application) *domainerr.DomainError {
	if app.ZipCode == nil {
		return domainerr.ErrMissingZipCode
	}
	if strings.TrimSpace(*app.ZipCode) == "" {
		return domainerr.ErrInvalidZipCode
	}
	return nil
}
