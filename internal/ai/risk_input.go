package ai

import (
	"fmt"
	"strings"

	"github.com/seguro/quotes-service/internal/domain/entity"
)

// RiskInput is the flattened view of a normalized application handed to the
// external risk model.
type RiskInput struct {
	Document      string
	InsuranceType string
	Age           *int
	Make          string
	Model         string
	ZipCode       string
	Coverages     []string
}

// RiskInputFrom flattens a normalized application.
func RiskInputFrom(app entity.Application) RiskInput {
	in := RiskInput{
		Document:      app.Document,
		InsuranceType: string(app.InsuranceType),
		Age:           app.Age,
	}
	if app.Vehicle != nil {
		in.Make = app.Vehicle.Make
		in.Model = app.Vehicle.Model
	}
	if app.ZipCode != nil {
		in.ZipCode = *app.ZipCode
	}
	for _, c := range app.Coverages {
		in.Coverages = append(in.Coverages, string(c))
	}
	return in
}

// PromptString renders the input as the data section of the model prompt.
func (in RiskInput) PromptString() string {
	age := ""
	if in.Age != nil {
		age = fmt.Sprintf("%d", *in.Age)
	}
	return fmt.Sprintf(
		"document: %s\ninsuranceType: %s\nage: %s\nmake: %s\nmodel: %s\nzipCode: %s\ncoverages: %s",
		in.Document, in.InsuranceType, age, in.Make, in.Model, in.ZipCode,
		strings.Join(in.Coverages, ","))
}
