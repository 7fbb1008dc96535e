package entity

import (
	"strings"
	"unicode"
)

// VehicleData describes the insured vehicle for AUTO applications.
type VehicleData struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year,omitempty"`
}

// HasIdentity reports whether at least make or model is filled in.
func (v VehicleData) HasIdentity() bool {
	return strings.TrimSpace(v.Make) != "" || strings.TrimSpace(v.Model) != ""
}

// Application is the input of the quoting pipeline. It is treated as
// immutable once validated; Normalized returns a canonicalized copy.
type Application struct {
	Name          string        `json:"name"`
	Document      string        `json:"document"`
	Email         *string       `json:"email,omitempty"`
	InsuranceType InsuranceType `json:"insuranceType"`
	Age           *int          `json:"age,omitempty"`
	Vehicle       *VehicleData  `json:"vehicle,omitempty"`
	ZipCode       *string       `json:"zipCode,omitempty"`
	Coverages     []Coverage    `json:"coverages,omitempty"`
}

// Normalized returns a copy with canonical field values: document and zip
// code stripped to digits, name trimmed and title-cased, email trimmed and
// lowercased. The receiver is not modified.
func (a Application) Normalized() Application {
	out := a
	out.Name = NormalizeName(a.Name)
	out.Document = NormalizeDocument(a.Document)
	if a.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*a.Email))
		out.Email = &email
	}
	if a.ZipCode != nil {
		zip := NormalizeDocument(*a.ZipCode)
		out.ZipCode = &zip
	}
	if a.Vehicle != nil {
		v := *a.Vehicle
		out.Vehicle = &v
	}
	if a.Coverages != nil {
		out.Coverages = append([]Coverage(nil), a.Coverages...)
	}
	return out
}

// NormalizeDocument strips everything but digits.
func NormalizeDocument(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeName trims, collapses whitespace and title-cases each word.
func NormalizeName(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// MaskDocument hides all but the last four characters, for log output.
func MaskDocument(document string) string {
	if len(document) < 4 {
		return "***"
	}
	return strings.Repeat("*", len(document)-4) + document[len(document)-4:]
}
