package entity

import "testing"

func strPtr(s string) *string { return &s }

func TestApplication_Normalized(t *testing.T) {
	app := Application{
		Name:          "  joHN   siLVA  ",
		Document:      "123.456.789-00",
		Email:         strPtr("  John.Silva@Example.COM "),
		InsuranceType: InsuranceTypeHome,
		ZipCode:       strPtr("01310-100"),
		Coverages:     []Coverage{CoverageTheft},
	}

	got := app.Normalized()

	if got.Name != "John Silva" {
		t.Errorf("Name = %q, want %q", got.Name, "John Silva")
	}
	if got.Document != "12345678900" {
		t.Errorf("Document = %q, want %q", got.Document, "12345678900")
	}
	if got.Email == nil || *got.Email != "john.silva@example.com" {
		t.Errorf("Email = %v, want john.silva@example.com", got.Email)
	}
	if got.ZipCode == nil || *got.ZipCode != "01310100" {
		t.Errorf("ZipCode = %v, want 01310100", got.ZipCode)
	}

	// The original must stay untouched.
	if app.Document != "123.456.789-00" {
		t.Errorf("Normalized mutated the receiver: %q", app.Document)
	}
}

func TestApplication_NormalizedCopiesSlices(t *testing.T) {
	app := Application{
		Document:  "123",
		Coverages: []Coverage{CoverageTheft},
		Vehicle:   &VehicleData{Make: "Toyota"},
	}

	got := app.Normalized()
	got.Coverages[0] = CoverageCollision
	got.Vehicle.Make = "Honda"

	if app.Coverages[0] != CoverageTheft {
		t.Error("Normalized shares the coverages slice")
	}
	if app.Vehicle.Make != "Toyota" {
		t.Error("Normalized shares the vehicle pointer")
	}
}

func TestMaskDocument(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12345678900", "*******8900"},
		{"1234", "1234"},
		{"123", "***"},
		{"", "***"},
	}

	for _, tt := range tests {
		if got := MaskDocument(tt.in); got != tt.want {
			t.Errorf("MaskDocument(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVehicleData_HasIdentity(t *testing.T) {
	tests := []struct {
		name    string
		vehicle VehicleData
		want    bool
	}{
		{"make only", VehicleData{Make: "Toyota"}, true},
		{"model only", VehicleData{Model: "Corolla"}, true},
		{"both blank", VehicleData{Make: "  ", Model: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vehicle.HasIdentity(); got != tt.want {
				t.Errorf("HasIdentity() = %v, want %v", got, tt.want)
			}
		})
	}
}
