package pricing

import (
	"math"
	"testing"

	"github.com/seguro/quotes-service/internal/domain/entity"
)

func intPtr(i int) *int { return &i }

func TestCalculate(t *testing.T) {
	tests := []struct {
		name         string
		app          entity.Application
		wantPrice    float64
		wantApproved bool
		wantReason   string
	}{
		{
			name: "auto with theft and collision",
			app: entity.Application{
				InsuranceType: entity.InsuranceTypeAuto,
				Coverages:     []entity.Coverage{entity.CoverageTheft, entity.CoverageCollision},
			},
			wantPrice:    150.0,
			wantApproved: true,
		},
		{
			name: "home base price only",
			app: entity.Application{
				InsuranceType: entity.InsuranceTypeHome,
			},
			wantPrice:    150.0,
			wantApproved: true,
		},
		{
			name: "life at thirty has neutral age factor",
			app: entity.Application{
				InsuranceType: entity.InsuranceTypeLife,
				Age:           intPtr(30),
			},
			wantPrice:    200.0,
			wantApproved: true,
		},
		{
			name: "life at seventy with third party damage",
			app: entity.Application{
				InsuranceType: entity.InsuranceTypeLife,
				Age:           intPtr(70),
				Coverages:     []entity.Coverage{entity.CoverageThirdPartyDamage},
			},
			wantPrice:    292.5,
			wantApproved: true,
		},
		{
			name: "life at seventy with full coverage exceeds the limit",
			app: entity.Application{
				InsuranceType: entity.InsuranceTypeLife,
				Age:           intPtr(70),
				Coverages: []entity.Coverage{
					entity.CoverageTheft,
					entity.CoverageCollision,
					entity.CoverageAssistance,
					entity.CoverageThirdPartyDamage,
				},
			},
			wantPrice:    370.5,
			wantApproved: false,
			wantReason:   RejectionReasonLimitExceeded,
		},
		{
			name: "young life applicant pays the surcharge",
			app: entity.Application{
				InsuranceType: entity.InsuranceTypeLife,
				Age:           intPtr(22),
			},
			wantPrice:    240.0,
			wantApproved: true,
		},
		{
			name: "age is ignored outside life",
			app: entity.Application{
				InsuranceType: entity.InsuranceTypeAuto,
				Age:           intPtr(70),
			},
			wantPrice:    100.0,
			wantApproved: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.app)
			if math.Abs(got.Price-tt.wantPrice) > 1e-9 {
				t.Errorf("Price = %v, want %v", got.Price, tt.wantPrice)
			}
			if got.Approved != tt.wantApproved {
				t.Errorf("Approved = %v, want %v", got.Approved, tt.wantApproved)
			}
			if got.RejectionReason != tt.wantReason {
				t.Errorf("RejectionReason = %q, want %q", got.RejectionReason, tt.wantReason)
			}
		})
	}
}

// (200 + 20 + 30) * 1.20 = 300: sitting exactly on the limit still approves.
func TestCalculate_ExactlyAtLimitApproves(t *testing.T) {
	app := entity.Application{
		InsuranceType: entity.InsuranceTypeLife,
		Age:           intPtr(22),
		Coverages:     []entity.Coverage{entity.CoverageTheft, entity.CoverageCollision},
	}
	got := Calculate(app)
	if !got.Approved {
		t.Errorf("price %v at the limit must approve", got.Price)
	}
}
