package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seguro/quotes-service/internal/application/dispatcher"
	"github.com/seguro/quotes-service/internal/domain/domainerr"
	"github.com/seguro/quotes-service/internal/domain/entity"
	"github.com/seguro/quotes-service/internal/domain/event"
	"github.com/seguro/quotes-service/internal/repository"
)

type policyFixture struct {
	service  *PolicyService
	quotes   *repository.QuoteRepository
	policies *repository.PolicyRepository
	recorder *eventRecorder
}

func newPolicyFixture() policyFixture {
	logger := zap.NewNop()
	quotes := repository.NewQuoteRepository(logger)
	policies := repository.NewPolicyRepository(logger)
	recorder := &eventRecorder{}

	publisher := dispatcher.NewPublisher(logger)
	publisher.SubscribeNamed("recorder", recorder.listen)

	svc := NewPolicyService(policies, quotes, publisher, nil, logger)
	return policyFixture{service: svc, quotes: quotes, policies: policies, recorder: recorder}
}

func (fx policyFixture) storeQuote(status entity.QuoteStatus, price *float64, age time.Duration) entity.Quote {
	q := entity.NewQuote(status, entity.Application{
		Document:      "12345678900",
		InsuranceType: entity.InsuranceTypeAuto,
	})
	q.Price = price
	q.CreatedAt = time.Now().Add(-age)
	return fx.quotes.Save(q)
}

func TestIssuePolicy_Success(t *testing.T) {
	fx := newPolicyFixture()
	price := 150.0
	quote := fx.storeQuote(entity.QuoteStatusApproved, &price, time.Hour)

	policy, derr := fx.service.IssuePolicy(context.Background(), quote.ID)
	if derr != nil {
		t.Fatalf("IssuePolicy() error = %v", derr)
	}
	if policy.QuoteID != quote.ID {
		t.Errorf("QuoteID = %s, want %s", policy.QuoteID, quote.ID)
	}
	if policy.Status != entity.PolicyStatusActive {
		t.Errorf("Status = %s, want ACTIVE", policy.Status)
	}
	if !strings.HasPrefix(policy.PolicyNumber, "POL-AUTO-") {
		t.Errorf("PolicyNumber = %q, want POL-AUTO- prefix", policy.PolicyNumber)
	}
	if want := policy.StartDate.AddDate(1, 0, 0); !policy.EndDate.Equal(want) {
		t.Errorf("EndDate = %v, want %v", policy.EndDate, want)
	}

	if _, ok := fx.policies.FindByID(policy.ID); !ok {
		t.Error("policy not stored")
	}

	events := fx.recorder.all()
	if len(events) != 1 {
		t.Fatalf("published %d events, want 1", len(events))
	}
	issued, ok := events[0].(event.PolicyIssued)
	if !ok {
		t.Fatalf("published %T, want PolicyIssued", events[0])
	}
	if issued.PolicyID != policy.ID || issued.PolicyNumber != policy.PolicyNumber {
		t.Errorf("event = %+v", issued)
	}
}

func TestIssuePolicy_QuoteNotFound(t *testing.T) {
	fx := newPolicyFixture()

	_, derr := fx.service.IssuePolicy(context.Background(), uuid.New())
	if derr != domainerr.ErrQuoteNotFound {
		t.Errorf("IssuePolicy() error = %v, want %v", derr, domainerr.ErrQuoteNotFound)
	}
}

func TestIssuePolicy_QuoteNotApproved(t *testing.T) {
	price := 150.0
	tests := []struct {
		name   string
		status entity.QuoteStatus
		price  *float64
	}{
		{"rejected quote", entity.QuoteStatusRejected, &price},
		{"created placeholder", entity.QuoteStatusCreated, nil},
		{"approved without price", entity.QuoteStatusApproved, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newPolicyFixture()
			quote := fx.storeQuote(tt.status, tt.price, time.Hour)

			_, derr := fx.service.IssuePolicy(context.Background(), quote.ID)
			if derr != domainerr.ErrQuoteNotApproved {
				t.Errorf("IssuePolicy() error = %v, want %v", derr, domainerr.ErrQuoteNotApproved)
			}
			if len(fx.recorder.all()) != 0 {
				t.Error("rejected issuance must not publish events")
			}
		})
	}
}

func TestIssuePolicy_QuoteExpired(t *testing.T) {
	fx := newPolicyFixture()
	price := 150.0
	quote := fx.storeQuote(entity.QuoteStatusApproved, &price, entity.QuoteTTL+time.Hour)

	_, derr := fx.service.IssuePolicy(context.Background(), quote.ID)
	if derr != domainerr.ErrQuoteExpired {
		t.Errorf("IssuePolicy() error = %v, want %v", derr, domainerr.ErrQuoteExpired)
	}
}

// The approval gate runs before the expiry gate, so an expired rejected quote
// reports QUOTE_NOT_APPROVED.
func TestIssuePolicy_GateOrder(t *testing.T) {
	fx := newPolicyFixture()
	price := 150.0
	quote := fx.storeQuote(entity.QuoteStatusRejected, &price, entity.QuoteTTL+time.Hour)

	_, derr := fx.service.IssuePolicy(context.Background(), quote.ID)
	if derr != domainerr.ErrQuoteNotApproved {
		t.Errorf("IssuePolicy() error = %v, want %v", derr, domainerr.ErrQuoteNotApproved)
	}
}

func TestGetPolicyByID(t *testing.T) {
	fx := newPolicyFixture()
	price := 150.0
	quote := fx.storeQuote(entity.QuoteStatusApproved, &price, time.Hour)

	issued, _ := fx.service.IssuePolicy(context.Background(), quote.ID)

	got, derr := fx.service.GetPolicyByID(issued.ID)
	if derr != nil {
		t.Fatalf("GetPolicyByID() error = %v", derr)
	}
	if got.ID != issued.ID {
		t.Errorf("ID = %s, want %s", got.ID, issued.ID)
	}

	_, derr = fx.service.GetPolicyByID(uuid.New())
	if derr != domainerr.ErrPolicyNotFound {
		t.Errorf("GetPolicyByID() error = %v, want %v", derr, domainerr.ErrPolicyNotFound)
	}
}

func TestListPolicies(t *testing.T) {
	fx := newPolicyFixture()
	price := 150.0

	for i := 0; i < 3; i++ {
		quote := fx.storeQuote(entity.QuoteStatusApproved, &price, time.Hour)
		if _, derr := fx.service.IssuePolicy(context.Background(), quote.ID); derr != nil {
			t.Fatalf("IssuePolicy() error = %v", derr)
		}
	}

	if got := len(fx.service.ListPolicies()); got != 3 {
		t.Errorf("len(ListPolicies()) = %d, want 3", got)
	}
}
