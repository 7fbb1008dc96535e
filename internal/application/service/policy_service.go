package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seguro/quotes-service/internal/application/dispatcher"
	"github.com/seguro/quotes-service/internal/domain/domainerr"
	"github.com/seguro/quotes-service/internal/domain/entity"
	"github.com/seguro/quotes-service/internal/domain/event"
	"github.com/seguro/quotes-service/internal/observability"
	"github.com/seguro/quotes-service/internal/repository"
)

// PolicyService issues one-year policies from approved, unexpired quotes.
type PolicyService struct {
	policies  *repository.PolicyRepository
	quotes    *repository.QuoteRepository
	publisher dispatcher.Publisher
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewPolicyService wires the issuance dependencies.
func NewPolicyService(
	policies *repository.PolicyRepository,
	quotes *repository.QuoteRepository,
	publisher dispatcher.Publisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *PolicyService {
	return &PolicyService{
		policies:  policies,
		quotes:    quotes,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// IssuePolicy binds a policy to the quote, enforcing the issuance gates in
// order: existence, approval, expiry.
func (s *PolicyService) IssuePolicy(ctx context.Context, quoteID uuid.UUID) (entity.Policy, *domainerr.DomainError) {
	quote, ok := s.quotes.FindByID(quoteID)
	if !ok {
		return entity.Policy{}, domainerr.ErrQuoteNotFound
	}

	if !quote.CanGeneratePolicy() {
		return entity.Policy{}, domainerr.ErrQuoteNotApproved
	}

	if quote.IsExpired() {
		return entity.Policy{}, domainerr.ErrQuoteExpired
	}

	policy := entity.NewPolicy(quoteID, generatePolicyNumber(quote.Application.InsuranceType))
	saved := s.policies.Save(policy)

	s.metrics.PolicyIssued()
	s.logger.Info("Policy issued",
		zap.String("policy_id", saved.ID.String()),
		zap.String("quote_id", quoteID.String()),
		zap.String("policy_number", saved.PolicyNumber))

	s.publisher.Publish(ctx, event.PolicyIssuedFrom(saved))
	return saved, nil
}

// GetPolicyByID fetches a policy or reports POLICY_NOT_FOUND.
func (s *PolicyService) GetPolicyByID(id uuid.UUID) (entity.Policy, *domainerr.DomainError) {
	policy, ok := s.policies.FindByID(id)
	if !ok {
		return entity.Policy{}, domainerr.ErrPolicyNotFound
	}
	return policy, nil
}

// ListPolicies returns all issued policies.
func (s *PolicyService) ListPolicies() []entity.Policy {
	return s.policies.FindAll()
}

func generatePolicyNumber(insuranceType entity.InsuranceType) string {
	return fmt.Sprintf("POL-%s-%d-%d",
		insuranceType,
		time.Now().UnixMilli(),
		1000+rand.Intn(9000))
}
