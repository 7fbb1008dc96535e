// Package service composes the domain components into the quote processing
// pipelines and the policy issuance flow.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seguro/quotes-service/internal/ai"
	"github.com/seguro/quotes-service/internal/application/dispatcher"
	"github.com/seguro/quotes-service/internal/domain/domainerr"
	"github.com/seguro/quotes-service/internal/domain/entity"
	"github.com/seguro/quotes-service/internal/domain/event"
	"github.com/seguro/quotes-service/internal/domain/pricing"
	"github.com/seguro/quotes-service/internal/domain/validation"
	"github.com/seguro/quotes-service/internal/observability"
	"github.com/seguro/quotes-service/internal/repository"
	"github.com/seguro/quotes-service/internal/worker"
)

// QuoteService orchestrates the synchronous and asynchronous quoting
// pipelines: normalize, validate, risk-assess, price, decide, persist,
// publish.
type QuoteService struct {
	quotes    *repository.QuoteRepository
	assessor  ai.RiskAssessor
	estimator ai.ScoreEstimator
	publisher dispatcher.Publisher
	runner    worker.Runner
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewQuoteService wires the pipeline dependencies.
func NewQuoteService(
	quotes *repository.QuoteRepository,
	assessor ai.RiskAssessor,
	estimator ai.ScoreEstimator,
	publisher dispatcher.Publisher,
	runner worker.Runner,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *QuoteService {
	return &QuoteService{
		quotes:    quotes,
		assessor:  assessor,
		estimator: estimator,
		publisher: publisher,
		runner:    runner,
		metrics:   metrics,
		logger:    logger,
	}
}

// CreateQuote runs the full pipeline while the caller waits. A validation
// failure returns the domain error and persists nothing. The final decision
// applies the two-tier risk multiplier: score above 70 surcharges 10%.
// A repeated idempotency key returns the first-saved quote unchanged.
func (s *QuoteService) CreateQuote(ctx context.Context, app entity.Application, idempotencyKey string) (entity.Quote, *domainerr.DomainError) {
	normalized := app.Normalized()

	if _, derr := validation.Validate(normalized); derr != nil {
		s.logger.Info("Quote rejected by validation",
			zap.String("document", entity.MaskDocument(normalized.Document)),
			zap.String("error_code", derr.Code))
		return entity.Quote{}, derr
	}

	assessment := s.assessor.Assess(ctx, ai.RiskInputFrom(normalized), "sync")

	baseline := pricing.Calculate(normalized)
	adjustedPrice := baseline.Price
	if assessment.Score > 70 {
		adjustedPrice = baseline.Price * 1.10
	}

	quote := entity.NewQuote(entity.QuoteStatusApproved, normalized)
	quote.Price = &adjustedPrice
	if adjustedPrice > pricing.PriceLimit {
		quote.Status = entity.QuoteStatusRejected
		quote.RejectionReasons = []string{pricing.RejectionReasonLimitExceeded}
	}

	saved := s.quotes.SaveIdempotent(quote, idempotencyKey)
	s.metrics.QuoteDecided("sync", string(saved.Status))
	s.logger.Info("Quote processed", zap.String("quote", saved.SafeLogString()))

	s.publishDecision(ctx, saved)
	return saved, nil
}

// CreateQuoteAsync persists a CREATED placeholder, schedules the pipeline in
// the background, and returns immediately. The background run mutates the
// stored record in place and is never awaited.
func (s *QuoteService) CreateQuoteAsync(ctx context.Context, app entity.Application) entity.Quote {
	normalized := app.Normalized()
	saved := s.quotes.Save(entity.NewQuote(entity.QuoteStatusCreated, normalized))

	s.logger.Info("Quote created, scheduling background processing",
		zap.String("quote_id", saved.ID.String()))

	s.runner.Go("process-quote", func(taskCtx context.Context) {
		s.processQuote(taskCtx, saved.ID, normalized)
	})

	return saved
}

// processQuote is the background pipeline run. Validation failure rejects
// the stored quote without publishing; otherwise the decision applies the
// three-tier risk multiplier (above 80: +20%, above 60: +10%). When the
// gateway degraded to its fallback, the deterministic estimator supplies the
// score instead.
func (s *QuoteService) processQuote(ctx context.Context, quoteID uuid.UUID, normalized entity.Application) {
	if _, derr := validation.Validate(normalized); derr != nil {
		updated, ok := s.quotes.Update(quoteID, func(q entity.Quote) entity.Quote {
			q.Status = entity.QuoteStatusRejected
			q.Price = nil
			q.RejectionReasons = []string{derr.Code}
			return q
		})
		if !ok {
			s.logger.Warn("Quote disappeared before validation rejection",
				zap.String("quote_id", quoteID.String()))
			return
		}
		s.metrics.QuoteDecided("async", string(updated.Status))
		s.logger.Info("Quote rejected by validation",
			zap.String("quote_id", quoteID.String()),
			zap.String("error_code", derr.Code))
		return
	}

	assessment := s.assessor.Assess(ctx, ai.RiskInputFrom(normalized), "async:"+quoteID.String())
	score := assessment.Score
	if assessment.IsFallback() {
		score = s.estimator.Score(normalized.Document)
		s.logger.Info("Risk gateway degraded, using document estimator",
			zap.String("quote_id", quoteID.String()),
			zap.Int("estimated_score", score))
	}

	baseline := pricing.Calculate(normalized)
	adjustedPrice := baseline.Price
	switch {
	case score > 80:
		adjustedPrice = baseline.Price * 1.20
	case score > 60:
		adjustedPrice = baseline.Price * 1.10
	}

	updated, ok := s.quotes.Update(quoteID, func(q entity.Quote) entity.Quote {
		q.Price = &adjustedPrice
		if adjustedPrice <= pricing.PriceLimit {
			q.Status = entity.QuoteStatusApproved
			q.RejectionReasons = nil
		} else {
			q.Status = entity.QuoteStatusRejected
			q.RejectionReasons = []string{pricing.RejectionReasonLimitExceeded}
		}
		return q
	})
	if !ok {
		s.logger.Warn("Quote disappeared before decision",
			zap.String("quote_id", quoteID.String()))
		return
	}

	s.metrics.QuoteDecided("async", string(updated.Status))
	s.logger.Info("Quote processed", zap.String("quote", updated.SafeLogString()))

	s.publishDecision(ctx, updated)
}

// publishDecision emits the terminal event for a decided quote. Quotes in
// any other state publish nothing.
func (s *QuoteService) publishDecision(ctx context.Context, quote entity.Quote) {
	if approved, ok := event.QuoteApprovedFrom(quote); ok {
		s.publisher.Publish(ctx, approved)
		return
	}
	if rejected, ok := event.QuoteRejectedFrom(quote); ok {
		s.publisher.Publish(ctx, rejected)
	}
}

// GetQuoteByID fetches a quote or reports QUOTE_NOT_FOUND.
func (s *QuoteService) GetQuoteByID(id uuid.UUID) (entity.Quote, *domainerr.DomainError) {
	quote, ok := s.quotes.FindByID(id)
	if !ok {
		return entity.Quote{}, domainerr.ErrQuoteNotFound
	}
	return quote, nil
}

// ListQuotes returns all quotes in store-iteration order.
func (s *QuoteService) ListQuotes() []entity.Quote {
	return s.quotes.FindAll()
}
