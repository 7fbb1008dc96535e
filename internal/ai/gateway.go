// Package ai provides the risk-assessment gateway: a throttled, fallback-
// guarded front for the external risk model. The gateway makes the model
// behave like a total function — callers never see its failures.
package ai

import (
	"context"

	"go.uber.org/zap"

	"github.com/seguro/quotes-service/internal/domain/entity"
	"github.com/seguro/quotes-service/internal/observability"
)

// ModelClient calls the external risk model.
type ModelClient interface {
	Assess(ctx context.Context, input RiskInput) (entity.RiskAssessment, error)
}

// RiskAssessor is the orchestrator's view of risk scoring.
type RiskAssessor interface {
	Assess(ctx context.Context, input RiskInput, origin string) entity.RiskAssessment
}

// Gateway serializes calls to the external model through an injected slot
// pool and degrades every failure to the canned fallback assessment.
type Gateway struct {
	client  ModelClient
	permits SlotPool
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewGateway creates a gateway. The pool bounds concurrent in-flight model
// calls; production wiring passes a single-slot pool to respect the external
// quota.
func NewGateway(client ModelClient, permits SlotPool, metrics *observability.Metrics, logger *zap.Logger) *Gateway {
	return &Gateway{
		client:  client,
		permits: permits,
		metrics: metrics,
		logger:  logger,
	}
}

// Assess never fails: it blocks for a permit, invokes the model, and returns
// either the sanitized model assessment or the fallback. The origin tag only
// feeds log output.
func (g *Gateway) Assess(ctx context.Context, input RiskInput, origin string) entity.RiskAssessment {
	release, ok := g.permits.Acquire(ctx)
	if !ok {
		g.logger.Warn("Risk permit acquisition aborted, using fallback",
			zap.String("origin", origin),
			zap.Error(ctx.Err()))
		g.metrics.RiskFallback()
		return entity.FallbackAssessment()
	}
	defer release()

	g.metrics.RiskCallStarted()
	result, err := g.client.Assess(ctx, input)
	g.metrics.RiskCallFinished()

	if err != nil {
		g.logger.Warn("Risk model call failed, using fallback",
			zap.String("origin", origin),
			zap.String("document", entity.MaskDocument(input.Document)),
			zap.Error(err))
		g.metrics.RiskFallback()
		return entity.FallbackAssessment()
	}

	normalized := result.Normalized()
	g.logger.Info("Risk assessment completed",
		zap.String("origin", origin),
		zap.Int("risk_score", normalized.Score),
		zap.Int("reasons_count", len(normalized.Reasons)))
	return normalized
}
