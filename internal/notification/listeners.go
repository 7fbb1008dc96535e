// Package notification registers the boot-time event listeners. They are
// the in-process stand-in for downstream consumers (mailers, webhooks);
// today they log the decision trail through the structured logger.
package notification

import (
	"context"

	"go.uber.org/zap"

	"github.com/seguro/quotes-service/internal/application/dispatcher"
	"github.com/seguro/quotes-service/internal/domain/event"
)

// RegisterListeners subscribes one listener per domain event type.
func RegisterListeners(publisher dispatcher.Publisher, logger *zap.Logger) {
	publisher.SubscribeNamed("quote-approved-log", func(_ context.Context, evt event.Event) error {
		if approved, ok := evt.(event.QuoteApproved); ok {
			logger.Info("Quote approved",
				zap.String("quote_id", approved.QuoteID.String()),
				zap.Float64("price", approved.Price),
				zap.String("insurance_type", string(approved.InsuranceType)))
		}
		return nil
	})

	publisher.SubscribeNamed("quote-rejected-log", func(_ context.Context, evt event.Event) error {
		if rejected, ok := evt.(event.QuoteRejected); ok {
			logger.Info("Quote rejected",
				zap.String("quote_id", rejected.QuoteID.String()),
				zap.Strings("reasons", rejected.Reasons))
		}
		return nil
	})

	publisher.SubscribeNamed("policy-issued-log", func(_ context.Context, evt event.Event) error {
		if issued, ok := evt.(event.PolicyIssued); ok {
			logger.Info("Policy issued",
				zap.String("policy_id", issued.PolicyID.String()),
				zap.String("quote_id", issued.QuoteID.String()),
				zap.String("policy_number", issued.PolicyNumber))
		}
		return nil
	})

	logger.Info("Event listeners registered")
}
