package commands

import (
	"context"
	"log/slog"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/ports"
)

// publishDomainEvents drains the aggregate's buffered events and dispatches
// them in the order they were raised. Called only after a successful commit;
// dispatch failures are logged and never propagated, so a flaky listener
// cannot fail an already committed operation.
func publishDomainEvents(ctx context.Context, dispatcher ports.EventDispatcher,
	logger *slog.Logger, aggregate *invoice.Invoice) {
	if dispatcher == nil {
		return
	}

	events := aggregate.DomainEvents()
	aggregate.ClearDomainEvents()

	for _, event := range events {
		if err := dispatcher.Dispatch(ctx, event); err != nil {
			logger.Warn("domain event dispatch failed",
				"event", event.EventName(), "invoice_id", aggregate.ID(), "error", err)
		}
	}
}
