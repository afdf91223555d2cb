package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded events. It is used
// when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards events with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendEvent logs and discards a single event.
func (n *NoOpNotifier) SendEvent(_ context.Context, ev *StockEvent) error {
	n.log.Debug("notification discarded (no backend configured)",
		"kind", ev.Kind,
		"product", ev.ProductUUID,
		"store", ev.StoreName,
	)
	return nil
}

// SendBatch logs and discards a batch of events.
func (n *NoOpNotifier) SendBatch(_ context.Context, events []StockEvent, title string) error {
	n.log.Debug("batch notification discarded (no backend configured)",
		"title", title,
		"count", len(events),
	)
	return nil
}
