package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It
// is used when no webhook is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards changes with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendPriceChange logs and discards a single change.
func (n *NoOpNotifier) SendPriceChange(_ context.Context, change *PriceChange) error {
	n.log.Debug("notification discarded (no backend configured)",
		"id", change.ID,
		"old", change.OldPrice,
		"new", change.NewPrice,
	)
	return nil
}

// SendBatch logs and discards a batch of changes.
func (n *NoOpNotifier) SendBatch(_ context.Context, changes []PriceChange) error {
	n.log.Debug("batch notification discarded (no backend configured)",
		"count", len(changes),
	)
	return nil
}
