package postgres

import (
	"context"
	"log/slog"

	"fooddelivery/internal/adapters/out/postgres/notificationrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/telemetry"

	"gorm.io/gorm"
)

// GormNotifier persists fan-out batches outside the order transaction.
// Delivery is best-effort: a failed write is logged and dropped, so a lost
// notification cannot fail the order operation that produced it.
type GormNotifier struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormNotifier creates a notifier writing through the shared connection pool.
func NewGormNotifier(db *gorm.DB, logger *slog.Logger) *GormNotifier {
	return &GormNotifier{
		db:     db,
		logger: logger.With("component", "notifier"),
	}
}

// Publish stores the batch. Errors are logged, never returned.
func (n *GormNotifier) Publish(ctx context.Context, batch []*notification.Notification) {
	if len(batch) == 0 {
		return
	}

	repo := notificationrepo.NewGormNotificationRepository(n.db, noopTracker{})
	if err := repo.AddBatch(ctx, batch); err != nil {
		telemetry.NotificationFailures.Inc()
		n.logger.ErrorContext(ctx, "failed to store notification batch",
			"batch_size", len(batch), "error", err)
	}
}

// noopTracker satisfies the repository's tracker outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}
