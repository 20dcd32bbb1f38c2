package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/telemetry"

	"github.com/robfig/cron/v3"
)

// relayBatchSize bounds one tick's read from the outbox.
const relayBatchSize = 100

// NotificationRelayJob drains the order-event outbox to the message broker.
// Events are published oldest first and stamped sent only after the broker
// accepts them; a failed publish stops the tick and the remainder is retried
// on the next one.
type NotificationRelayJob struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewNotificationRelayJob creates the relay running every 5 seconds.
func NewNotificationRelayJob(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *NotificationRelayJob {
	return &NotificationRelayJob{
		uowFactory: uowFactory,
		publisher:  publisher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "notification_relay_job"),
	}
}

// Start begins the relay.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		if err := j.relay(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification relay tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started (running every 5 seconds)")
	return nil
}

// Stop stops the relay.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}

func (j *NotificationRelayJob) relay(ctx context.Context) error {
	eventRepo := j.uowFactory.Create().EventRepository()

	events, err := eventRepo.GetUnsent(ctx, relayBatchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	published := make([]kernel.UUID, 0, len(events))
	var publishErr error

	for _, event := range events {
		if publishErr = j.publisher.Publish(ctx, event); publishErr != nil {
			break
		}
		published = append(published, event.ID)
	}

	if len(published) > 0 {
		if err := eventRepo.MarkSent(ctx, published); err != nil {
			return err
		}
		telemetry.EventsRelayed.Add(float64(len(published)))
		j.logger.InfoContext(ctx, "Relayed order events", "count", len(published))
	}

	return publishErr
}
