package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DriverReleaseJob reconciles driver availability. A crash between an order
// reaching a terminal state and the driver release leaves the driver stuck
// unavailable; the sweep finds busy drivers with no active order and releases
// them. Release is idempotent, so sweeping a driver that a concurrent
// operation just released is harmless.
type DriverReleaseJob struct {
	uowFactory ports.UnitOfWorkFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDriverReleaseJob creates the sweep running every 30 seconds.
func NewDriverReleaseJob(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *DriverReleaseJob {
	return &DriverReleaseJob{
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "driver_release_job"),
	}
}

// Start begins the sweep.
func (j *DriverReleaseJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		if err := j.sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Driver release sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver release job started (running every 30 seconds)")
	return nil
}

// Stop stops the sweep.
func (j *DriverReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver release job stopped")
}

func (j *DriverReleaseJob) sweep(ctx context.Context) error {
	uow := j.uowFactory.Create()
	driverRepo := uow.DriverRepository()
	orderRepo := uow.OrderRepository()

	busyDrivers, err := driverRepo.GetAllBusy(ctx)
	if err != nil {
		return err
	}

	for _, busyDriver := range busyDrivers {
		active, err := orderRepo.HasActiveOrderForDriver(ctx, busyDriver.ID())
		if err != nil {
			return err
		}
		if active {
			continue
		}

		if err := driverRepo.Release(ctx, busyDriver.ID()); err != nil {
			return err
		}
		j.logger.InfoContext(ctx, "Released driver with no active order",
			"driver_id", busyDriver.ID().String())
	}

	return nil
}
