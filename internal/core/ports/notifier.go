package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/notification"
)

// Notifier delivers a fan-out batch after the order transaction commits.
// Delivery is best-effort: implementations log failures and never return
// them, so a lost notification cannot fail an order operation.
type Notifier interface {
	Publish(ctx context.Context, batch []*notification.Notification)
}
