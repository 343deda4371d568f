package ports

import (
	"context"

	"icpc-contest/internal/domain/model"
)

// Notifier shows notifications to the user (e.g. the console).
type Notifier interface {
	Send(ctx context.Context, notification model.Notification) error
}
