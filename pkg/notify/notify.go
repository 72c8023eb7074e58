// Package notify delivers member-facing notifications about requests.
// Delivery is best effort: callers log failures and carry on.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notify.go -destination=mock_notify.go -package=notify

type Kind string

const (
	KindRequestCreated  Kind = "request.created"
	KindReminder        Kind = "request.reminder"
	KindRequestResolved Kind = "request.resolved"
)

type Notification struct {
	Kind       Kind        `json:"kind"`
	RequestID  uuid.UUID   `json:"request_id"`
	GroupID    uuid.UUID   `json:"group_id"`
	Recipients []uuid.UUID `json:"recipients"`
	Status     string      `json:"status,omitempty"`
	Message    string      `json:"message"`
	SentAt     time.Time   `json:"sent_at"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, n Notification) error {
	zap.L().Info("notification",
		zap.String("kind", string(n.Kind)),
		zap.Stringer("request_id", n.RequestID),
		zap.Int("recipients", len(n.Recipients)),
		zap.String("message", n.Message),
	)
	return nil
}

// Multi fans a notification out to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for _, notifier := range m {
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
