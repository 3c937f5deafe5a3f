// Package notify defines the notification interface and implementations
// for alert delivery.
package notify

import (
	"context"
	"time"

	domain "github.com/caroogle/bob/pkg/types"
)

// AlertPayload contains the data needed to deliver one alert log entry.
type AlertPayload struct {
	Dealer    string
	LotID     string
	AlertType domain.AlertType
	Reason    domain.AlertReason
	Message   string
	CreatedAt time.Time
}

// PayloadFromEntry converts an alert log entry to a payload.
func PayloadFromEntry(a *domain.AlertLogEntry) AlertPayload {
	return AlertPayload{
		Dealer:    a.Dealer,
		LotID:     a.LotID,
		AlertType: a.AlertType,
		Reason:    a.Reason,
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
	}
}

// Notifier defines the interface for sending alert notifications.
type Notifier interface {
	SendAlert(ctx context.Context, alert *AlertPayload) error
	SendBatchAlert(ctx context.Context, alerts []AlertPayload, dealer string) error
}
