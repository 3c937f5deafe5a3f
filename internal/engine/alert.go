package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/caroogle/bob/internal/metrics"
	"github.com/caroogle/bob/internal/notify"
	"github.com/caroogle/bob/internal/store"
	domain "github.com/caroogle/bob/pkg/types"
)

const batchThreshold = 5

// ProcessAlerts sends notifications for pending alerts, then marks them as notified.
// Alerts are grouped by dealer; a dealer with 5+ pending alerts gets one batch
// message. Failed notifications are not marked as notified and are retried on
// the next run.
func ProcessAlerts(
	ctx context.Context,
	s store.Store,
	n notify.Notifier,
) error {
	pending, err := s.ListPendingAlerts(ctx)
	if err != nil {
		return fmt.Errorf("listing pending alerts: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	grouped := groupByDealer(pending)
	dealers := make([]string, 0, len(grouped))
	for d := range grouped {
		dealers = append(dealers, d)
	}
	sort.Strings(dealers)

	for _, dealer := range dealers {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := sendAlerts(ctx, s, n, dealer, grouped[dealer]); err != nil {
			metrics.NotificationFailuresTotal.Inc()
			continue
		}
	}

	return nil
}

// DeliverAlerts runs ProcessAlerts with the engine's store and notifier.
func (eng *Engine) DeliverAlerts(ctx context.Context) error {
	if err := ProcessAlerts(ctx, eng.store, eng.notifier); err != nil {
		eng.log.Error("alert delivery failed", "error", err)
		return err
	}
	return nil
}

func groupByDealer(alerts []domain.AlertLogEntry) map[string][]domain.AlertLogEntry {
	grouped := make(map[string][]domain.AlertLogEntry)
	for _, a := range alerts {
		grouped[a.Dealer] = append(grouped[a.Dealer], a)
	}
	return grouped
}

func sendAlerts(
	ctx context.Context,
	s store.Store,
	n notify.Notifier,
	dealer string,
	alerts []domain.AlertLogEntry,
) error {
	if len(alerts) >= batchThreshold {
		return sendBatch(ctx, s, n, dealer, alerts)
	}

	for i := range alerts {
		if err := sendSingle(ctx, s, n, &alerts[i]); err != nil {
			return err
		}
	}

	return nil
}

func sendSingle(
	ctx context.Context,
	s store.Store,
	n notify.Notifier,
	alert *domain.AlertLogEntry,
) error {
	payload := notify.PayloadFromEntry(alert)

	if err := n.SendAlert(ctx, &payload); err != nil {
		return fmt.Errorf("sending alert: %w", err)
	}

	metrics.AlertsFiredTotal.Inc()

	return s.MarkAlertsNotified(ctx, []string{alert.ID})
}

func sendBatch(
	ctx context.Context,
	s store.Store,
	n notify.Notifier,
	dealer string,
	alerts []domain.AlertLogEntry,
) error {
	payloads := make([]notify.AlertPayload, 0, len(alerts))
	alertIDs := make([]string, 0, len(alerts))

	for i := range alerts {
		payloads = append(payloads, notify.PayloadFromEntry(&alerts[i]))
		alertIDs = append(alertIDs, alerts[i].ID)
	}

	if err := n.SendBatchAlert(ctx, payloads, dealer); err != nil {
		return fmt.Errorf("sending batch alert: %w", err)
	}

	metrics.AlertsFiredTotal.Add(float64(len(alertIDs)))

	return s.MarkAlertsNotified(ctx, alertIDs)
}
