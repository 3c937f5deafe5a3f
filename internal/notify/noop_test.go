package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/caroogle/bob/pkg/types"
)

func TestNoOpNotifier_SendAlert(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := n.SendAlert(context.Background(), &AlertPayload{
		Dealer:    "acme",
		LotID:     "LOT1",
		AlertType: domain.AlertUpcoming,
		Reason:    domain.ReasonNew,
		Message:   "UPCOMING: 2021 TOYOTA HILUX SR5",
	})
	require.NoError(t, err)
}

func TestNoOpNotifier_SendBatchAlert(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	alerts := []AlertPayload{
		{Dealer: "acme", LotID: "LOT1", AlertType: domain.AlertUpcoming},
		{Dealer: "acme", LotID: "LOT2", AlertType: domain.AlertAction, Reason: domain.ReasonPassedIn},
	}

	err := n.SendBatchAlert(context.Background(), alerts, "acme")
	require.NoError(t, err)
}

func TestNoOpNotifier_SendBatchAlert_Empty(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(nil)
	err := n.SendBatchAlert(context.Background(), nil, "acme")
	require.NoError(t, err)
}

// compile-time interface check.
var _ Notifier = (*NoOpNotifier)(nil)
