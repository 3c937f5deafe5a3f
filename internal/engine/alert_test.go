package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caroogle/bob/internal/notify"
	notifyMocks "github.com/caroogle/bob/internal/notify/mocks"
	storeMocks "github.com/caroogle/bob/internal/store/mocks"
	domain "github.com/caroogle/bob/pkg/types"
)

func testAlerts(dealer string, n int) []domain.AlertLogEntry {
	alerts := make([]domain.AlertLogEntry, n)
	for i := range alerts {
		lot := "LOT" + string(rune('1'+i))
		alerts[i] = domain.AlertLogEntry{
			ID:        dealer + "-a" + string(rune('1'+i)),
			DedupKey:  dealer + "|" + lot + "|UPCOMING|new|2026-03-09",
			Dealer:    dealer,
			LotID:     lot,
			AlertType: domain.AlertUpcoming,
			Reason:    domain.ReasonNew,
			Message:   "UPCOMING: " + lot,
		}
	}
	return alerts
}

func TestProcessAlerts_NoPending(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	ms.EXPECT().
		ListPendingAlerts(mock.Anything).
		Return(nil, nil).
		Once()

	err := ProcessAlerts(context.Background(), ms, mn)
	require.NoError(t, err)
}

func TestProcessAlerts_SingleAlert(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	alerts := testAlerts("acme", 1)

	ms.EXPECT().
		ListPendingAlerts(mock.Anything).
		Return(alerts, nil).
		Once()

	mn.EXPECT().
		SendAlert(mock.Anything, mock.MatchedBy(func(p *notify.AlertPayload) bool {
			return p.Dealer == "acme" && p.LotID == "LOT1" && p.Message == "UPCOMING: LOT1"
		})).
		Return(nil).
		Once()

	ms.EXPECT().
		MarkAlertsNotified(mock.Anything, []string{"acme-a1"}).
		Return(nil).
		Once()

	err := ProcessAlerts(context.Background(), ms, mn)
	require.NoError(t, err)
}

func TestProcessAlerts_NotifyFails_NotMarked(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	ms.EXPECT().
		ListPendingAlerts(mock.Anything).
		Return(testAlerts("acme", 1), nil).
		Once()

	mn.EXPECT().
		SendAlert(mock.Anything, mock.Anything).
		Return(errors.New("slack rate limited (429)")).
		Once()

	// MarkAlertsNotified should NOT be called when send fails.

	err := ProcessAlerts(context.Background(), ms, mn)
	require.NoError(t, err) // ProcessAlerts logs errors, doesn't return them
}

func TestProcessAlerts_BatchAlert(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	// 5 alerts for one dealer → batch threshold met.
	alerts := testAlerts("acme", 5)

	ms.EXPECT().
		ListPendingAlerts(mock.Anything).
		Return(alerts, nil).
		Once()

	mn.EXPECT().
		SendBatchAlert(mock.Anything, mock.MatchedBy(func(p []notify.AlertPayload) bool {
			return len(p) == 5
		}), "acme").
		Return(nil).
		Once()

	alertIDs := make([]string, 5)
	for i := range alertIDs {
		alertIDs[i] = alerts[i].ID
	}

	ms.EXPECT().
		MarkAlertsNotified(mock.Anything, alertIDs).
		Return(nil).
		Once()

	err := ProcessAlerts(context.Background(), ms, mn)
	require.NoError(t, err)
}

func TestProcessAlerts_IndividualAlerts(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	// 3 alerts for one dealer → below batch threshold.
	alerts := testAlerts("acme", 3)

	ms.EXPECT().
		ListPendingAlerts(mock.Anything).
		Return(alerts, nil).
		Once()

	for i := range alerts {
		mn.EXPECT().
			SendAlert(mock.Anything, mock.MatchedBy(func(p *notify.AlertPayload) bool {
				return p.LotID == alerts[i].LotID
			})).
			Return(nil).
			Once()

		ms.EXPECT().
			MarkAlertsNotified(mock.Anything, []string{alerts[i].ID}).
			Return(nil).
			Once()
	}

	err := ProcessAlerts(context.Background(), ms, mn)
	require.NoError(t, err)
}

func TestProcessAlerts_DealerFailureDoesNotBlockOthers(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	pending := append(testAlerts("acme", 1), testAlerts("zeta", 1)...)

	ms.EXPECT().ListPendingAlerts(mock.Anything).Return(pending, nil).Once()
	mn.EXPECT().
		SendAlert(mock.Anything, mock.MatchedBy(func(p *notify.AlertPayload) bool { return p.Dealer == "acme" })).
		Return(errors.New("boom")).
		Once()
	mn.EXPECT().
		SendAlert(mock.Anything, mock.MatchedBy(func(p *notify.AlertPayload) bool { return p.Dealer == "zeta" })).
		Return(nil).
		Once()
	ms.EXPECT().MarkAlertsNotified(mock.Anything, []string{"zeta-a1"}).Return(nil).Once()

	err := ProcessAlerts(context.Background(), ms, mn)
	require.NoError(t, err)
}

func TestProcessAlerts_StoreError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	ms.EXPECT().
		ListPendingAlerts(mock.Anything).
		Return(nil, errors.New("db error")).
		Once()

	err := ProcessAlerts(context.Background(), ms, mn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing pending alerts")
}

func TestDeliverAlerts(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, mn)

	ms.EXPECT().ListPendingAlerts(mock.Anything).Return(testAlerts("acme", 1), nil).Once()
	mn.EXPECT().SendAlert(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().MarkAlertsNotified(mock.Anything, []string{"acme-a1"}).Return(nil).Once()

	require.NoError(t, eng.DeliverAlerts(context.Background()))
}

func TestGroupByDealer(t *testing.T) {
	t.Parallel()

	alerts := []domain.AlertLogEntry{
		{ID: "a1", Dealer: "acme"},
		{ID: "a2", Dealer: "acme"},
		{ID: "a3", Dealer: "zeta"},
	}

	grouped := groupByDealer(alerts)
	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["acme"], 2)
	assert.Len(t, grouped["zeta"], 1)
}
