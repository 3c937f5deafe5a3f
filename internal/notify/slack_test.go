package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caroogle/bob/internal/metrics"
	domain "github.com/caroogle/bob/pkg/types"
)

func testAlert(lot string) AlertPayload {
	return AlertPayload{
		Dealer:    "acme",
		LotID:     lot,
		AlertType: domain.AlertAction,
		Reason:    domain.ReasonPassedIn,
		Message:   "ACTION: 2021 TOYOTA HILUX SR5 (60,000 km) lot " + lot + " at Brisbane passed in (pass 2)",
	}
}

func unlimited() SlackOption { return WithRateLimit(0, 0) }

func TestSlackNotifier_SendAlert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "valid alert posts blocks",
			statusCode: http.StatusOK,
		},
		{
			name:       "slack returns 429 rate limited",
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "slack returns 400 error",
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "slack returned 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received slackPayload

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					assert.Equal(t, http.MethodPost, r.Method)

					err := json.NewDecoder(r.Body).Decode(&received)
					assert.NoError(t, err)

					w.WriteHeader(tt.statusCode)
					_, _ = w.Write([]byte("invalid_payload"))
				}),
			)
			defer srv.Close()

			alert := testAlert("LOT1")
			s := NewSlackNotifier(srv.URL, unlimited(), WithChannel("#auctions"))
			err := s.SendAlert(context.Background(), &alert)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "#auctions", received.Channel)
			assert.Equal(t, alert.Message, received.Text)
			require.Len(t, received.Blocks, 2)
			assert.Equal(t, "section", received.Blocks[0].Type)
			assert.Contains(t, received.Blocks[0].Text.Text, ":rotating_light:")
			assert.Contains(t, received.Blocks[0].Text.Text, alert.Message)
			require.Len(t, received.Blocks[1].Elements, 1)
			assert.Equal(t, "acme | lot LOT1 | ACTION/passed_in", received.Blocks[1].Elements[0].Text)
		})
	}
}

func TestSlackNotifier_SendBatchAlert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		count      int
		wantBlocks int
		wantMore   bool
	}{
		{name: "small batch", count: 3, wantBlocks: 4},
		{name: "exactly the cap", count: maxBatchBlocks, wantBlocks: maxBatchBlocks + 1},
		{name: "over the cap", count: maxBatchBlocks + 5, wantBlocks: maxBatchBlocks + 2, wantMore: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received slackPayload
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				err := json.NewDecoder(r.Body).Decode(&received)
				assert.NoError(t, err)
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			alerts := make([]AlertPayload, tt.count)
			for i := range alerts {
				alerts[i] = testAlert("LOT" + strings.Repeat("X", i))
			}

			s := NewSlackNotifier(srv.URL, unlimited())
			err := s.SendBatchAlert(context.Background(), alerts, "acme")
			require.NoError(t, err)

			assert.Len(t, received.Blocks, tt.wantBlocks)
			assert.Contains(t, received.Text, "new alerts for acme")
			last := received.Blocks[len(received.Blocks)-1]
			if tt.wantMore {
				require.Len(t, last.Elements, 1)
				assert.Contains(t, last.Elements[0].Text, "and 5 more alerts for acme")
			} else {
				assert.Equal(t, "section", last.Type)
			}
		})
	}
}

func TestSlackNotifier_SendBatchAlert_Empty(t *testing.T) {
	t.Parallel()

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewSlackNotifier(srv.URL, unlimited())
	require.NoError(t, s.SendBatchAlert(context.Background(), nil, "acme"))
	assert.False(t, called)
}

func TestSlackNotifier_UpcomingEmoji(t *testing.T) {
	t.Parallel()

	var received slackPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	alert := AlertPayload{Dealer: "acme", LotID: "L9", AlertType: domain.AlertUpcoming, Message: "UPCOMING: x"}
	s := NewSlackNotifier(srv.URL, unlimited())
	require.NoError(t, s.SendAlert(context.Background(), &alert))

	require.NotEmpty(t, received.Blocks)
	assert.True(t, strings.HasPrefix(received.Blocks[0].Text.Text, ":mag:"))
	assert.Equal(t, "acme | lot L9 | UPCOMING", received.Blocks[1].Elements[0].Text)
}

func TestSlackNotifier_RateLimitHonoursContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewSlackNotifier(srv.URL, WithRateLimit(0.001, 1))
	alert := testAlert("LOT1")
	require.NoError(t, s.SendAlert(context.Background(), &alert))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.SendAlert(ctx, &alert)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "waiting for slack rate limit")
}

func TestSlackNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	s := NewSlackNotifier("http://127.0.0.1:1", unlimited()) // nothing listening
	alert := testAlert("LOT1")
	err := s.SendAlert(context.Background(), &alert)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending slack webhook")
}

func TestSlackNotifier_InvalidWebhookURL(t *testing.T) {
	t.Parallel()

	s := NewSlackNotifier("://not-a-valid-url", unlimited())
	alert := testAlert("LOT1")
	err := s.SendAlert(context.Background(), &alert)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating slack request")
}

func TestSlackOptions(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	s := NewSlackNotifier("https://example.com", WithHTTPClient(custom), WithRateLimit(2, 0))
	assert.Same(t, custom, s.client)
	require.NotNil(t, s.limiter)
	assert.Equal(t, 1, s.limiter.Burst())

	assert.Nil(t, NewSlackNotifier("https://example.com", unlimited()).limiter)
}

func TestPayloadFromEntry(t *testing.T) {
	t.Parallel()

	e := &domain.AlertLogEntry{
		Dealer: "acme", LotID: "L1", AlertType: domain.AlertAction,
		Reason: domain.ReasonPriceDrop, Message: "m",
	}
	p := PayloadFromEntry(e)
	assert.Equal(t, "acme", p.Dealer)
	assert.Equal(t, domain.ReasonPriceDrop, p.Reason)
	assert.Equal(t, "m", p.Message)
}

func getNotificationHistogramSampleCount() uint64 {
	ch := make(chan prometheus.Metric, 1)
	metrics.NotificationDuration.Collect(ch)
	m := <-ch
	pb := &dto.Metric{}
	_ = m.Write(pb)
	return pb.GetHistogram().GetSampleCount()
}

func TestSendAlert_ObservesNotificationDuration(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	before := getNotificationHistogramSampleCount()

	s := NewSlackNotifier(srv.URL, unlimited())
	alert := testAlert("LOT1")
	require.NoError(t, s.SendAlert(context.Background(), &alert))

	after := getNotificationHistogramSampleCount()
	assert.Greater(t, after, before, "NotificationDuration histogram sample count should increase")
}

// compile-time interface check.
var _ Notifier = (*SlackNotifier)(nil)
