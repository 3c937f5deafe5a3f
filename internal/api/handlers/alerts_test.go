package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caroogle/bob/internal/api/handlers"
	"github.com/caroogle/bob/internal/store"
	storeMocks "github.com/caroogle/bob/internal/store/mocks"
	domain "github.com/caroogle/bob/pkg/types"
)

func TestAlertsHandler_List(t *testing.T) {
	t.Parallel()

	since := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		query      string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns alerts",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAlerts(mock.Anything, mock.Anything).
					Return([]domain.AlertLogEntry{{
						ID: "a1", DedupKey: "acme|LOT1|ACTION|passed_in|2026-03-09",
						AlertType: domain.AlertAction, Reason: domain.ReasonPassedIn,
					}}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"reason":"passed_in"`,
		},
		{
			name:  "filters are passed through",
			query: "?dealer=acme&alert_type=UPCOMING&notified=false&since=2026-03-09T00:00:00Z",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAlerts(mock.Anything, mock.MatchedBy(func(q *store.AlertQuery) bool {
						return *q.Dealer == "acme" && *q.AlertType == "UPCOMING" &&
							q.Notified != nil && !*q.Notified &&
							q.Since != nil && q.Since.Equal(since)
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"alerts":[]`,
		},
		{
			name:  "no notified filter",
			query: "?limit=5",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAlerts(mock.Anything, mock.MatchedBy(func(q *store.AlertQuery) bool {
						return q.Notified == nil && q.Since == nil && q.Limit == 5
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "store error",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAlerts(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "alert query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterAlertRoutes(api, handlers.NewAlertsHandler(ms))

			resp := api.Get("/api/v1/alerts" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
