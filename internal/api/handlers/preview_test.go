package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caroogle/bob/internal/api/handlers"
	"github.com/caroogle/bob/internal/engine"
	"github.com/caroogle/bob/pkg/extract"
	score "github.com/caroogle/bob/pkg/scorer"
	domain "github.com/caroogle/bob/pkg/types"
)

// mockPreviewer implements Previewer for testing.
type mockPreviewer struct {
	res *engine.PreviewResult
	err error
	got domain.RawListing
}

func (m *mockPreviewer) Preview(_ context.Context, raw domain.RawListing) (*engine.PreviewResult, error) {
	m.got = raw
	return m.res, m.err
}

func TestPreviewHandler(t *testing.T) {
	t.Parallel()

	body := map[string]any{
		"source_type": "pickles", "source_id": "P-1",
		"title": "2021 Toyota Hilux SR5 4x4", "asking_price": 38000, "km": 60000,
	}

	tests := []struct {
		name       string
		previewer  *mockPreviewer
		wantStatus int
		wantBody   []string
	}{
		{
			name: "returns decision",
			previewer: &mockPreviewer{res: &engine.PreviewResult{
				Key:        "toyota:hilux:sr5:2021:4wd",
				Decision:   score.Decision{Outcome: score.OutcomeOpportunity, Tier: domain.TierHigh, UnderBuy: 4000},
				Candidates: []score.Ranked{},
			}},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"key":"toyota:hilux:sr5:2021:4wd"`, `"outcome":"opportunity"`, `"tier":"HIGH"`},
		},
		{
			name: "missing identity returns 422",
			previewer: &mockPreviewer{
				err: fmt.Errorf("normalizing listing: %w: year", extract.ErrMissingIdentity),
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"missing required identity field"},
		},
		{
			name:       "store error returns 500",
			previewer:  &mockPreviewer{err: errors.New("listing sales: db error")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"preview failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterPreviewRoutes(api, handlers.NewPreviewHandler(tt.previewer))

			resp := api.Post("/api/v1/match/preview", body)
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
			assert.Equal(t, "2021 Toyota Hilux SR5 4x4", tt.previewer.got.Title)
		})
	}
}
