package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caroogle/bob/internal/api/handlers"
	storeMocks "github.com/caroogle/bob/internal/store/mocks"
	"github.com/caroogle/bob/pkg/extract"
	"github.com/caroogle/bob/pkg/refdata"
	domain "github.com/caroogle/bob/pkg/types"
)

func testNormalizer(t *testing.T) *extract.Normalizer {
	t.Helper()
	tables, err := refdata.Default()
	require.NoError(t, err)
	return extract.NewNormalizer(tables)
}

func TestSalesHandler_Ingest(t *testing.T) {
	t.Parallel()

	hilux := map[string]any{
		"source_id": "S-1", "make": "Toyota", "model": "Hilux", "variant": "SR5 Double Cab",
		"year": 2020, "km": 55000, "buy_price": 42000, "sale_price": 47000,
	}

	tests := []struct {
		name       string
		body       any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "normalizes and stores",
			body: map[string]any{"sales": []map[string]any{hilux}},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					UpsertSale(mock.Anything, mock.MatchedBy(func(s *domain.HistoricalSale) bool {
						return s.SourceID == "S-1" && s.Make == "TOYOTA" && s.Model == "HILUX" &&
							s.PlatformClass == "TOYOTA:HILUX" && s.TrimClass == "SR5"
					})).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"accepted":1`, `"rejected":[]`},
		},
		{
			name: "rejects rows without identity",
			body: map[string]any{"sales": []map[string]any{
				hilux,
				{"source_id": "S-2", "make": "Toyota", "model": "Hilux", "year": 0},
				{"source_id": "", "make": "Toyota", "model": "Hilux", "year": 2020},
			}},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().UpsertSale(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"accepted":1`, "sale 1 (S-2)", "year", "sale 2: source_id is required"},
		},
		{
			name: "store error returns 500",
			body: map[string]any{"sales": []map[string]any{hilux}},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().UpsertSale(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"ingesting sales failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterSalesRoutes(api, handlers.NewSalesHandler(ms, testNormalizer(t)))

			resp := api.Post("/api/v1/sales", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}
