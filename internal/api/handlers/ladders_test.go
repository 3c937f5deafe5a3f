package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caroogle/bob/internal/api/handlers"
	"github.com/caroogle/bob/pkg/ladder"
)

func testLadders(t *testing.T) *ladder.Set {
	t.Helper()
	s, err := ladder.New(map[string]map[string]int{
		"TOYOTA:HILUX": {"WORKMATE": 1, "SR": 2, "SR5": 3},
	})
	require.NoError(t, err)
	return s
}

func TestLadderHandler_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "exact",
			path:       "/api/v1/ladders/TOYOTA:HILUX/check?listing_trim=sr5&sale_trim=SR5",
			wantStatus: http.StatusOK,
			wantBody:   `{"platform":"TOYOTA:HILUX","listing_trim":"sr5","sale_trim":"SR5","verdict":"EXACT","allowed":true,"has_ladder":true}`,
		},
		{
			name:       "one step up",
			path:       "/api/v1/ladders/toyota:hilux/check?listing_trim=SR5&sale_trim=SR",
			wantStatus: http.StatusOK,
			wantBody:   `{"platform":"TOYOTA:HILUX","listing_trim":"SR5","sale_trim":"SR","verdict":"UPGRADE","allowed":true,"has_ladder":true}`,
		},
		{
			name:       "two steps up",
			path:       "/api/v1/ladders/TOYOTA:HILUX/check?listing_trim=SR5&sale_trim=WORKMATE",
			wantStatus: http.StatusOK,
			wantBody:   `{"platform":"TOYOTA:HILUX","listing_trim":"SR5","sale_trim":"WORKMATE","verdict":"","allowed":false,"has_ladder":true}`,
		},
		{
			name:       "downgrade",
			path:       "/api/v1/ladders/TOYOTA:HILUX/check?listing_trim=SR&sale_trim=SR5",
			wantStatus: http.StatusOK,
			wantBody:   `{"platform":"TOYOTA:HILUX","listing_trim":"SR","sale_trim":"SR5","verdict":"","allowed":false,"has_ladder":true}`,
		},
		{
			name:       "no ladder",
			path:       "/api/v1/ladders/FORD:RANGER/check?listing_trim=XLT&sale_trim=XL",
			wantStatus: http.StatusOK,
			wantBody:   `{"platform":"FORD:RANGER","listing_trim":"XLT","sale_trim":"XL","verdict":"","allowed":false,"has_ladder":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterLadderRoutes(api, handlers.NewLadderHandler(testLadders(t)))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.JSONEq(t, tt.wantBody, resp.Body.String())
		})
	}
}

func TestLadderHandler_CheckRequiresTrims(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterLadderRoutes(api, handlers.NewLadderHandler(testLadders(t)))

	resp := api.Get("/api/v1/ladders/TOYOTA:HILUX/check?listing_trim=SR5")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestLadderHandler_List(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterLadderRoutes(api, handlers.NewLadderHandler(testLadders(t)))

	resp := api.Get("/api/v1/ladders")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[{"platform":"TOYOTA:HILUX","trims":["WORKMATE","SR","SR5"]}]`, resp.Body.String())

	_, empty := humatest.New(t)
	handlers.RegisterLadderRoutes(empty, handlers.NewLadderHandler(nil))
	resp = empty.Get("/api/v1/ladders")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}
