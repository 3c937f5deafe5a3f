package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/caroogle/bob/internal/store"
	"github.com/caroogle/bob/pkg/extract"
	domain "github.com/caroogle/bob/pkg/types"
)

// SalesHandler handles historical sale ingest.
type SalesHandler struct {
	store      store.Store
	normalizer *extract.Normalizer
}

// NewSalesHandler creates a new SalesHandler.
func NewSalesHandler(s store.Store, n *extract.Normalizer) *SalesHandler {
	return &SalesHandler{store: s, normalizer: n}
}

// IngestSalesInput is the request body for ingesting historical sales.
type IngestSalesInput struct {
	Body struct {
		Sales []domain.RawSale `json:"sales" minItems:"1" doc:"Dealer sales history rows"`
	}
}

// IngestSalesOutput reports how many sales were stored. Rows that cannot be
// normalized are skipped and described in Rejected.
type IngestSalesOutput struct {
	Body struct {
		Accepted int      `json:"accepted"`
		Rejected []string `json:"rejected"`
	}
}

// IngestSales normalizes and stores historical sales.
func (h *SalesHandler) IngestSales(
	ctx context.Context,
	input *IngestSalesInput,
) (*IngestSalesOutput, error) {
	resp := &IngestSalesOutput{}
	resp.Body.Rejected = []string{}

	for i, raw := range input.Body.Sales {
		if raw.SourceID == "" {
			resp.Body.Rejected = append(resp.Body.Rejected,
				fmt.Sprintf("sale %d: source_id is required", i))
			continue
		}
		sale, err := h.normalizer.NormalizeSale(raw)
		if err != nil {
			resp.Body.Rejected = append(resp.Body.Rejected,
				fmt.Sprintf("sale %d (%s): %v", i, raw.SourceID, err))
			continue
		}
		if err := h.store.UpsertSale(ctx, &sale); err != nil {
			return nil, huma.Error500InternalServerError("ingesting sales failed: " + err.Error())
		}
		resp.Body.Accepted++
	}
	return resp, nil
}

// RegisterSalesRoutes registers sale endpoints with the Huma API.
func RegisterSalesRoutes(api huma.API, h *SalesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "ingest-sales",
		Method:      http.MethodPost,
		Path:        "/api/v1/sales",
		Summary:     "Ingest historical sales",
		Description: "Normalizes dealer sales history and upserts it as the comparable corpus.",
		Tags:        []string{"sales"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.IngestSales)
}
