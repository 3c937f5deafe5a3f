package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/caroogle/bob/internal/store"
	domain "github.com/caroogle/bob/pkg/types"
)

// OpportunitiesHandler serves the opportunity queue to operators.
type OpportunitiesHandler struct {
	store store.Store
}

// NewOpportunitiesHandler creates a new OpportunitiesHandler.
func NewOpportunitiesHandler(s store.Store) *OpportunitiesHandler {
	return &OpportunitiesHandler{store: s}
}

// ListOpportunitiesInput is the input for listing opportunities.
type ListOpportunitiesInput struct {
	Status      string  `query:"status"        doc:"Filter by operator status"        enum:"new,open,actioned,dismissed,"`
	Tier        string  `query:"tier"          doc:"Filter by confidence tier"        enum:"CODE_RED,HIGH,WATCH,"`
	MatchMode   string  `query:"match_mode"    doc:"Filter by match mode"             enum:"PLATFORM_CLASS,EXACT_MODEL,"`
	Make        string  `query:"make"          doc:"Filter by make (case-insensitive)"`
	Model       string  `query:"model"         doc:"Filter by model (case-insensitive)"`
	MinUnderBuy float64 `query:"min_under_buy" doc:"Minimum under-buy amount"                                      minimum:"0"`
	Limit       int     `query:"limit"         doc:"Number of results (default 50)"                                minimum:"0" maximum:"500"`
	Offset      int     `query:"offset"        doc:"Pagination offset"                                             minimum:"0"`
	OrderBy     string  `query:"order_by"      doc:"Sort field"                       enum:"priority,under_buy,margin,created_at,"`
}

// ListOpportunitiesOutput is the response for listing opportunities.
type ListOpportunitiesOutput struct {
	Body struct {
		Opportunities []domain.Opportunity `json:"opportunities"`
		Total         int                  `json:"total"`
		Limit         int                  `json:"limit"`
		Offset        int                  `json:"offset"`
	}
}

// GetOpportunityInput is the input for getting a single opportunity.
type GetOpportunityInput struct {
	ID string `path:"id" doc:"Opportunity UUID"`
}

// GetOpportunityOutput is the response for a single opportunity.
type GetOpportunityOutput struct {
	Body domain.Opportunity
}

// UpdateOpportunityStatusInput sets the operator status of an opportunity.
type UpdateOpportunityStatusInput struct {
	ID   string `path:"id" doc:"Opportunity UUID"`
	Body struct {
		Status domain.OpportunityStatus `json:"status" enum:"new,open,actioned,dismissed" doc:"New operator status"`
	}
}

// UpdateOpportunityStatusOutput echoes the stored status.
type UpdateOpportunityStatusOutput struct {
	Body StatusResponse
}

// ListOpportunities returns opportunities ordered for triage.
func (h *OpportunitiesHandler) ListOpportunities(
	ctx context.Context,
	input *ListOpportunitiesInput,
) (*ListOpportunitiesOutput, error) {
	q := &store.OpportunityQuery{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}
	if input.Status != "" {
		q.Status = &input.Status
	}
	if input.Tier != "" {
		q.Tier = &input.Tier
	}
	if input.MatchMode != "" {
		q.MatchMode = &input.MatchMode
	}
	if input.Make != "" {
		q.Make = &input.Make
	}
	if input.Model != "" {
		q.Model = &input.Model
	}
	if input.MinUnderBuy > 0 {
		q.MinUnderBuy = &input.MinUnderBuy
	}

	opps, total, err := h.store.ListOpportunities(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("opportunity query failed: " + err.Error())
	}
	if opps == nil {
		opps = []domain.Opportunity{}
	}

	resp := &ListOpportunitiesOutput{}
	resp.Body.Opportunities = opps
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// GetOpportunity returns a single opportunity by ID.
func (h *OpportunitiesHandler) GetOpportunity(
	ctx context.Context,
	input *GetOpportunityInput,
) (*GetOpportunityOutput, error) {
	o, err := h.store.GetOpportunity(ctx, input.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("opportunity not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching opportunity failed: " + err.Error())
	}
	return &GetOpportunityOutput{Body: *o}, nil
}

// UpdateOpportunityStatus records an operator decision. The engine never
// changes status, so any valid status may follow any other.
func (h *OpportunitiesHandler) UpdateOpportunityStatus(
	ctx context.Context,
	input *UpdateOpportunityStatusInput,
) (*UpdateOpportunityStatusOutput, error) {
	status := input.Body.Status
	if !status.Valid() {
		return nil, huma.Error422UnprocessableEntity("invalid status: " + string(status))
	}

	err := h.store.UpdateOpportunityStatus(ctx, input.ID, status)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("opportunity not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("updating opportunity status failed: " + err.Error())
	}

	resp := &UpdateOpportunityStatusOutput{}
	resp.Body.Status = string(status)
	return resp, nil
}

// RegisterOpportunityRoutes registers opportunity endpoints with the Huma API.
func RegisterOpportunityRoutes(api huma.API, h *OpportunitiesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-opportunities",
		Method:      http.MethodGet,
		Path:        "/api/v1/opportunities",
		Summary:     "List opportunities",
		Description: "Returns buy opportunities, highest priority first by default.",
		Tags:        []string{"opportunities"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListOpportunities)

	huma.Register(api, huma.Operation{
		OperationID: "get-opportunity",
		Method:      http.MethodGet,
		Path:        "/api/v1/opportunities/{id}",
		Summary:     "Get an opportunity by ID",
		Tags:        []string{"opportunities"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetOpportunity)

	huma.Register(api, huma.Operation{
		OperationID: "update-opportunity-status",
		Method:      http.MethodPatch,
		Path:        "/api/v1/opportunities/{id}/status",
		Summary:     "Set opportunity status",
		Description: "Moves an opportunity through new, open, actioned or dismissed. " +
			"Status survives later scoring runs.",
		Tags: []string{"opportunities"},
		Errors: []int{
			http.StatusNotFound,
			http.StatusUnprocessableEntity,
			http.StatusInternalServerError,
		},
	}, h.UpdateOpportunityStatus)
}
