package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/caroogle/bob/pkg/ladder"
)

// LadderHandler exposes the trim ladders.
type LadderHandler struct {
	ladders *ladder.Set
}

// NewLadderHandler creates a new LadderHandler.
func NewLadderHandler(s *ladder.Set) *LadderHandler {
	return &LadderHandler{ladders: s}
}

// LadderSummary is one platform's trims from lowest to highest.
type LadderSummary struct {
	Platform string   `json:"platform" example:"TOYOTA:HILUX"`
	Trims    []string `json:"trims"`
}

// ListLaddersOutput lists every ladder.
type ListLaddersOutput struct {
	Body []LadderSummary
}

// CheckTrimInput names the platform and the two trims to compare.
type CheckTrimInput struct {
	Platform    string `path:"platform"     doc:"Platform class, MAKE:MODEL" example:"TOYOTA:HILUX"`
	ListingTrim string `query:"listing_trim" doc:"Trim of the listing"        required:"true"`
	SaleTrim    string `query:"sale_trim"    doc:"Trim of the historical sale" required:"true"`
}

// CheckTrimOutput is the ladder verdict.
type CheckTrimOutput struct {
	Body struct {
		Platform    string         `json:"platform"`
		ListingTrim string         `json:"listing_trim"`
		SaleTrim    string         `json:"sale_trim"`
		Verdict     ladder.Verdict `json:"verdict"      doc:"EXACT, UPGRADE or empty when not comparable"`
		Allowed     bool           `json:"allowed"`
		HasLadder   bool           `json:"has_ladder"`
	}
}

// ListLadders returns every platform ladder.
func (h *LadderHandler) ListLadders(_ context.Context, _ *struct{}) (*ListLaddersOutput, error) {
	out := []LadderSummary{}
	if h.ladders == nil {
		return &ListLaddersOutput{Body: out}, nil
	}
	for _, p := range h.ladders.Platforms() {
		out = append(out, LadderSummary{Platform: p, Trims: h.ladders.Trims(p)})
	}
	return &ListLaddersOutput{Body: out}, nil
}

// CheckTrim reports whether a listing trim may be compared with a sale trim.
func (h *LadderHandler) CheckTrim(_ context.Context, input *CheckTrimInput) (*CheckTrimOutput, error) {
	v := h.ladders.TrimAllowed(input.Platform, input.ListingTrim, input.SaleTrim)

	resp := &CheckTrimOutput{}
	resp.Body.Platform = strings.ToUpper(input.Platform)
	resp.Body.ListingTrim = input.ListingTrim
	resp.Body.SaleTrim = input.SaleTrim
	resp.Body.Verdict = v
	resp.Body.Allowed = v.Allowed()
	resp.Body.HasLadder = h.ladders != nil && h.ladders.Has(input.Platform)
	return resp, nil
}

// RegisterLadderRoutes registers ladder endpoints with the Huma API.
func RegisterLadderRoutes(api huma.API, h *LadderHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-ladders",
		Method:      http.MethodGet,
		Path:        "/api/v1/ladders",
		Summary:     "List trim ladders",
		Tags:        []string{"matching"},
	}, h.ListLadders)

	huma.Register(api, huma.Operation{
		OperationID: "check-trim",
		Method:      http.MethodGet,
		Path:        "/api/v1/ladders/{platform}/check",
		Summary:     "Check a trim pair",
		Description: "Returns EXACT for equal trims, UPGRADE when the listing sits one rung " +
			"above the sale on the platform's ladder, and an empty verdict otherwise.",
		Tags: []string{"matching"},
	}, h.CheckTrim)
}
