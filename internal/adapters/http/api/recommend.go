// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	service "github.com/carpilot/carpilot/internal/app"
	"github.com/carpilot/carpilot/internal/domain/types"
)

// RecommendHandler handles recommendation requests.
type RecommendHandler struct {
	deps     Dependencies
	validate *validator.Validate
}

// NewRecommendHandler creates a new recommend handler.
func NewRecommendHandler(deps Dependencies) *RecommendHandler {
	return &RecommendHandler{
		deps:     deps,
		validate: validator.New(),
	}
}

// recommendRequest mirrors the JSON body of POST /recommend. A missing
// top_k falls back to the service default.
type recommendRequest struct {
	Query string `json:"query" validate:"required"`
	TopK  int    `json:"top_k" validate:"omitempty,gte=1"`
}

// recommendResponse mirrors the JSON body returned to the caller.
type recommendResponse struct {
	Query          string             `json:"query"`
	Results        []types.ResultItem `json:"results"`
	Suggestion     *types.Suggestion  `json:"carpilot_suggestion"`
	TotalAvailable int                `json:"total_available"`
}

// HandleRecommend handles POST /recommend requests.
func (h *RecommendHandler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	const op = "api.recommend"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	rec, err := h.deps.Recommend(r.Context(), req.Query, req.TopK)
	if err != nil {
		if errors.Is(err, service.ErrMissingQuery) {
			writeError(w, http.StatusBadRequest, "missing_query", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	writeJSON(w, http.StatusOK, recommendResponse{
		Query:          req.Query,
		Results:        rec.Results,
		Suggestion:     rec.Suggestion,
		TotalAvailable: len(rec.Results),
	})
}
