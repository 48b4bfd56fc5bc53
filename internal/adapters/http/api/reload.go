// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// ReloadHandler handles dataset reload requests.
type ReloadHandler struct {
	deps Dependencies
}

// NewReloadHandler creates a new reload handler.
func NewReloadHandler(deps Dependencies) *ReloadHandler {
	return &ReloadHandler{deps: deps}
}

// reloadResponse acknowledges a successful dataset swap.
type reloadResponse struct {
	Status string `json:"status"`
	Rows   int    `json:"rows"`
}

// HandleReload handles POST /dataset/reload requests. The store swaps the
// whole table atomically, so in-flight requests keep their snapshot.
func (h *ReloadHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	const op = "api.dataset_reload"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.ReloadDataset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, reloadResponse{
		Status: "reloaded",
		Rows:   h.deps.DatasetCount(r.Context()),
	})
}
