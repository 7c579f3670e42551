package httptransport

import (
	"net/http"
)

// handleStats returns per-type donor pool statistics, recomputed live.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Stats(r.Context()))
}

// handleHistory returns all completed matches, most recent first.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	matches := h.engine.History(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_matches": len(matches),
		"matches":       matches,
	})
}
