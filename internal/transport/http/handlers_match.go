package httptransport

import (
	"net/http"

	dErrors "bloodlink/pkg/domain-errors"
)

// handleMatch finds, consumes, and records the best donor for a patient.
func (h *Handler) handleMatch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	bloodGroup := query.Get("blood_group")
	location := query.Get("location")
	if bloodGroup == "" || location == "" {
		WriteError(w, dErrors.New(dErrors.CodeMissingField, "blood_group and location parameters required"))
		return
	}

	res, err := h.engine.Match(r.Context(), bloodGroup, location)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"match_found": true,
		"donor":       res.Donor,
		"distance_km": res.DistanceKm,
	})
}
