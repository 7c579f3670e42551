package httptransport

import (
	"encoding/json"
	"net/http"

	"bloodlink/internal/engine"
	"bloodlink/internal/platform/middleware"
	dErrors "bloodlink/pkg/domain-errors"
)

// handleRegisterDonor adds a new donor to the registry.
func (h *Handler) handleRegisterDonor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterDonorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid register donor request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := req.validate(); err != nil {
		WriteError(w, err)
		return
	}

	d, err := h.engine.RegisterDonor(ctx, engine.RegisterInput{
		Name:         req.Name,
		BloodGroup:   req.BloodGroup,
		Location:     req.Location,
		LastDonation: req.LastDonationDate,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Donor added successfully",
		"donor":   d,
	})
}

// handleListDonors returns every registered donor.
func (h *Handler) handleListDonors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Donors(r.Context()))
}

// handleSearchDonors returns donors of the requested blood group.
func (h *Handler) handleSearchDonors(w http.ResponseWriter, r *http.Request) {
	bloodGroup := r.URL.Query().Get("blood_group")
	if bloodGroup == "" {
		WriteError(w, dErrors.New(dErrors.CodeMissingField, "blood_group parameter required"))
		return
	}

	donors, err := h.engine.DonorsByType(r.Context(), bloodGroup)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, donors)
}
