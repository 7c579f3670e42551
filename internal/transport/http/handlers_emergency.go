package httptransport

import (
	"encoding/json"
	"net/http"

	"bloodlink/internal/emergency"
	"bloodlink/internal/platform/middleware"
	dErrors "bloodlink/pkg/domain-errors"
)

// handleSubmitEmergency queues an emergency blood request.
func (h *Handler) handleSubmitEmergency(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EmergencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid emergency request",
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

	ticket, position, err := h.engine.SubmitEmergency(ctx, req.urgency(), emergency.Patient{
		BloodGroup: req.Patient.BloodGroup,
		Location:   req.Patient.Location,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":           "Emergency request added to queue",
		"request_id":        ticket.ID,
		"urgency_level":     ticket.Urgency,
		"position_in_queue": position,
	})
}

// handleProcessEmergency consumes the most urgent ticket and reports the
// match outcome. A ticket whose patient cannot be matched is still consumed.
func (h *Handler) handleProcessEmergency(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.engine.ProcessNextEmergency(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	body := map[string]interface{}{
		"request":            outcome.Ticket,
		"urgency_level":      outcome.Ticket.Urgency,
		"remaining_requests": outcome.Remaining,
	}
	if outcome.MatchErr != nil {
		body["message"] = "Emergency request processed but no match found"
		body["match_found"] = false
		body["error"] = string(dErrors.CodeOf(outcome.MatchErr))
	} else {
		body["message"] = "Emergency request processed successfully"
		body["match_found"] = true
		body["donor"] = outcome.Match.Donor
		body["distance_km"] = outcome.Match.DistanceKm
	}
	writeJSON(w, http.StatusOK, body)
}

// handleEmergencyQueue returns a non-destructive view of the waiting queue.
func (h *Handler) handleEmergencyQueue(w http.ResponseWriter, r *http.Request) {
	tickets := h.engine.QueueSnapshot(r.Context())

	queue := make([]map[string]interface{}, len(tickets))
	for i, t := range tickets {
		queue[i] = map[string]interface{}{
			"urgency_level": t.Urgency,
			"request":       t,
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_requests": len(tickets),
		"queue":          queue,
	})
}
