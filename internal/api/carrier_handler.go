package api

import (
	"net/http"

	"github.com/colis-app/colis-api/internal/api/shared"
	"github.com/colis-app/colis-api/internal/service"
)

// CarrierHandler serves /users/{id}/carrier.
type CarrierHandler struct {
	carrierService service.CarrierService
}

// NewCarrierHandler creates a new CarrierHandler with the given dependencies.
func NewCarrierHandler(carrierService service.CarrierService) *CarrierHandler {
	return &CarrierHandler{carrierService: carrierService}
}

// Get returns the carrier profile of the user, or 404 when it has none.
func (h *CarrierHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	carrier, err := h.carrierService.GetCarrier(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newCarrierResponse(carrier))
}

// Update merges the request body onto the carrier profile.
func (h *CarrierHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	var req UpdateCarrierRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	carrier, err := h.carrierService.UpdateCarrier(r.Context(), userID, req.ToPatch())
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newCarrierResponse(carrier))
}

// Delete removes the carrier profile.
func (h *CarrierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	if err := h.carrierService.DeleteCarrier(r.Context(), userID); err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondNoContent(w)
}
