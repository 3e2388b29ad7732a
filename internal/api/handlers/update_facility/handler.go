package update_facility

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CanchaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/facilities"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/facilities/models"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
)

const (
	msgInvalidFacilityID  = "ID de cancha inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgNotFound           = "cancha no encontrada o no te pertenece"
	msgInvalidData        = "datos de cancha inválidos"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/owner/facilities/{facilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := handlers.PathID(r, "facilityId")
	if err != nil {
		h.logger.Warn("PUT /owner/facilities/{id} - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	identity := auth.CurrentIdentity(r.Context())

	var req models.FacilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /owner/facilities/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), identity, facilityID, &req)
	if err != nil {
		switch {
		case errors.Is(err, guard.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, "")

		case errors.Is(err, guard.ErrAccessDenied):
			handlers.RespondForbidden(w, "")

		case errors.Is(err, facilities.ErrFacilityNotFound):
			h.logger.Warn("PUT /owner/facilities/{id} - Not found or foreign: facility_id=%d, owner_id=%d",
				facilityID, identity.UserID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, facilities.ErrInvalidInput):
			h.logger.Warn("PUT /owner/facilities/{id} - Invalid data: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /owner/facilities/{id} - Failed to update facility: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /owner/facilities/{id} - Facility updated: facility_id=%d", facilityID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
