package create_facility

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
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidData        = "datos de cancha inválidos: nombre, precio, dirección e imagen (png, jpg, jpeg, gif, webp)"
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

// Handle POST /api/v1/owner/facilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity := auth.CurrentIdentity(r.Context())

	var req models.FacilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /owner/facilities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), identity, &req)
	if err != nil {
		switch {
		case errors.Is(err, guard.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, "")

		case errors.Is(err, guard.ErrAccessDenied):
			h.logger.Warn("POST /owner/facilities - Access denied: user_id=%d, role=%s", identity.UserID, identity.Role)
			handlers.RespondForbidden(w, "")

		case errors.Is(err, facilities.ErrInvalidInput):
			h.logger.Warn("POST /owner/facilities - Invalid data: owner_id=%d, error=%v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /owner/facilities - Failed to create facility: owner_id=%d, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /owner/facilities - Facility created: facility_id=%d, owner_id=%d", result.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
