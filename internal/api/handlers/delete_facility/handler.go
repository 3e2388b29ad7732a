package delete_facility

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CanchaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/facilities"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
)

const (
	msgInvalidFacilityID = "ID de cancha inválido"
	msgNotFound          = "cancha no encontrada"
)

type deleteFunc func(ctx context.Context, identity domain.Identity, id int64) error

// Handler удаление площадки вместе с её бронированиями и избранным
type Handler struct {
	remove deleteFunc
	route  string
	logger Logger
}

// NewHandler DELETE /owner/facilities/{facilityId} - только своя площадка
func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{remove: service.Delete, route: "DELETE /owner/facilities/{id}", logger: logger}
}

// NewAdminHandler DELETE /admin/facilities/{facilityId}
func NewAdminHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{remove: service.AdminDelete, route: "DELETE /admin/facilities/{id}", logger: logger}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := handlers.PathID(r, "facilityId")
	if err != nil {
		h.logger.Warn("%s - Invalid facility ID: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	identity := auth.CurrentIdentity(r.Context())

	if err := h.remove(r.Context(), identity, facilityID); err != nil {
		switch {
		case errors.Is(err, guard.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, "")

		case errors.Is(err, guard.ErrAccessDenied):
			handlers.RespondForbidden(w, "")

		case errors.Is(err, facilities.ErrFacilityNotFound):
			h.logger.Warn("%s - Not found: facility_id=%d, user_id=%d", h.route, facilityID, identity.UserID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("%s - Failed to delete facility: facility_id=%d, error=%v", h.route, facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Facility deleted: facility_id=%d, user_id=%d", h.route, facilityID, identity.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
