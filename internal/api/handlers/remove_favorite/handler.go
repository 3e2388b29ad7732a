package remove_favorite

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CanchaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
)

const msgInvalidFacilityID = "ID de cancha inválido"

type Handler struct {
	service FavoriteService
	logger  Logger
}

func NewHandler(service FavoriteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/favorites/{facilityId}; отсутствующая пара тоже 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := handlers.PathID(r, "facilityId")
	if err != nil {
		h.logger.Warn("DELETE /favorites/{id} - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	identity := auth.CurrentIdentity(r.Context())

	if err := h.service.Remove(r.Context(), identity, facilityID); err != nil {
		if errors.Is(err, guard.ErrUnauthenticated) {
			handlers.RespondUnauthorized(w, "")
			return
		}
		h.logger.Error("DELETE /favorites/{id} - Failed to remove favorite: user_id=%d, facility_id=%d, error=%v",
			identity.UserID, facilityID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
