package add_favorite

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CanchaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/favorites"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
)

const (
	msgInvalidFacilityID = "ID de cancha inválido"
	msgFacilityNotFound  = "cancha no encontrada"
	msgAlreadyFavorite   = "la cancha ya está en tus favoritos"
)

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

// Handle POST /api/v1/favorites/{facilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := handlers.PathID(r, "facilityId")
	if err != nil {
		h.logger.Warn("POST /favorites/{id} - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	identity := auth.CurrentIdentity(r.Context())

	result, err := h.service.Add(r.Context(), identity, facilityID)
	if err != nil {
		switch {
		case errors.Is(err, guard.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, "")

		case errors.Is(err, favorites.ErrFacilityNotFound):
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, favorites.ErrAlreadyFavorite):
			handlers.RespondConflict(w, msgAlreadyFavorite)

		default:
			h.logger.Error("POST /favorites/{id} - Failed to add favorite: user_id=%d, facility_id=%d, error=%v",
				identity.UserID, facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /favorites/{id} - Favorite added: user_id=%d, facility_id=%d", identity.UserID, facilityID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
