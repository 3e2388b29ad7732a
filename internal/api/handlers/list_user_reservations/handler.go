package list_user_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CanchaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity := auth.CurrentIdentity(r.Context())

	result, err := h.service.ListForUser(r.Context(), identity)
	if err != nil {
		if errors.Is(err, guard.ErrUnauthenticated) {
			handlers.RespondUnauthorized(w, "")
			return
		}
		h.logger.Error("GET /reservations - Failed to get reservations: user_id=%d, error=%v", identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - user_id=%d, count=%d", identity.UserID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
