package get_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CanchaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
)

const msgUserNotFound = "usuario no encontrado"

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity := auth.CurrentIdentity(r.Context())

	result, err := h.service.Profile(r.Context(), identity)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, "")

		case errors.Is(err, auth.ErrUserNotFound):
			h.logger.Warn("GET /me - User not found: user_id=%d", identity.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /me - Failed to get profile: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
