package delete_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CanchaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/admin"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
)

const (
	msgInvalidUserID = "ID de usuario inválido"
	msgSelfDelete    = "no puedes eliminar tu propia cuenta"
	msgUserNotFound  = "usuario no encontrado"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathID(r, "userId")
	if err != nil {
		h.logger.Warn("DELETE /admin/users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	identity := auth.CurrentIdentity(r.Context())

	if err := h.service.DeleteUser(r.Context(), identity, userID); err != nil {
		switch {
		case errors.Is(err, guard.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, "")

		case errors.Is(err, guard.ErrAccessDenied):
			handlers.RespondForbidden(w, "")

		case errors.Is(err, admin.ErrSelfDelete):
			handlers.RespondBadRequest(w, msgSelfDelete)

		case errors.Is(err, admin.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("DELETE /admin/users/{id} - Failed to delete user: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/users/{id} - User deleted: user_id=%d, by admin_id=%d", userID, identity.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
