package update_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CanchaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/admin"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/admin/models"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
)

const (
	msgInvalidUserID      = "ID de usuario inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidData        = "datos de usuario inválidos"
	msgEmailTaken         = "el correo ya está registrado por otro usuario"
	msgUserNotFound       = "usuario no encontrado"
	msgSelfDemote         = "no puedes quitarte el rol de administrador"
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

// Handle PUT /api/v1/admin/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathID(r, "userId")
	if err != nil {
		h.logger.Warn("PUT /admin/users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	identity := auth.CurrentIdentity(r.Context())

	var req models.UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/users/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateUser(r.Context(), identity, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, guard.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, "")

		case errors.Is(err, guard.ErrAccessDenied):
			handlers.RespondForbidden(w, "")

		case errors.Is(err, admin.ErrInvalidInput):
			h.logger.Warn("PUT /admin/users/{id} - Invalid data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, admin.ErrSelfDemote):
			h.logger.Warn("PUT /admin/users/{id} - Self demotion rejected: admin_id=%d", identity.UserID)
			handlers.RespondBadRequest(w, msgSelfDemote)

		case errors.Is(err, admin.ErrEmailTaken):
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, admin.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("PUT /admin/users/{id} - Failed to update user: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/users/{id} - User updated: user_id=%d, role=%s, by admin_id=%d",
		userID, result.Role, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
