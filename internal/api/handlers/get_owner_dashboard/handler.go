package get_owner_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CanchaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/owner/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity := auth.CurrentIdentity(r.Context())

	result, err := h.service.OwnerDashboard(r.Context(), identity)
	if err != nil {
		switch {
		case errors.Is(err, guard.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, "")

		case errors.Is(err, guard.ErrAccessDenied):
			h.logger.Warn("GET /owner/dashboard - Access denied: user_id=%d, role=%s", identity.UserID, identity.Role)
			handlers.RespondForbidden(w, "")

		default:
			h.logger.Error("GET /owner/dashboard - Failed to build dashboard: owner_id=%d, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
