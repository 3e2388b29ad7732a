package list_owner_reservations

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CanchaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/reservations/models"
)

type listFunc func(ctx context.Context, identity domain.Identity) ([]*models.ReservationResponse, error)

// Handler список бронирований на площадках владельца; в режиме администратора - все бронирования
type Handler struct {
	list   listFunc
	route  string
	logger Logger
}

// NewHandler GET /owner/reservations
func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{list: service.ListForOwner, route: "GET /owner/reservations", logger: logger}
}

// NewAdminHandler GET /admin/reservations
func NewAdminHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{list: service.AdminListAll, route: "GET /admin/reservations", logger: logger}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity := auth.CurrentIdentity(r.Context())

	result, err := h.list(r.Context(), identity)
	if err != nil {
		switch {
		case errors.Is(err, guard.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, "")

		case errors.Is(err, guard.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: user_id=%d, role=%s", h.route, identity.UserID, identity.Role)
			handlers.RespondForbidden(w, "")

		default:
			h.logger.Error("%s - Failed to get reservations: user_id=%d, error=%v", h.route, identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - user_id=%d, count=%d", h.route, identity.UserID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
