package list_facilities

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CanchaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/facilities/models"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
)

type listFunc func(ctx context.Context, identity domain.Identity) ([]*models.FacilityResponse, error)

type Handler struct {
	list   listFunc
	route  string
	logger Logger
}

// NewHandler GET /facilities - публичный каталог, для вошедших с отметкой избранного
func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{list: service.ListPublic, route: "GET /facilities", logger: logger}
}

// NewOwnerHandler GET /owner/facilities
func NewOwnerHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{list: service.ListByOwner, route: "GET /owner/facilities", logger: logger}
}

// NewAdminHandler GET /admin/facilities - все площадки, включая без владельца
func NewAdminHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{list: service.AdminListAll, route: "GET /admin/facilities", logger: logger}
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
			h.logger.Error("%s - Failed to list facilities: error=%v", h.route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - count=%d", h.route, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
