package run_sweep

import (
	"net/http"

	"github.com/m04kA/SMC-CanchaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
)

type Handler struct {
	useCase SweepUseCase
	logger  Logger
}

func NewHandler(useCase SweepUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/sweep - ручной запуск перевода прошедших бронирований в completed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity := auth.CurrentIdentity(r.Context())
	if err := guard.RequireAdmin(identity); err != nil {
		if identity.IsAnonymous() {
			handlers.RespondUnauthorized(w, "")
			return
		}
		handlers.RespondForbidden(w, "")
		return
	}

	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/sweep - Sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/sweep - completed=%d, by admin_id=%d", result.Completed, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
