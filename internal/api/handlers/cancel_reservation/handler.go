package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CanchaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/reservations"
)

const (
	msgInvalidReservationID = "ID de reserva inválido"
	msgNotFound             = "reserva no encontrada o ya no se puede cancelar"
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

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathID(r, "reservationId")
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	identity := auth.CurrentIdentity(r.Context())

	result, err := h.service.Cancel(r.Context(), identity, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, guard.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, "")

		case errors.Is(err, reservations.ErrReservationNotFound):
			// Чужое, отменённое, завершённое и несуществующее бронирование неразличимы
			h.logger.Warn("PATCH /reservations/{id}/cancel - Not cancellable: reservation_id=%d, user_id=%d",
				reservationID, identity.UserID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled: reservation_id=%d, user_id=%d",
		reservationID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
