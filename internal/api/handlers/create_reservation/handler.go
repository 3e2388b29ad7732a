package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CanchaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	createReservation "github.com/m04kA/SMC-CanchaBooking/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera AAAA-MM-DD"
	msgPastDate           = "no puedes reservar en una fecha pasada"
	msgSlotTaken          = "ese horario ya está reservado"
	msgFacilityNotFound   = "cancha no encontrada"
	msgInvalidData        = "datos de reserva inválidos"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity := auth.CurrentIdentity(r.Context())
	if identity.IsAnonymous() {
		handlers.RespondUnauthorized(w, "")
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(identity.UserID)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid booking date %q: %v", req.BookingDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: user_id=%d, facility_id=%d, date=%s, slot=%s",
				identity.UserID, req.FacilityID, req.BookingDate, req.TimeSlot)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createReservation.ErrFacilityNotFound):
			h.logger.Warn("POST /reservations - Facility not found: facility_id=%d", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Past date: user_id=%d, date=%s", identity.UserID, req.BookingDate)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid data: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, facility_id=%d, error=%v",
				identity.UserID, req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, user_id=%d, facility_id=%d",
		result.ID, identity.UserID, req.FacilityID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
