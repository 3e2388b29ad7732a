package create_reservation

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	createReservation "github.com/m04kA/SMC-CanchaBooking/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	FacilityID  int64   `json:"facilityId"`
	BookingDate string  `json:"bookingDate"` // "2025-06-01"
	TimeSlot    string  `json:"timeSlot"`    // "18:00"
	Contact     string  `json:"contact"`
	Message     *string `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case; пользователь берётся из сессии
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, strings.TrimSpace(r.BookingDate))
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:     userID,
		FacilityID: r.FacilityID,
		Date:       bookingDate,
		TimeSlot:   r.TimeSlot,
		Contact:    r.Contact,
		Message:    r.Message,
	}, nil
}
