package events

import "time"

// Типы событий жизненного цикла бронирования
const (
	TypeReservationCreated    = "reservation.created"
	TypeReservationCancelled  = "reservation.cancelled"
	TypeReservationsCompleted = "reservations.completed"
)

// ReservationEvent сообщение, публикуемое в очередь
type ReservationEvent struct {
	Type           string    `json:"type"`
	ReservationID  int64     `json:"reservationId,omitempty"`
	ReservationIDs []int64   `json:"reservationIds,omitempty"`
	UserID         int64     `json:"userId,omitempty"`
	FacilityID     int64     `json:"facilityId,omitempty"`
	FacilityName   string    `json:"facilityName,omitempty"`
	BookingDate    string    `json:"bookingDate,omitempty"`
	TimeSlot       string    `json:"timeSlot,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}
