package domain

import "time"

// ReservationStatus is the persisted lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// DisplayStatus is the read-time label shown to users
type DisplayStatus string

const (
	DisplayCancelled DisplayStatus = "Cancelada"
	DisplayCompleted DisplayStatus = "Completada"
	DisplayToday     DisplayStatus = "Hoy"
	DisplayUpcoming  DisplayStatus = "Próxima"
)

// Reservation represents a booking of a facility time slot
type Reservation struct {
	ID           int64
	UserID       int64
	FacilityID   int64
	FacilityName string // snapshot taken at booking time
	BookingDate  time.Time
	TimeSlot     string
	Contact      string
	Message      *string
	Status       ReservationStatus
	CancelledAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Filled by joins, not persisted
	FacilityPrice   *string
	FacilityImage   *string
	FacilityAddress *string
	UserName        *string
	UserEmail       *string
}

// IsCancelled returns true if the reservation was cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation is still pending and its date has not passed
func (r *Reservation) CanBeCancelled(today time.Time) bool {
	return r.Status == StatusPending && !DateOnly(r.BookingDate).Before(DateOnly(today))
}

// DisplayStatus derives the label from the booking date relative to today.
// Cancelled reservations are always shown as cancelled.
func (r *Reservation) DisplayStatus(today time.Time) DisplayStatus {
	if r.IsCancelled() {
		return DisplayCancelled
	}

	date := DateOnly(r.BookingDate)
	day := DateOnly(today)
	switch {
	case date.Before(day):
		return DisplayCompleted
	case date.Equal(day):
		return DisplayToday
	default:
		return DisplayUpcoming
	}
}

// DateOnly truncates t to midnight UTC of its calendar day
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
