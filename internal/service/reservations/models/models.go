package models

import (
	"time"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"userId"`
	FacilityID    int64      `json:"facilityId"`
	FacilityName  string     `json:"facilityName"` // Снимок названия на момент бронирования
	BookingDate   string     `json:"bookingDate"`  // "2025-06-01"
	TimeSlot      string     `json:"timeSlot"`
	Contact       string     `json:"contact"`
	Message       *string    `json:"message,omitempty"`
	Status        string     `json:"status"`        // Хранимый статус: pending, completed, cancelled
	DisplayStatus string     `json:"displayStatus"` // Метка относительно сегодняшнего дня
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`

	// Данные из связанных таблиц
	FacilityPrice   *string `json:"facilityPrice,omitempty"`
	FacilityImage   *string `json:"facilityImage,omitempty"`
	FacilityAddress *string `json:"facilityAddress,omitempty"`
	UserName        *string `json:"userName,omitempty"`
	UserEmail       *string `json:"userEmail,omitempty"`
}

// FromDomainReservation конвертирует domain.Reservation в ReservationResponse
func FromDomainReservation(r *domain.Reservation, today time.Time) *ReservationResponse {
	if r == nil {
		return nil
	}
	return &ReservationResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		FacilityID:      r.FacilityID,
		FacilityName:    r.FacilityName,
		BookingDate:     r.BookingDate.Format(domain.DateFormat),
		TimeSlot:        r.TimeSlot,
		Contact:         r.Contact,
		Message:         r.Message,
		Status:          string(r.Status),
		DisplayStatus:   string(r.DisplayStatus(today)),
		CancelledAt:     r.CancelledAt,
		CreatedAt:       r.CreatedAt,
		FacilityPrice:   r.FacilityPrice,
		FacilityImage:   r.FacilityImage,
		FacilityAddress: r.FacilityAddress,
		UserName:        r.UserName,
		UserEmail:       r.UserEmail,
	}
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(list []*domain.Reservation, today time.Time) []*ReservationResponse {
	result := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromDomainReservation(r, today))
	}
	return result
}
