package models

import (
	facilityModels "github.com/m04kA/SMC-CanchaBooking/internal/service/facilities/models"
	reservationModels "github.com/m04kA/SMC-CanchaBooking/internal/service/reservations/models"
)

// UserDashboardResponse панель пользователя
type UserDashboardResponse struct {
	TotalReservations    int64                                    `json:"totalReservations"`
	UpcomingReservations int64                                    `json:"upcomingReservations"`
	Favorites            int64                                    `json:"favorites"`
	Upcoming             []*reservationModels.ReservationResponse `json:"upcoming"`
	Recommended          []*facilityModels.FacilityResponse       `json:"recommended"`
}

// OwnerDashboardResponse панель владельца
type OwnerDashboardResponse struct {
	Facilities         int64                                    `json:"facilities"`
	Reservations       int64                                    `json:"reservations"`
	RecentReservations []*reservationModels.ReservationResponse `json:"recentReservations"`
}
