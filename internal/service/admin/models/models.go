package models

import (
	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	reservationModels "github.com/m04kA/SMC-CanchaBooking/internal/service/reservations/models"
)

// UpdateUserRequest правка пользователя администратором
type UpdateUserRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Age         int     `json:"age"`
	Address     *string `json:"address,omitempty"`
	Role        string  `json:"role"`
	NewPassword string  `json:"newPassword,omitempty"` // пусто - пароль не меняется
}

// StatsResponse счётчики платформы
type StatsResponse struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalOwners       int64 `json:"totalOwners"`
	TotalFacilities   int64 `json:"totalFacilities"`
	TotalReservations int64 `json:"totalReservations"`
}

// DashboardResponse панель администратора
type DashboardResponse struct {
	Stats              *StatsResponse                           `json:"stats"`
	RecentReservations []*reservationModels.ReservationResponse `json:"recentReservations"`
}

// FromDomainStats конвертирует domain.PlatformStats
func FromDomainStats(s *domain.PlatformStats) *StatsResponse {
	if s == nil {
		return nil
	}
	return &StatsResponse{
		TotalUsers:        s.TotalUsers,
		TotalOwners:       s.TotalOwners,
		TotalFacilities:   s.TotalFacilities,
		TotalReservations: s.TotalReservations,
	}
}
