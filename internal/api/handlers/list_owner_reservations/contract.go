package list_owner_reservations

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/reservations/models"
)

type ReservationService interface {
	ListForOwner(ctx context.Context, identity domain.Identity) ([]*models.ReservationResponse, error)
	AdminListAll(ctx context.Context, identity domain.Identity) ([]*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
