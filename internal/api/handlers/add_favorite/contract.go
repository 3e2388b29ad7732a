package add_favorite

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/favorites/models"
)

type FavoriteService interface {
	Add(ctx context.Context, identity domain.Identity, facilityID int64) (*models.FavoriteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
