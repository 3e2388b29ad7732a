package list_favorites

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/favorites/models"
)

type FavoriteService interface {
	ListForUser(ctx context.Context, identity domain.Identity) ([]*models.FavoriteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
