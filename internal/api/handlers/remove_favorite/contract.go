package remove_favorite

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

type FavoriteService interface {
	Remove(ctx context.Context, identity domain.Identity, facilityID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
