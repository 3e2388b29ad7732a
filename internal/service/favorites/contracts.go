package favorites

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

// FavoriteRepository интерфейс репозитория избранного
type FavoriteRepository interface {
	Add(ctx context.Context, userID, facilityID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, facilityID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error)
}

// FacilityRepository интерфейс репозитория площадок
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
