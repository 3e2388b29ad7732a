package facilities

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

// FacilityRepository интерфейс репозитория площадок
type FacilityRepository interface {
	Create(ctx context.Context, f *domain.Facility) (*domain.Facility, error)
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	ListPublic(ctx context.Context, viewerID int64, limit uint64) ([]*domain.Facility, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Facility, error)
	ListAll(ctx context.Context) ([]*domain.Facility, error)
	Update(ctx context.Context, f *domain.Facility) error
	Delete(ctx context.Context, id int64) error
}

// ReservationCleaner удаление бронирований площадки при каскадном удалении
type ReservationCleaner interface {
	DeleteByFacility(ctx context.Context, facilityID int64) (int64, error)
}

// FavoriteCleaner удаление избранного площадки при каскадном удалении
type FavoriteCleaner interface {
	DeleteByFacility(ctx context.Context, facilityID int64) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
