package dashboards

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

// StatsRepository счётчики пользователя и владельца
type StatsRepository interface {
	User(ctx context.Context, userID int64, today time.Time) (*domain.UserStats, error)
	Owner(ctx context.Context, ownerID int64) (*domain.OwnerStats, error)
}

// ReservationRepository выборки бронирований для панелей
type ReservationRepository interface {
	ListUpcomingByUser(ctx context.Context, userID int64, from time.Time, limit uint64) ([]*domain.Reservation, error)
	ListByFacilityOwner(ctx context.Context, ownerID int64, limit uint64) ([]*domain.Reservation, error)
}

// FacilityRepository рекомендуемые площадки
type FacilityRepository interface {
	ListPublic(ctx context.Context, viewerID int64, limit uint64) ([]*domain.Facility, error)
}

// TimeProvider интерфейс для получения текущего времени в часовом поясе площадок
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
