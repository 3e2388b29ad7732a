package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/events"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Cancel(ctx context.Context, id, userID int64, today time.Time) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error)
	ListByFacilityOwner(ctx context.Context, ownerID int64, limit uint64) ([]*domain.Reservation, error)
	ListAll(ctx context.Context, limit uint64) ([]*domain.Reservation, error)
}

// EventPublisher публикация событий жизненного цикла бронирования
type EventPublisher interface {
	Publish(ctx context.Context, event events.ReservationEvent) error
}

// Metrics счётчик отмен
type Metrics interface {
	ReservationCancelled()
}

// TimeProvider интерфейс для получения текущего времени в часовом поясе площадок
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
