package sweep_completions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CanchaBooking/internal/infra/events"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	CompletePast(ctx context.Context, today time.Time) ([]int64, error)
}

// EventPublisher публикация событий жизненного цикла бронирования
type EventPublisher interface {
	Publish(ctx context.Context, event events.ReservationEvent) error
}

// Metrics счётчик завершённых бронирований
type Metrics interface {
	ReservationsCompleted(n int)
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
