package admin

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	EmailTakenByOther(ctx context.Context, email string, exceptID int64) (bool, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

// ReservationRepository последние бронирования и каскадное удаление
type ReservationRepository interface {
	ListAll(ctx context.Context, limit uint64) ([]*domain.Reservation, error)
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
	DeleteByFacilityOwner(ctx context.Context, ownerID int64) (int64, error)
}

// FavoriteCleaner каскадное удаление избранного
type FavoriteCleaner interface {
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
	DeleteByFacilityOwner(ctx context.Context, ownerID int64) (int64, error)
}

// FacilityCleaner удаление площадок владельца
type FacilityCleaner interface {
	DeleteByOwner(ctx context.Context, ownerID int64) (int64, error)
}

// StatsRepository агрегаты платформы
type StatsRepository interface {
	Platform(ctx context.Context) (*domain.PlatformStats, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// PasswordHasher хеширование нового пароля
type PasswordHasher interface {
	Hash(password string) (string, error)
}
