package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CanchaBooking/pkg/psqlbuilder"
)

// Repository агрегированные счётчики для дашбордов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория статистики
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Platform счётчики по всей платформе (один запрос)
func (r *Repository) Platform(ctx context.Context) (*domain.PlatformStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("(SELECT COUNT(*) FROM users)").
		Column(squirrel.Expr("(SELECT COUNT(*) FROM users WHERE role = ?)", domain.RoleOwner)).
		Column("(SELECT COUNT(*) FROM facilities)").
		Column("(SELECT COUNT(*) FROM reservations)").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Platform - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.PlatformStats
	if err := executor.QueryRowContext(ctx, query, args...).Scan(
		&s.TotalUsers,
		&s.TotalOwners,
		&s.TotalFacilities,
		&s.TotalReservations,
	); err != nil {
		return nil, fmt.Errorf("%w: Platform - scan: %v", ErrScanRow, err)
	}

	return &s, nil
}

// User счётчики пользователя: все бронирования, предстоящие с today, избранное
func (r *Repository) User(ctx context.Context, userID int64, today time.Time) (*domain.UserStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ? AND booking_date >= ?)",
			domain.StatusPending, domain.DateOnly(today))).
		Column(squirrel.Expr("(SELECT COUNT(*) FROM favorites WHERE user_id = ?)", userID)).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: User - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.UserStats
	if err := executor.QueryRowContext(ctx, query, args...).Scan(
		&s.TotalReservations,
		&s.UpcomingReservations,
		&s.Favorites,
	); err != nil {
		return nil, fmt.Errorf("%w: User - scan: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Owner счётчики владельца: площадки и бронирования на них
func (r *Repository) Owner(ctx context.Context, ownerID int64) (*domain.OwnerStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(DISTINCT f.id)",
		"COUNT(r.id)",
	).
		From("facilities f").
		LeftJoin("reservations r ON r.facility_id = f.id").
		Where(squirrel.Eq{"f.owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Owner - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.OwnerStats
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.Facilities, &s.Reservations); err != nil {
		return nil, fmt.Errorf("%w: Owner - scan: %v", ErrScanRow, err)
	}

	return &s, nil
}
