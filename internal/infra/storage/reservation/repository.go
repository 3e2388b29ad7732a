package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CanchaBooking/pkg/pgerrors"
	"github.com/m04kA/SMC-CanchaBooking/pkg/psqlbuilder"
)

const activeSlotIndex = "uq_reservations_active_slot"

var reservationColumns = []string{
	"r.id",
	"r.user_id",
	"r.facility_id",
	"r.facility_name",
	"r.booking_date",
	"r.time_slot",
	"r.contact",
	"r.message",
	"r.status",
	"r.cancelled_at",
	"r.created_at",
	"r.updated_at",
}

// Колонки из связанных таблиц; площадка может быть уже удалена
var joinedColumns = []string{
	"f.price",
	"f.image_ref",
	"f.address",
	"u.name",
	"u.email",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование в статусе pending.
// Нарушение уникального индекса активных слотов возвращает ErrSlotTaken:
// индекс - окончательная защита от двойного бронирования при гонке.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if res.Status == "" {
		res.Status = domain.StatusPending
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"facility_id",
			"facility_name",
			"booking_date",
			"time_slot",
			"contact",
			"message",
			"status",
		).
		Values(
			res.UserID,
			res.FacilityID,
			res.FacilityName,
			res.BookingDate,
			res.TimeSlot,
			res.Contact,
			res.Message,
			res.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: constraint %s", ErrSlotTaken, constraintOr(err, activeSlotIndex))
		}
		// Под SERIALIZABLE параллельная вставка того же слота приходит как 40001
		if pgerrors.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: serialization failure", ErrSlotTaken)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return res, nil
}

// IsSlotTaken проверяет, есть ли неотменённое бронирование на слот.
// Внутри транзакции найденные строки блокируются (FOR UPDATE).
func (r *Repository) IsSlotTaken(ctx context.Context, facilityID int64, date time.Time, timeSlot string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id").
		From("reservations").
		Where(squirrel.Eq{
			"facility_id":  facilityID,
			"booking_date": domain.DateOnly(date),
			"time_slot":    timeSlot,
		}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotTaken - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotTaken - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	taken := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%w: IsSlotTaken - rows iteration: %v", ErrScanRow, err)
	}
	return taken, nil
}

// Cancel переводит бронирование пользователя в cancelled одним условным UPDATE.
// Условие: принадлежит userID, статус pending и дата не раньше today.
// Если ни одна строка не подошла - ErrReservationNotFound.
func (r *Repository) Cancel(ctx context.Context, id, userID int64, today time.Time) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":      id,
			"user_id": userID,
			"status":  domain.StatusPending,
		}).
		Where(squirrel.GtOrEq{"booking_date": domain.DateOnly(today)}).
		Suffix("RETURNING id, user_id, facility_id, facility_name, booking_date, time_slot, status, cancelled_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var cancelledAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.UserID,
		&res.FacilityID,
		&res.FacilityName,
		&res.BookingDate,
		&res.TimeSlot,
		&res.Status,
		&cancelledAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	if cancelledAt.Valid {
		res.CancelledAt = &cancelledAt.Time
	}
	return &res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := baseSelect().
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}
	return res, nil
}

// ListByUser все бронирования пользователя, новые первыми
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	return r.list(ctx, "ListByUser", baseSelect().
		Where(squirrel.Eq{"r.user_id": userID}).
		OrderBy("r.booking_date DESC", "r.time_slot DESC"))
}

// ListUpcomingByUser ближайшие активные бронирования пользователя начиная с from
func (r *Repository) ListUpcomingByUser(ctx context.Context, userID int64, from time.Time, limit uint64) ([]*domain.Reservation, error) {
	return r.list(ctx, "ListUpcomingByUser", baseSelect().
		Where(squirrel.Eq{"r.user_id": userID, "r.status": domain.StatusPending}).
		Where(squirrel.GtOrEq{"r.booking_date": domain.DateOnly(from)}).
		OrderBy("r.booking_date ASC", "r.time_slot ASC").
		Limit(limit))
}

// ListByFacilityOwner бронирования площадок владельца, новые первыми; limit = 0 без ограничения
func (r *Repository) ListByFacilityOwner(ctx context.Context, ownerID int64, limit uint64) ([]*domain.Reservation, error) {
	builder := baseSelect().
		Where(squirrel.Eq{"f.owner_id": ownerID}).
		OrderBy("r.booking_date DESC", "r.time_slot DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}
	return r.list(ctx, "ListByFacilityOwner", builder)
}

// ListAll все бронирования, новые первыми; limit = 0 без ограничения
func (r *Repository) ListAll(ctx context.Context, limit uint64) ([]*domain.Reservation, error) {
	builder := baseSelect().
		OrderBy("r.booking_date DESC", "r.time_slot DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}
	return r.list(ctx, "ListAll", builder)
}

// OccupiedSlots занятые слоты площадки на дату среди неотменённых бронирований
func (r *Repository) OccupiedSlots(ctx context.Context, facilityID int64, date time.Time) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("time_slot").
		From("reservations").
		Where(squirrel.Eq{"facility_id": facilityID, "booking_date": domain.DateOnly(date)}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("time_slot ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]string, 0)
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: OccupiedSlots - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: OccupiedSlots - rows iteration: %v", ErrScanRow, err)
	}
	return slots, nil
}

// CompletePast переводит все pending с датой строго раньше today в completed.
// Отменённые не затрагиваются; повторный вызов ничего не меняет.
func (r *Repository) CompletePast(ctx context.Context, today time.Time) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.Lt{"booking_date": domain.DateOnly(today)}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CompletePast - build update query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CompletePast - execute update: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: CompletePast - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CompletePast - rows iteration: %v", ErrScanRow, err)
	}
	return ids, nil
}

// DeleteByFacility удаляет бронирования площадки
func (r *Repository) DeleteByFacility(ctx context.Context, facilityID int64) (int64, error) {
	return r.delete(ctx, "DeleteByFacility", squirrel.Eq{"facility_id": facilityID})
}

// DeleteByUser удаляет бронирования пользователя
func (r *Repository) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	return r.delete(ctx, "DeleteByUser", squirrel.Eq{"user_id": userID})
}

// DeleteByFacilityOwner удаляет бронирования всех площадок владельца
func (r *Repository) DeleteByFacilityOwner(ctx context.Context, ownerID int64) (int64, error) {
	return r.delete(ctx, "DeleteByFacilityOwner",
		squirrel.Expr("facility_id IN (SELECT id FROM facilities WHERE owner_id = ?)", ownerID))
}

func (r *Repository) delete(ctx context.Context, op string, pred squirrel.Sqlizer) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").Where(pred).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build delete query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute delete: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	return affected, nil
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}
	return reservations, nil
}

func baseSelect() squirrel.SelectBuilder {
	columns := make([]string, 0, len(reservationColumns)+len(joinedColumns))
	columns = append(columns, reservationColumns...)
	columns = append(columns, joinedColumns...)

	return psqlbuilder.Select(columns...).
		From("reservations r").
		LeftJoin("facilities f ON f.id = r.facility_id").
		Join("users u ON u.id = r.user_id")
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(s scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var (
		message, price, image, address sql.NullString
		userName, userEmail            sql.NullString
		cancelledAt                    sql.NullTime
		status                         string
	)

	if err := s.Scan(
		&res.ID,
		&res.UserID,
		&res.FacilityID,
		&res.FacilityName,
		&res.BookingDate,
		&res.TimeSlot,
		&res.Contact,
		&message,
		&status,
		&cancelledAt,
		&res.CreatedAt,
		&res.UpdatedAt,
		&price,
		&image,
		&address,
		&userName,
		&userEmail,
	); err != nil {
		return nil, err
	}

	res.Status = domain.ReservationStatus(status)
	res.Message = nullString(message)
	res.FacilityPrice = nullString(price)
	res.FacilityImage = nullString(image)
	res.FacilityAddress = nullString(address)
	res.UserName = nullString(userName)
	res.UserEmail = nullString(userEmail)
	if cancelledAt.Valid {
		res.CancelledAt = &cancelledAt.Time
	}

	return &res, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func constraintOr(err error, fallback string) string {
	if c := pgerrors.Constraint(err); c != "" {
		return c
	}
	return fallback
}
