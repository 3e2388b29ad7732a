package facility

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CanchaBooking/pkg/psqlbuilder"
)

var facilityColumns = []string{
	"f.id",
	"f.name",
	"f.price",
	"f.description",
	"f.image_ref",
	"f.address",
	"f.owner_id",
	"f.created_at",
	"f.updated_at",
}

// Repository репозиторий для работы с площадками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает площадку
func (r *Repository) Create(ctx context.Context, f *domain.Facility) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("facilities").
		Columns("name", "price", "description", "image_ref", "address", "owner_id").
		Values(f.Name, f.Price, f.Description, f.ImageRef, f.Address, f.OwnerID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return f, nil
}

// GetByID получает площадку по ID.
// Внутри транзакции строка блокируется (FOR SHARE), чтобы её не удалили до конца операции.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(facilityColumns...).
		From("facilities f").
		Where(squirrel.Eq{"f.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR SHARE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	f, err := scanFacility(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan facility: %v", ErrScanRow, err)
	}

	return f, nil
}

// ListPublic возвращает площадки с владельцем, новые первыми.
// Для viewerID != 0 отмечает избранные; limit = 0 без ограничения.
func (r *Repository) ListPublic(ctx context.Context, viewerID int64, limit uint64) ([]*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append(append([]string{}, facilityColumns...), "fav.id IS NOT NULL AS is_favorite")
	builder := psqlbuilder.Select(columns...).
		From("facilities f").
		LeftJoin("favorites fav ON fav.facility_id = f.id AND fav.user_id = ?", viewerID).
		Where(squirrel.NotEq{"f.owner_id": nil}).
		OrderBy("f.id DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPublic - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPublic - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	facilities := make([]*domain.Facility, 0)
	for rows.Next() {
		f, err := scanFacility(rows, &favoriteDest{})
		if err != nil {
			return nil, fmt.Errorf("%w: ListPublic - scan facility: %v", ErrScanRow, err)
		}
		facilities = append(facilities, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPublic - rows iteration: %v", ErrScanRow, err)
	}

	return facilities, nil
}

// ListByOwner возвращает площадки владельца, новые первыми
func (r *Repository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(facilityColumns...).
		From("facilities f").
		Where(squirrel.Eq{"f.owner_id": ownerID}).
		OrderBy("f.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanFacilities(rows, "ListByOwner", false)
}

// ListAll возвращает все площадки с именем владельца, включая площадки без владельца
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append(append([]string{}, facilityColumns...), "u.name")
	query, args, err := psqlbuilder.Select(columns...).
		From("facilities f").
		LeftJoin("users u ON u.id = f.owner_id").
		OrderBy("f.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanFacilities(rows, "ListAll", true)
}

// Update полностью перезаписывает поля площадки владельца.
// Если площадка не найдена или принадлежит другому владельцу - ErrFacilityNotFound.
func (r *Repository) Update(ctx context.Context, f *domain.Facility) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if f.OwnerID == nil {
		return ErrFacilityNotFound
	}

	query, args, err := psqlbuilder.Update("facilities").
		Set("name", f.Name).
		Set("price", f.Price).
		Set("description", f.Description).
		Set("image_ref", f.ImageRef).
		Set("address", f.Address).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": f.ID, "owner_id": *f.OwnerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Update")
}

// Delete удаляет площадку по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

// DeleteByOwner удаляет все площадки владельца, возвращает количество удалённых
func (r *Repository) DeleteByOwner(ctx context.Context, ownerID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("facilities").
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByOwner - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByOwner - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByOwner - rows affected: %v", ErrExecQuery, err)
	}
	return affected, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// extraDest дополнительная колонка после основных полей площадки
type extraDest interface {
	target() interface{}
	apply(f *domain.Facility)
}

type favoriteDest struct {
	value bool
}

func (d *favoriteDest) target() interface{}      { return &d.value }
func (d *favoriteDest) apply(f *domain.Facility) { f.IsFavorite = d.value }

type ownerNameDest struct {
	value sql.NullString
}

func (d *ownerNameDest) target() interface{} { return &d.value }
func (d *ownerNameDest) apply(f *domain.Facility) {
	if d.value.Valid {
		name := d.value.String
		f.OwnerName = &name
	}
}

func scanFacility(s scanner, extra ...extraDest) (*domain.Facility, error) {
	var f domain.Facility
	var imageRef sql.NullString
	var ownerID sql.NullInt64

	dest := []interface{}{
		&f.ID,
		&f.Name,
		&f.Price,
		&f.Description,
		&imageRef,
		&f.Address,
		&ownerID,
		&f.CreatedAt,
		&f.UpdatedAt,
	}
	for _, e := range extra {
		dest = append(dest, e.target())
	}

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	if imageRef.Valid {
		f.ImageRef = &imageRef.String
	}
	if ownerID.Valid {
		f.OwnerID = &ownerID.Int64
	}
	for _, e := range extra {
		e.apply(&f)
	}

	return &f, nil
}

func scanFacilities(rows *sql.Rows, op string, withOwnerName bool) ([]*domain.Facility, error) {
	facilities := make([]*domain.Facility, 0)
	for rows.Next() {
		var extra []extraDest
		if withOwnerName {
			extra = append(extra, &ownerNameDest{})
		}

		f, err := scanFacility(rows, extra...)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan facility: %v", ErrScanRow, op, err)
		}
		facilities = append(facilities, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}
	return facilities, nil
}

func checkAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrFacilityNotFound
	}
	return nil
}
