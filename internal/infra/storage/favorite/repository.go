package favorite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CanchaBooking/pkg/pgerrors"
	"github.com/m04kA/SMC-CanchaBooking/pkg/psqlbuilder"
)

// Repository репозиторий избранных площадок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория избранного
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Add добавляет площадку в избранное; повтор пары возвращает ErrAlreadyFavorite,
// несуществующая площадка - ErrFacilityNotFound
func (r *Repository) Add(ctx context.Context, userID, facilityID int64) (*domain.Favorite, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("favorites").
		Columns("user_id", "facility_id").
		Values(userID, facilityID).
		Suffix("RETURNING id, added_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	fav := &domain.Favorite{UserID: userID, FacilityID: facilityID}
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&fav.ID, &fav.AddedAt); err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, ErrAlreadyFavorite
		}
		if pgerrors.IsForeignKeyViolation(err) {
			return nil, ErrFacilityNotFound
		}
		return nil, fmt.Errorf("%w: Add - execute insert: %v", ErrExecQuery, err)
	}

	return fav, nil
}

// Exists проверяет наличие пары пользователь/площадка
func (r *Repository) Exists(ctx context.Context, userID, facilityID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("favorites").
		Where(squirrel.Eq{"user_id": userID, "facility_id": facilityID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: Exists - scan: %v", ErrScanRow, err)
	}
	return exists, nil
}

// Remove удаляет площадку из избранного; отсутствие пары не ошибка
func (r *Repository) Remove(ctx context.Context, userID, facilityID int64) (bool, error) {
	affected, err := r.delete(ctx, "Remove", squirrel.Eq{"user_id": userID, "facility_id": facilityID})
	return affected > 0, err
}

// ListByUser избранное пользователя с данными площадок, последние добавленные первыми
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"fav.id",
		"fav.user_id",
		"fav.facility_id",
		"fav.added_at",
		"f.name",
		"f.price",
		"f.description",
		"f.image_ref",
		"f.address",
		"f.owner_id",
	).
		From("favorites fav").
		Join("facilities f ON f.id = fav.facility_id").
		Where(squirrel.Eq{"fav.user_id": userID}).
		OrderBy("fav.added_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	favorites := make([]*domain.Favorite, 0)
	for rows.Next() {
		var fav domain.Favorite
		var f domain.Facility
		var imageRef sql.NullString
		var ownerID sql.NullInt64

		if err := rows.Scan(
			&fav.ID,
			&fav.UserID,
			&fav.FacilityID,
			&fav.AddedAt,
			&f.Name,
			&f.Price,
			&f.Description,
			&imageRef,
			&f.Address,
			&ownerID,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan favorite: %v", ErrScanRow, err)
		}

		f.ID = fav.FacilityID
		f.IsFavorite = true
		if imageRef.Valid {
			f.ImageRef = &imageRef.String
		}
		if ownerID.Valid {
			f.OwnerID = &ownerID.Int64
		}
		fav.Facility = &f
		favorites = append(favorites, &fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows iteration: %v", ErrScanRow, err)
	}

	return favorites, nil
}

// CountByUser количество избранных площадок пользователя
func (r *Repository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("favorites").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByUser - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByUser - scan: %v", ErrScanRow, err)
	}
	return count, nil
}

// DeleteByFacility удаляет площадку из избранного всех пользователей
func (r *Repository) DeleteByFacility(ctx context.Context, facilityID int64) (int64, error) {
	return r.delete(ctx, "DeleteByFacility", squirrel.Eq{"facility_id": facilityID})
}

// DeleteByUser удаляет всё избранное пользователя
func (r *Repository) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	return r.delete(ctx, "DeleteByUser", squirrel.Eq{"user_id": userID})
}

// DeleteByFacilityOwner удаляет избранное, ссылающееся на площадки владельца
func (r *Repository) DeleteByFacilityOwner(ctx context.Context, ownerID int64) (int64, error) {
	return r.delete(ctx, "DeleteByFacilityOwner",
		squirrel.Expr("facility_id IN (SELECT id FROM facilities WHERE owner_id = ?)", ownerID))
}

func (r *Repository) delete(ctx context.Context, op string, pred squirrel.Sqlizer) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("favorites").Where(pred).ToSql()
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
