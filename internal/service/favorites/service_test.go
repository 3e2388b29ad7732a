package favorites_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/facility"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/favorite"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/favorites"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
	"github.com/m04kA/SMC-CanchaBooking/pkg/logger"
)

var (
	facilityCols = []string{"id", "name", "price", "description", "image_ref", "address", "owner_id", "created_at", "updated_at"}
	user         = domain.Identity{UserID: 3, Role: domain.RoleUser}
)

func setup(t *testing.T) (*favorites.Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return favorites.NewService(favorite.NewRepository(db), facility.NewRepository(db), logger.NewNop()), mock
}

func expectFacility(mock sqlmock.Sqlmock, id int64) {
	ts := time.Now()
	mock.ExpectQuery("FROM facilities f WHERE f.id = \\$1").WithArgs(id).
		WillReturnRows(sqlmock.NewRows(facilityCols).AddRow(id, "Cancha A", "50000", "", nil, "Calle 5", int64(2), ts, ts))
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("adds existing facility", func(t *testing.T) {
		svc, mock := setup(t)
		expectFacility(mock, 1)
		mock.ExpectQuery("INSERT INTO favorites").WithArgs(int64(3), int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "added_at"}).AddRow(int64(5), time.Now()))

		fav, err := svc.Add(ctx, user, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(5), fav.ID)
		assert.True(t, fav.Facility.IsFavorite)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second add is a conflict", func(t *testing.T) {
		svc, mock := setup(t)
		expectFacility(mock, 1)
		mock.ExpectQuery("INSERT INTO favorites").WillReturnError(&pq.Error{Code: "23505"})

		_, err := svc.Add(ctx, user, 1)

		assert.ErrorIs(t, err, favorites.ErrAlreadyFavorite)
	})

	t.Run("missing facility", func(t *testing.T) {
		svc, mock := setup(t)
		mock.ExpectQuery("FROM facilities f").WillReturnRows(sqlmock.NewRows(facilityCols))

		_, err := svc.Add(ctx, user, 99)

		assert.ErrorIs(t, err, favorites.ErrFacilityNotFound)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Add(ctx, domain.Anonymous, 1)

		assert.ErrorIs(t, err, guard.ErrAccessDenied)
	})
}

func TestService_Remove(t *testing.T) {
	svc, mock := setup(t)
	mock.ExpectExec("DELETE FROM favorites").WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Remove(context.Background(), user, 1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
