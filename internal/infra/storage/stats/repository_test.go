package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/stats"
)

func setup(t *testing.T) (*stats.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return stats.NewRepository(db), mock
}

func TestRepository_Platform(t *testing.T) {
	repo, mock := setup(t)
	mock.ExpectQuery("SELECT \\(SELECT COUNT\\(\\*\\) FROM users\\), \\(SELECT COUNT\\(\\*\\) FROM users WHERE role = \\$1\\)").
		WithArgs("dueño").
		WillReturnRows(sqlmock.NewRows([]string{"u", "o", "f", "r"}).AddRow(int64(10), int64(3), int64(7), int64(42)))

	s, err := repo.Platform(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(10), s.TotalUsers)
	assert.Equal(t, int64(3), s.TotalOwners)
	assert.Equal(t, int64(7), s.TotalFacilities)
	assert.Equal(t, int64(42), s.TotalReservations)
}

func TestRepository_User(t *testing.T) {
	repo, mock := setup(t)
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FILTER \\(WHERE status = \\$1 AND booking_date >= \\$2\\), \\(SELECT COUNT\\(\\*\\) FROM favorites WHERE user_id = \\$3\\) FROM reservations WHERE user_id = \\$4").
		WithArgs("pending", today, int64(3), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"t", "u", "f"}).AddRow(int64(5), int64(2), int64(1)))

	s, err := repo.User(context.Background(), 3, today)

	require.NoError(t, err)
	assert.Equal(t, int64(5), s.TotalReservations)
	assert.Equal(t, int64(2), s.UpcomingReservations)
	assert.Equal(t, int64(1), s.Favorites)
}

func TestRepository_Owner(t *testing.T) {
	repo, mock := setup(t)
	mock.ExpectQuery("SELECT COUNT\\(DISTINCT f.id\\), COUNT\\(r.id\\) FROM facilities f LEFT JOIN reservations r ON r.facility_id = f.id WHERE f.owner_id = \\$1").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"f", "r"}).AddRow(int64(2), int64(9)))

	s, err := repo.Owner(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, int64(2), s.Facilities)
	assert.Equal(t, int64(9), s.Reservations)
}
