package reservation_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CanchaBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CanchaBooking/pkg/txmanager"
)

var fullColumns = []string{
	"id", "user_id", "facility_id", "facility_name", "booking_date", "time_slot", "contact", "message",
	"status", "cancelled_at", "created_at", "updated_at", "price", "image_ref", "address", "name", "email",
}

func setup(t *testing.T) (*sql.DB, *reservation.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, reservation.NewRepository(db), mock
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRepository_Create(t *testing.T) {
	now := time.Now()
	newReservation := func() *domain.Reservation {
		return &domain.Reservation{
			UserID:       3,
			FacilityID:   1,
			FacilityName: "Cancha A",
			BookingDate:  day(2025, 6, 1),
			TimeSlot:     "18:00",
			Contact:      "3001234567",
		}
	}

	t.Run("inserts pending", func(t *testing.T) {
		_, repo, mock := setup(t)
		mock.ExpectQuery("INSERT INTO reservations").
			WithArgs(int64(3), int64(1), "Cancha A", day(2025, 6, 1), "18:00", "3001234567", nil, "pending").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))

		res, err := repo.Create(context.Background(), newReservation())

		require.NoError(t, err)
		assert.Equal(t, int64(11), res.ID)
		assert.Equal(t, domain.StatusPending, res.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique index violation is slot taken", func(t *testing.T) {
		_, repo, mock := setup(t)
		mock.ExpectQuery("INSERT INTO reservations").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_reservations_active_slot"})

		_, err := repo.Create(context.Background(), newReservation())

		assert.ErrorIs(t, err, reservation.ErrSlotTaken)
	})

	t.Run("serialization failure is slot taken", func(t *testing.T) {
		_, repo, mock := setup(t)
		mock.ExpectQuery("INSERT INTO reservations").WillReturnError(&pq.Error{Code: "40001"})

		_, err := repo.Create(context.Background(), newReservation())

		assert.ErrorIs(t, err, reservation.ErrSlotTaken)
	})
}

func TestRepository_IsSlotTaken(t *testing.T) {
	t.Run("free slot outside transaction", func(t *testing.T) {
		_, repo, mock := setup(t)
		mock.ExpectQuery("SELECT id FROM reservations WHERE booking_date = \\$1 AND facility_id = \\$2 AND time_slot = \\$3 AND status <> \\$4$").
			WithArgs(day(2025, 6, 1), int64(1), "18:00", "cancelled").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		taken, err := repo.IsSlotTaken(context.Background(), 1, day(2025, 6, 1), "18:00")

		require.NoError(t, err)
		assert.False(t, taken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("taken slot is locked inside transaction", func(t *testing.T) {
		db, _, mock := setup(t)
		wrapped := dbmetrics.Wrap(db, nil)
		repo := reservation.NewRepository(wrapped)

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectRollback()

		var taken bool
		err := txmanager.NewTransactionManager(wrapped).DoSerializable(context.Background(), func(ctx context.Context) error {
			var err error
			taken, err = repo.IsSlotTaken(ctx, 1, day(2025, 6, 1), "18:00")
			if err != nil {
				return err
			}
			return reservation.ErrSlotTaken
		})

		assert.ErrorIs(t, err, reservation.ErrSlotTaken)
		assert.True(t, taken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Cancel(t *testing.T) {
	today := day(2025, 6, 1)

	t.Run("pending future reservation is cancelled", func(t *testing.T) {
		_, repo, mock := setup(t)
		cancelledAt := time.Now()
		mock.ExpectQuery("UPDATE reservations SET status = \\$1, cancelled_at = NOW\\(\\), updated_at = NOW\\(\\) WHERE id = \\$2 AND status = \\$3 AND user_id = \\$4 AND booking_date >= \\$5 RETURNING").
			WithArgs("cancelled", int64(11), "pending", int64(3), today).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "facility_id", "facility_name", "booking_date", "time_slot", "status", "cancelled_at"}).
				AddRow(int64(11), int64(3), int64(1), "Cancha A", day(2025, 6, 2), "18:00", "cancelled", cancelledAt))

		res, err := repo.Cancel(context.Background(), 11, 3, today)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, res.Status)
		require.NotNil(t, res.CancelledAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matching row", func(t *testing.T) {
		_, repo, mock := setup(t)
		mock.ExpectQuery("UPDATE reservations").WillReturnError(sql.ErrNoRows)

		_, err := repo.Cancel(context.Background(), 11, 4, today)

		assert.ErrorIs(t, err, reservation.ErrReservationNotFound)
	})
}

func TestRepository_CompletePast(t *testing.T) {
	_, repo, mock := setup(t)
	today := day(2025, 6, 1)

	mock.ExpectQuery("UPDATE reservations SET status = \\$1, updated_at = NOW\\(\\) WHERE status = \\$2 AND booking_date < \\$3 RETURNING id").
		WithArgs("completed", "pending", today).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)).AddRow(int64(4)))

	ids, err := repo.CompletePast(context.Background(), time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_OccupiedSlots(t *testing.T) {
	_, repo, mock := setup(t)

	mock.ExpectQuery("SELECT time_slot FROM reservations WHERE booking_date = \\$1 AND facility_id = \\$2 AND status <> \\$3").
		WithArgs(day(2025, 6, 1), int64(5), "cancelled").
		WillReturnRows(sqlmock.NewRows([]string{"time_slot"}).AddRow("18:00").AddRow("20:00"))

	slots, err := repo.OccupiedSlots(context.Background(), 5, day(2025, 6, 1))

	require.NoError(t, err)
	assert.Equal(t, []string{"18:00", "20:00"}, slots)
}

func TestRepository_ListByUser(t *testing.T) {
	_, repo, mock := setup(t)
	now := time.Now()

	mock.ExpectQuery("FROM reservations r LEFT JOIN facilities f ON f.id = r.facility_id JOIN users u ON u.id = r.user_id WHERE r.user_id = \\$1 ORDER BY r.booking_date DESC, r.time_slot DESC").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(fullColumns).
			AddRow(int64(2), int64(3), int64(1), "Cancha A", day(2025, 6, 2), "18:00", "300", "trae balón",
				"pending", nil, now, now, "50000", nil, "Calle 5", "Ana", "ana@example.com").
			AddRow(int64(1), int64(3), int64(9), "Cancha Vieja", day(2025, 5, 2), "10:00", "300", nil,
				"cancelled", now, now, now, nil, nil, nil, "Ana", "ana@example.com"))

	list, err := repo.ListByUser(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "trae balón", *list[0].Message)
	assert.Equal(t, "50000", *list[0].FacilityPrice)
	assert.Nil(t, list[1].FacilityPrice)
	assert.True(t, list[1].IsCancelled())
	assert.NotNil(t, list[1].CancelledAt)
}

func TestRepository_DeleteByFacilityOwner(t *testing.T) {
	_, repo, mock := setup(t)

	mock.ExpectExec("DELETE FROM reservations WHERE facility_id IN \\(SELECT id FROM facilities WHERE owner_id = \\$1\\)").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.DeleteByFacilityOwner(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
