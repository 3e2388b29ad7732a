package create_reservation_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CanchaBooking/internal/infra/events"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/facility"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CanchaBooking/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-CanchaBooking/pkg/clock"
	"github.com/m04kA/SMC-CanchaBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CanchaBooking/pkg/logger"
	"github.com/m04kA/SMC-CanchaBooking/pkg/txmanager"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.ReservationEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.ReservationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

type countingMetrics struct {
	created, conflicts int
}

func (m *countingMetrics) ReservationCreated()  { m.created++ }
func (m *countingMetrics) ReservationConflict() { m.conflicts++ }

var (
	bogota   = time.FixedZone("COT", -5*3600)
	now      = time.Date(2025, 6, 1, 21, 30, 0, 0, bogota) // в UTC уже 2 июня
	today    = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tomorrow = today.AddDate(0, 0, 1)

	facilityCols = []string{"id", "name", "price", "description", "image_ref", "address", "owner_id", "created_at", "updated_at"}
)

type fixture struct {
	uc        *create_reservation.UseCase
	mock      sqlmock.Sqlmock
	publisher *recordingPublisher
	metrics   *countingMetrics
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	f := &fixture{mock: mock, publisher: &recordingPublisher{}, metrics: &countingMetrics{}}
	f.uc = create_reservation.NewUseCase(
		reservation.NewRepository(wrapped),
		facility.NewRepository(wrapped),
		txmanager.NewTransactionManager(wrapped),
		f.publisher,
		f.metrics,
		&clock.Fixed{T: now},
		logger.NewNop(),
	)
	return f
}

func (f *fixture) expectFacility(id int64, ownerID interface{}) {
	ts := time.Now()
	f.mock.ExpectQuery("FROM facilities f WHERE f.id = \\$1 FOR SHARE").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(facilityCols).AddRow(id, "Cancha A", "50000", "", nil, "Calle 5", ownerID, ts, ts))
}

func request(date time.Time) *create_reservation.Request {
	return &create_reservation.Request{
		UserID:     3,
		FacilityID: 1,
		Date:       date,
		TimeSlot:   "18:00",
		Contact:    "3001234567",
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("past date is rejected for every role before any store access", func(t *testing.T) {
		for _, userID := range []int64{1, 2, 3} {
			f := setup(t)
			req := request(today.AddDate(0, 0, -1))
			req.UserID = userID

			_, err := f.uc.Execute(ctx, req)

			assert.ErrorIs(t, err, create_reservation.ErrInvalidDate)
			assert.NoError(t, f.mock.ExpectationsWereMet())
		}
	})

	t.Run("empty slot is rejected", func(t *testing.T) {
		f := setup(t)
		req := request(tomorrow)
		req.TimeSlot = "  "

		_, err := f.uc.Execute(ctx, req)

		assert.ErrorIs(t, err, create_reservation.ErrInvalidInput)
	})

	t.Run("padded slot label is stored normalized", func(t *testing.T) {
		f := setup(t)
		ts := time.Now()
		f.mock.ExpectBegin()
		f.expectFacility(1, int64(2))
		f.mock.ExpectQuery("SELECT id FROM reservations .* FOR UPDATE").
			WithArgs(tomorrow, int64(1), "18:00 - 19:00", "cancelled").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		f.mock.ExpectQuery("INSERT INTO reservations").
			WithArgs(int64(3), int64(1), "Cancha A", tomorrow, "18:00 - 19:00", "3001234567", nil, "pending").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(12), ts, ts))
		f.mock.ExpectCommit()

		req := request(tomorrow)
		req.TimeSlot = " 18:00  -  19:00 "
		resp, err := f.uc.Execute(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "18:00 - 19:00", resp.TimeSlot)
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("oversized slot label is rejected before any store access", func(t *testing.T) {
		f := setup(t)
		req := request(tomorrow)
		req.TimeSlot = "18:00 - 19:00 (cancha techada)"

		_, err := f.uc.Execute(ctx, req)

		assert.ErrorIs(t, err, create_reservation.ErrInvalidInput)
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("today in the facility timezone is bookable", func(t *testing.T) {
		f := setup(t)
		ts := time.Now()
		f.mock.ExpectBegin()
		f.expectFacility(1, int64(2))
		f.mock.ExpectQuery("SELECT id FROM reservations .* FOR UPDATE").
			WithArgs(today, int64(1), "18:00", "cancelled").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		f.mock.ExpectQuery("INSERT INTO reservations").
			WithArgs(int64(3), int64(1), "Cancha A", today, "18:00", "3001234567", nil, "pending").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), ts, ts))
		f.mock.ExpectCommit()

		resp, err := f.uc.Execute(ctx, request(today))

		require.NoError(t, err)
		assert.Equal(t, int64(11), resp.ID)
		assert.Equal(t, "Cancha A", resp.FacilityName)
		assert.Equal(t, "2025-06-01", resp.BookingDate)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, 1, f.metrics.created)
		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, events.TypeReservationCreated, f.publisher.events[0].Type)
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("second booking of the same slot is a conflict", func(t *testing.T) {
		f := setup(t)
		f.mock.ExpectBegin()
		f.expectFacility(1, int64(2))
		f.mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
		f.mock.ExpectRollback()

		_, err := f.uc.Execute(ctx, request(tomorrow))

		assert.ErrorIs(t, err, create_reservation.ErrSlotTaken)
		assert.Equal(t, 1, f.metrics.conflicts)
		assert.Empty(t, f.publisher.events)
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("lost race on the unique index is a conflict", func(t *testing.T) {
		f := setup(t)
		f.mock.ExpectBegin()
		f.expectFacility(1, int64(2))
		f.mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"id"}))
		f.mock.ExpectQuery("INSERT INTO reservations").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_reservations_active_slot"})
		f.mock.ExpectRollback()

		_, err := f.uc.Execute(ctx, request(tomorrow))

		assert.ErrorIs(t, err, create_reservation.ErrSlotTaken)
		assert.Equal(t, 0, f.metrics.created)
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("unowned facility is not bookable", func(t *testing.T) {
		f := setup(t)
		f.mock.ExpectBegin()
		f.expectFacility(1, nil)
		f.mock.ExpectRollback()

		_, err := f.uc.Execute(ctx, request(tomorrow))

		assert.ErrorIs(t, err, create_reservation.ErrFacilityNotFound)
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("missing facility", func(t *testing.T) {
		f := setup(t)
		f.mock.ExpectBegin()
		f.mock.ExpectQuery("FOR SHARE").WillReturnRows(sqlmock.NewRows(facilityCols))
		f.mock.ExpectRollback()

		_, err := f.uc.Execute(ctx, request(tomorrow))

		assert.ErrorIs(t, err, create_reservation.ErrFacilityNotFound)
	})

	t.Run("broker failure does not undo the reservation", func(t *testing.T) {
		f := setup(t)
		f.publisher.err = events.ErrPublish
		ts := time.Now()
		f.mock.ExpectBegin()
		f.expectFacility(1, int64(2))
		f.mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"id"}))
		f.mock.ExpectQuery("INSERT INTO reservations").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(12), ts, ts))
		f.mock.ExpectCommit()

		resp, err := f.uc.Execute(ctx, request(tomorrow))

		require.NoError(t, err)
		assert.Equal(t, int64(12), resp.ID)
	})
}
