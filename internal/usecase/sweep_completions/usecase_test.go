package sweep_completions_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CanchaBooking/internal/infra/events"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CanchaBooking/internal/usecase/sweep_completions"
	"github.com/m04kA/SMC-CanchaBooking/pkg/clock"
	"github.com/m04kA/SMC-CanchaBooking/pkg/logger"
)

type recordingPublisher struct {
	events []events.ReservationEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e events.ReservationEvent) error {
	p.events = append(p.events, e)
	return nil
}

type countingMetrics struct {
	completed int
}

func (m *countingMetrics) ReservationsCompleted(n int) { m.completed += n }

func TestUseCase_Execute(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	publisher := &recordingPublisher{}
	metrics := &countingMetrics{}
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.FixedZone("COT", -5*3600))
	today := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	uc := sweep_completions.NewUseCase(reservation.NewRepository(db), publisher, metrics, &clock.Fixed{T: now}, logger.NewNop())

	query := "UPDATE reservations SET status = \\$1, updated_at = NOW\\(\\) WHERE status = \\$2 AND booking_date < \\$3 RETURNING id"

	// Вчерашнее pending завершается; вчерашнее cancelled не попадает под условие status = pending
	mock.ExpectQuery(query).
		WithArgs("completed", "pending", today).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	// Второй проход в тот же день ничего не находит
	mock.ExpectQuery(query).
		WithArgs("completed", "pending", today).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Completed)
	assert.Equal(t, []int64{1}, first.IDs)
	assert.Equal(t, "2025-06-02", first.Today)

	second, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Completed)

	assert.Equal(t, 1, metrics.completed)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.TypeReservationsCompleted, publisher.events[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUseCase_Execute_StoreError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	uc := sweep_completions.NewUseCase(reservation.NewRepository(db), &recordingPublisher{}, &countingMetrics{},
		&clock.Fixed{T: time.Now()}, logger.NewNop())
	mock.ExpectQuery("UPDATE reservations").WillReturnError(assert.AnError)

	_, err = uc.Execute(context.Background())

	assert.ErrorIs(t, err, sweep_completions.ErrInternal)
}
