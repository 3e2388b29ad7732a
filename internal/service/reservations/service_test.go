package reservations_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/events"
	reservationRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/reservations"
	"github.com/m04kA/SMC-CanchaBooking/pkg/clock"
	"github.com/m04kA/SMC-CanchaBooking/pkg/logger"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Cancel(ctx context.Context, id, userID int64, today time.Time) (*domain.Reservation, error) {
	args := m.Called(ctx, id, userID, today)
	if r, ok := args.Get(0).(*domain.Reservation); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *mockRepo) ListByFacilityOwner(ctx context.Context, ownerID int64, limit uint64) ([]*domain.Reservation, error) {
	args := m.Called(ctx, ownerID, limit)
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *mockRepo) ListAll(ctx context.Context, limit uint64) ([]*domain.Reservation, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, e events.ReservationEvent) error {
	return m.Called(ctx, e).Error(0)
}

type countingMetrics struct{ cancelled int }

func (m *countingMetrics) ReservationCancelled() { m.cancelled++ }

var (
	now   = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	today = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	user  = domain.Identity{UserID: 3, Role: domain.RoleUser}
	owner = domain.Identity{UserID: 2, Role: domain.RoleOwner}
)

func newService(repo *mockRepo, publisher *mockPublisher, metrics *countingMetrics) *reservations.Service {
	return reservations.NewService(repo, publisher, metrics, &clock.Fixed{T: now}, logger.NewNop())
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel is applied once", func(t *testing.T) {
		repo := &mockRepo{}
		publisher := &mockPublisher{}
		metrics := &countingMetrics{}
		svc := newService(repo, publisher, metrics)

		cancelledAt := now
		repo.On("Cancel", ctx, int64(11), int64(3), today).Return(&domain.Reservation{
			ID: 11, UserID: 3, FacilityID: 1, FacilityName: "Cancha A",
			BookingDate: today.AddDate(0, 0, 1), TimeSlot: "18:00",
			Status: domain.StatusCancelled, CancelledAt: &cancelledAt,
		}, nil).Once()
		repo.On("Cancel", ctx, int64(11), int64(3), today).Return(nil, reservationRepo.ErrReservationNotFound).Once()
		publisher.On("Publish", ctx, mock.MatchedBy(func(e events.ReservationEvent) bool {
			return e.Type == events.TypeReservationCancelled && e.ReservationID == 11
		})).Return(nil).Once()

		resp, err := svc.Cancel(ctx, user, 11)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		assert.Equal(t, "Cancelada", resp.DisplayStatus)

		_, err = svc.Cancel(ctx, user, 11)
		assert.ErrorIs(t, err, reservations.ErrReservationNotFound)

		assert.Equal(t, 1, metrics.cancelled)
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("anonymous cannot cancel", func(t *testing.T) {
		repo := &mockRepo{}
		svc := newService(repo, &mockPublisher{}, &countingMetrics{})

		_, err := svc.Cancel(ctx, domain.Anonymous, 11)

		assert.ErrorIs(t, err, guard.ErrUnauthenticated)
		repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_ListForUser(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	svc := newService(repo, &mockPublisher{}, &countingMetrics{})

	repo.On("ListByUser", ctx, int64(3)).Return([]*domain.Reservation{
		{ID: 4, BookingDate: today.AddDate(0, 0, 2), Status: domain.StatusPending},
		{ID: 3, BookingDate: today, Status: domain.StatusPending},
		{ID: 2, BookingDate: today.AddDate(0, 0, -1), Status: domain.StatusPending},
		{ID: 1, BookingDate: today.AddDate(0, 0, -1), Status: domain.StatusCancelled},
	}, nil)

	list, err := svc.ListForUser(ctx, user)

	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "Próxima", list[0].DisplayStatus)
	assert.Equal(t, "Hoy", list[1].DisplayStatus)
	assert.Equal(t, "Completada", list[2].DisplayStatus)
	assert.Equal(t, "pending", list[2].Status)
	assert.Equal(t, "Cancelada", list[3].DisplayStatus)
}

func TestService_ListForOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("user role is denied", func(t *testing.T) {
		svc := newService(&mockRepo{}, &mockPublisher{}, &countingMetrics{})

		_, err := svc.ListForOwner(ctx, user)

		assert.ErrorIs(t, err, guard.ErrAccessDenied)
	})

	t.Run("owner sees bookings of own facilities", func(t *testing.T) {
		repo := &mockRepo{}
		svc := newService(repo, &mockPublisher{}, &countingMetrics{})
		name, email := "Ana", "ana@example.com"
		repo.On("ListByFacilityOwner", ctx, int64(2), uint64(0)).Return([]*domain.Reservation{
			{ID: 1, BookingDate: today, Status: domain.StatusPending, UserName: &name, UserEmail: &email},
		}, nil)

		list, err := svc.ListForOwner(ctx, owner)

		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Ana", *list[0].UserName)
	})
}
