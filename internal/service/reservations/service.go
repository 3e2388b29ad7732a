package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/events"
	reservationRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	publisher       EventPublisher
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	publisher EventPublisher,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		publisher:       publisher,
		metrics:         metrics,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Cancel отменяет своё pending бронирование, пока его дата не прошла.
// Чужое, несуществующее, завершённое или уже отменённое - ErrReservationNotFound.
func (s *Service) Cancel(ctx context.Context, identity domain.Identity, id int64) (*models.ReservationResponse, error) {
	if err := guard.RequireAuthenticated(identity); err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", id, identity.UserID)

	now := s.timeProvider.Now()
	cancelled, err := s.reservationRepo.Cancel(ctx, id, identity.UserID, domain.DateOnly(now))
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d is not cancellable by user=%d", id, identity.UserID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.metrics.ReservationCancelled()
	s.logger.Info("Cancel: reservation id=%d cancelled", id)

	event := events.ReservationEvent{
		Type:          events.TypeReservationCancelled,
		ReservationID: cancelled.ID,
		UserID:        cancelled.UserID,
		FacilityID:    cancelled.FacilityID,
		FacilityName:  cancelled.FacilityName,
		BookingDate:   cancelled.BookingDate.Format(domain.DateFormat),
		TimeSlot:      cancelled.TimeSlot,
		OccurredAt:    now,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Cancel: failed to publish event for reservation id=%d: %v", id, err)
	}

	return models.FromDomainReservation(cancelled, now), nil
}

// ListForUser все бронирования пользователя, новые первыми, с меткой статуса на сегодня
func (s *Service) ListForUser(ctx context.Context, identity domain.Identity) ([]*models.ReservationResponse, error) {
	if err := guard.RequireAuthenticated(identity); err != nil {
		return nil, err
	}

	list, err := s.reservationRepo.ListByUser(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("ListForUser: repository error for user=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: ListForUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForUser: fetched %d reservations for user=%d", len(list), identity.UserID)
	return models.FromDomainReservationList(list, s.timeProvider.Now()), nil
}

// ListForOwner бронирования площадок владельца с именем и email клиента
func (s *Service) ListForOwner(ctx context.Context, identity domain.Identity) ([]*models.ReservationResponse, error) {
	if err := guard.RequireOwner(identity); err != nil {
		return nil, err
	}

	list, err := s.reservationRepo.ListByFacilityOwner(ctx, identity.UserID, 0)
	if err != nil {
		s.logger.Error("ListForOwner: repository error for owner=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: ListForOwner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForOwner: fetched %d reservations for owner=%d", len(list), identity.UserID)
	return models.FromDomainReservationList(list, s.timeProvider.Now()), nil
}

// AdminListAll все бронирования платформы
func (s *Service) AdminListAll(ctx context.Context, identity domain.Identity) ([]*models.ReservationResponse, error) {
	if err := guard.RequireAdmin(identity); err != nil {
		return nil, err
	}

	list, err := s.reservationRepo.ListAll(ctx, 0)
	if err != nil {
		s.logger.Error("AdminListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: AdminListAll - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReservationList(list, s.timeProvider.Now()), nil
}
