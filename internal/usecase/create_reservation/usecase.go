package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/events"
	facilityRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/facility"
	reservationRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/reservation"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	facilityRepo    FacilityRepository
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	facilityRepo FacilityRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		facilityRepo:    facilityRepo,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         metrics,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Последнее слово за частичным уникальным индексом: из двух одновременных запросов на слот
// ровно один получит ErrSlotTaken.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, facility=%d, date=%s, slot=%s",
		req.UserID, req.FacilityID, req.Date.Format(domain.DateFormat), req.TimeSlot)

	// 1. Валидация входных данных
	slot, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не раньше сегодняшней в часовом поясе площадок
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 3. Проверка и вставка в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Площадка блокируется от удаления до конца транзакции
		facility, err := uc.facilityRepo.GetByID(txCtx, req.FacilityID)
		if err != nil {
			if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
				uc.logger.Warn("CreateReservation: facility id=%d not found", req.FacilityID)
				return ErrFacilityNotFound
			}
			uc.logger.Error("CreateReservation: failed to get facility id=%d: %v", req.FacilityID, err)
			return fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
		}
		if !facility.IsListed() {
			uc.logger.Warn("CreateReservation: facility id=%d has no owner", req.FacilityID)
			return ErrFacilityNotFound
		}

		// 3.2. Быстрая проверка занятости с блокировкой строк (FOR UPDATE)
		taken, err := uc.reservationRepo.IsSlotTaken(txCtx, req.FacilityID, req.Date, slot)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if taken {
			return ErrSlotTaken
		}

		// 3.3. Создаем бронирование со снимком названия площадки
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			UserID:       req.UserID,
			FacilityID:   facility.ID,
			FacilityName: facility.Name,
			BookingDate:  domain.DateOnly(req.Date),
			TimeSlot:     slot,
			Contact:      strings.TrimSpace(req.Contact),
			Message:      req.Message,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("CreateReservation: slot %s on %s at facility=%d is taken",
				slot, req.Date.Format(domain.DateFormat), req.FacilityID)
			uc.metrics.ReservationConflict()
		}
		return nil, err
	}

	uc.metrics.ReservationCreated()
	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// 4. Событие публикуется после коммита; сбой брокера не отменяет бронирование
	event := events.ReservationEvent{
		Type:          events.TypeReservationCreated,
		ReservationID: result.ID,
		UserID:        result.UserID,
		FacilityID:    result.FacilityID,
		FacilityName:  result.FacilityName,
		BookingDate:   result.BookingDate.Format(domain.DateFormat),
		TimeSlot:      result.TimeSlot,
		OccurredAt:    now,
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("CreateReservation: failed to publish event for reservation id=%d: %v", result.ID, err)
	}

	return &Response{
		ID:           result.ID,
		UserID:       result.UserID,
		FacilityID:   result.FacilityID,
		FacilityName: result.FacilityName,
		BookingDate:  result.BookingDate.Format(domain.DateFormat),
		TimeSlot:     result.TimeSlot,
		Contact:      result.Contact,
		Message:      result.Message,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
	}, nil
}
