package sweep_completions

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/events"
)

// UseCase переводит прошедшие pending бронирования в completed
type UseCase struct {
	reservationRepo ReservationRepository
	publisher       EventPublisher
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	publisher EventPublisher,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		publisher:       publisher,
		metrics:         metrics,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute одним UPDATE завершает все pending с датой раньше сегодняшней.
// Повторный запуск в тот же день ничего не меняет; cancelled не трогаются.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	today := domain.DateOnly(now)
	uc.logger.Info("SweepCompletions: completing pending reservations before %s", today.Format(domain.DateFormat))

	ids, err := uc.reservationRepo.CompletePast(ctx, today)
	if err != nil {
		uc.logger.Error("SweepCompletions: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to complete reservations: %v", ErrInternal, err)
	}

	resp := &Response{Today: today.Format(domain.DateFormat), Completed: len(ids), IDs: ids}
	if len(ids) == 0 {
		uc.logger.Info("SweepCompletions: nothing to complete")
		return resp, nil
	}

	uc.metrics.ReservationsCompleted(len(ids))
	uc.logger.Info("SweepCompletions: completed %d reservations", len(ids))

	event := events.ReservationEvent{
		Type:           events.TypeReservationsCompleted,
		ReservationIDs: ids,
		BookingDate:    resp.Today,
		OccurredAt:     now,
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("SweepCompletions: failed to publish event: %v", err)
	}

	return resp, nil
}
