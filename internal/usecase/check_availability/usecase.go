package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	facilityRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/facility"
)

// UseCase use case для получения занятых слотов площадки
type UseCase struct {
	reservationRepo ReservationRepository
	facilityRepo    FacilityRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	facilityRepo FacilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		facilityRepo:    facilityRepo,
		logger:          logger,
	}
}

// Execute возвращает метки слотов, занятых неотменёнными бронированиями площадки на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: facility=%d, date=%s", req.FacilityID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("CheckAvailability: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}
	if !facility.IsListed() {
		return nil, ErrFacilityNotFound
	}

	slots, err := uc.reservationRepo.OccupiedSlots(ctx, facility.ID, req.Date)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get occupied slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get occupied slots: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: facility=%d has %d occupied slots", facility.ID, len(slots))
	return &Response{
		FacilityID:    facility.ID,
		Date:          domain.DateOnly(req.Date).Format(domain.DateFormat),
		OccupiedSlots: slots,
	}, nil
}
