package dashboards

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/dashboards/models"
	facilityModels "github.com/m04kA/SMC-CanchaBooking/internal/service/facilities/models"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
	reservationModels "github.com/m04kA/SMC-CanchaBooking/internal/service/reservations/models"
)

// Service панели пользователя и владельца
type Service struct {
	stats        StatsRepository
	reservations ReservationRepository
	facilities   FacilityRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewService(
	stats StatsRepository,
	reservations ReservationRepository,
	facilities FacilityRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		stats:        stats,
		reservations: reservations,
		facilities:   facilities,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// UserDashboard счётчики, ближайшие бронирования и рекомендуемые площадки
func (s *Service) UserDashboard(ctx context.Context, identity domain.Identity) (*models.UserDashboardResponse, error) {
	if err := guard.RequireAuthenticated(identity); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	today := domain.DateOnly(now)

	stats, err := s.stats.User(ctx, identity.UserID, today)
	if err != nil {
		return nil, s.internal("UserDashboard", err)
	}

	upcoming, err := s.reservations.ListUpcomingByUser(ctx, identity.UserID, today, domain.UserUpcomingReservations)
	if err != nil {
		return nil, s.internal("UserDashboard", err)
	}

	recommended, err := s.facilities.ListPublic(ctx, identity.UserID, domain.UserRecommendedFacilities)
	if err != nil {
		return nil, s.internal("UserDashboard", err)
	}

	return &models.UserDashboardResponse{
		TotalReservations:    stats.TotalReservations,
		UpcomingReservations: stats.UpcomingReservations,
		Favorites:            stats.Favorites,
		Upcoming:             reservationModels.FromDomainReservationList(upcoming, now),
		Recommended:          facilityModels.FromDomainFacilityList(recommended),
	}, nil
}

// OwnerDashboard счётчики площадок и бронирований владельца и последние бронирования
func (s *Service) OwnerDashboard(ctx context.Context, identity domain.Identity) (*models.OwnerDashboardResponse, error) {
	if err := guard.RequireOwner(identity); err != nil {
		return nil, err
	}

	stats, err := s.stats.Owner(ctx, identity.UserID)
	if err != nil {
		return nil, s.internal("OwnerDashboard", err)
	}

	recent, err := s.reservations.ListByFacilityOwner(ctx, identity.UserID, domain.OwnerRecentReservations)
	if err != nil {
		return nil, s.internal("OwnerDashboard", err)
	}

	return &models.OwnerDashboardResponse{
		Facilities:         stats.Facilities,
		Reservations:       stats.Reservations,
		RecentReservations: reservationModels.FromDomainReservationList(recent, s.timeProvider.Now()),
	}, nil
}

func (s *Service) internal(op string, err error) error {
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
