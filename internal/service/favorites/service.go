package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	facilityRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/facility"
	favoriteRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/favorite"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/favorites/models"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
)

// Service сервис избранных площадок
type Service struct {
	favorites  FavoriteRepository
	facilities FacilityRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса избранного
func NewService(favorites FavoriteRepository, facilities FacilityRepository, logger Logger) *Service {
	return &Service{
		favorites:  favorites,
		facilities: facilities,
		logger:     logger,
	}
}

// Add добавляет площадку в избранное
func (s *Service) Add(ctx context.Context, identity domain.Identity, facilityID int64) (*models.FavoriteResponse, error) {
	if err := guard.RequireAuthenticated(identity); err != nil {
		return nil, err
	}

	facility, err := s.facilities.GetByID(ctx, facilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("Add: facility id=%d not found", facilityID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Add: repository error for facility id=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	fav, err := s.favorites.Add(ctx, identity.UserID, facilityID)
	if err != nil {
		switch {
		case errors.Is(err, favoriteRepo.ErrAlreadyFavorite):
			s.logger.Warn("Add: facility id=%d already in favorites of user=%d", facilityID, identity.UserID)
			return nil, ErrAlreadyFavorite
		case errors.Is(err, favoriteRepo.ErrFacilityNotFound):
			// Площадку удалили между проверкой и вставкой
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Add: repository error for user=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	facility.IsFavorite = true
	fav.Facility = facility

	s.logger.Info("Add: user=%d added facility id=%d to favorites", identity.UserID, facilityID)
	return models.FromDomainFavorite(fav), nil
}

// Remove убирает площадку из избранного; отсутствие записи не ошибка
func (s *Service) Remove(ctx context.Context, identity domain.Identity, facilityID int64) error {
	if err := guard.RequireAuthenticated(identity); err != nil {
		return err
	}

	removed, err := s.favorites.Remove(ctx, identity.UserID, facilityID)
	if err != nil {
		s.logger.Error("Remove: repository error for user=%d: %v", identity.UserID, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: user=%d facility id=%d removed=%t", identity.UserID, facilityID, removed)
	return nil
}

// ListForUser избранное пользователя, последние добавленные первыми
func (s *Service) ListForUser(ctx context.Context, identity domain.Identity) ([]*models.FavoriteResponse, error) {
	if err := guard.RequireAuthenticated(identity); err != nil {
		return nil, err
	}

	list, err := s.favorites.ListByUser(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("ListForUser: repository error for user=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: ListForUser - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainFavoriteList(list), nil
}
