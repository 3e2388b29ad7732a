package facilities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	facilityRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/facility"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/facilities/models"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
)

// Service сервис каталога площадок
type Service struct {
	facilities   FacilityRepository
	reservations ReservationCleaner
	favorites    FavoriteCleaner
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(
	facilities FacilityRepository,
	reservations ReservationCleaner,
	favorites FavoriteCleaner,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		facilities:   facilities,
		reservations: reservations,
		favorites:    favorites,
		txManager:    txManager,
		logger:       logger,
	}
}

// ListPublic каталог площадок с владельцем; для вошедшего пользователя отмечены избранные
func (s *Service) ListPublic(ctx context.Context, identity domain.Identity) ([]*models.FacilityResponse, error) {
	list, err := s.facilities.ListPublic(ctx, identity.UserID, 0)
	if err != nil {
		s.logger.Error("ListPublic: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPublic - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainFacilityList(list), nil
}

// Get площадка из каталога; площадки без владельца не показываются
func (s *Service) Get(ctx context.Context, id int64) (*models.FacilityResponse, error) {
	f, err := s.getListed(ctx, "Get", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainFacility(f), nil
}

// ListByOwner площадки текущего владельца, новые первыми
func (s *Service) ListByOwner(ctx context.Context, identity domain.Identity) ([]*models.FacilityResponse, error) {
	if err := guard.RequireOwner(identity); err != nil {
		return nil, err
	}

	list, err := s.facilities.ListByOwner(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("ListByOwner: repository error for owner=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: ListByOwner - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainFacilityList(list), nil
}

// Create публикует новую площадку владельца
func (s *Service) Create(ctx context.Context, identity domain.Identity, req *models.FacilityRequest) (*models.FacilityResponse, error) {
	if err := guard.RequireOwner(identity); err != nil {
		s.logger.Warn("Create: access denied for user=%d role=%s", identity.UserID, identity.Role)
		return nil, err
	}
	if err := validateFacility(req); err != nil {
		s.logger.Warn("Create: validation failed for owner=%d: %v", identity.UserID, err)
		return nil, err
	}

	ownerID := identity.UserID
	f := &domain.Facility{
		Name:        strings.TrimSpace(req.Name),
		Price:       strings.TrimSpace(req.Price),
		Description: req.Description,
		Address:     strings.TrimSpace(req.Address),
		OwnerID:     &ownerID,
	}
	if err := applyImage(f, req.ImageFilename); err != nil {
		s.logger.Warn("Create: %v", err)
		return nil, err
	}

	created, err := s.facilities.Create(ctx, f)
	if err != nil {
		s.logger.Error("Create: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: owner=%d created facility id=%d", ownerID, created.ID)
	return models.FromDomainFacility(created), nil
}

// Update полная перезапись полей площадки владельцем.
// Снимки названия в существующих бронированиях не меняются.
func (s *Service) Update(ctx context.Context, identity domain.Identity, id int64, req *models.FacilityRequest) (*models.FacilityResponse, error) {
	if err := guard.RequireOwner(identity); err != nil {
		return nil, err
	}
	if err := validateFacility(req); err != nil {
		s.logger.Warn("Update: validation failed for facility id=%d: %v", id, err)
		return nil, err
	}

	f, err := s.getOwned(ctx, "Update", id, identity.UserID)
	if err != nil {
		return nil, err
	}

	f.Name = strings.TrimSpace(req.Name)
	f.Price = strings.TrimSpace(req.Price)
	f.Description = req.Description
	f.Address = strings.TrimSpace(req.Address)
	if err := applyImage(f, req.ImageFilename); err != nil {
		s.logger.Warn("Update: %v", err)
		return nil, err
	}

	if err := s.facilities.Update(ctx, f); err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Update: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: owner=%d updated facility id=%d", identity.UserID, id)
	return models.FromDomainFacility(f), nil
}

// Delete удаляет площадку владельца вместе с её бронированиями и избранным
func (s *Service) Delete(ctx context.Context, identity domain.Identity, id int64) error {
	if err := guard.RequireOwner(identity); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.getOwned(ctx, "Delete", id, identity.UserID); err != nil {
			return err
		}
		return s.cascadeDelete(ctx, "Delete", id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Delete: owner=%d deleted facility id=%d", identity.UserID, id)
	return nil
}

// AdminListAll все площадки с именем владельца, включая неназначенные
func (s *Service) AdminListAll(ctx context.Context, identity domain.Identity) ([]*models.FacilityResponse, error) {
	if err := guard.RequireAdmin(identity); err != nil {
		return nil, err
	}

	list, err := s.facilities.ListAll(ctx)
	if err != nil {
		s.logger.Error("AdminListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: AdminListAll - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainFacilityList(list), nil
}

// AdminDelete удаляет любую площадку с тем же каскадом
func (s *Service) AdminDelete(ctx context.Context, identity domain.Identity, id int64) error {
	if err := guard.RequireAdmin(identity); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.get(ctx, "AdminDelete", id); err != nil {
			return err
		}
		return s.cascadeDelete(ctx, "AdminDelete", id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("AdminDelete: admin=%d deleted facility id=%d", identity.UserID, id)
	return nil
}

func (s *Service) cascadeDelete(ctx context.Context, op string, id int64) error {
	reservations, err := s.reservations.DeleteByFacility(ctx, id)
	if err != nil {
		s.logger.Error("%s: failed to delete reservations of facility id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	favorites, err := s.favorites.DeleteByFacility(ctx, id)
	if err != nil {
		s.logger.Error("%s: failed to delete favorites of facility id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if err := s.facilities.Delete(ctx, id); err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			return ErrFacilityNotFound
		}
		s.logger.Error("%s: failed to delete facility id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: facility id=%d removed with %d reservations and %d favorites", op, id, reservations, favorites)
	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Facility, error) {
	f, err := s.facilities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("%s: facility id=%d not found", op, id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("%s: repository error for facility id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return f, nil
}

func (s *Service) getListed(ctx context.Context, op string, id int64) (*domain.Facility, error) {
	f, err := s.get(ctx, op, id)
	if err != nil {
		return nil, err
	}
	if !f.IsListed() {
		return nil, ErrFacilityNotFound
	}
	return f, nil
}

// getOwned не различает "нет такой" и "чужая": в обоих случаях ErrFacilityNotFound
func (s *Service) getOwned(ctx context.Context, op string, id, ownerID int64) (*domain.Facility, error) {
	f, err := s.get(ctx, op, id)
	if err != nil {
		return nil, err
	}
	if !f.IsOwnedBy(ownerID) {
		s.logger.Warn("%s: facility id=%d is not owned by user=%d", op, id, ownerID)
		return nil, ErrFacilityNotFound
	}
	return f, nil
}

func applyImage(f *domain.Facility, filename *string) error {
	if filename == nil || strings.TrimSpace(*filename) == "" {
		return nil
	}

	ref, err := domain.ImageRef(f.Name, *f.OwnerID, *filename)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	f.ImageRef = &ref
	return nil
}
