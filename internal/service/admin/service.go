package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	userRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/admin/models"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	authModels "github.com/m04kA/SMC-CanchaBooking/internal/service/auth/models"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
	reservationModels "github.com/m04kA/SMC-CanchaBooking/internal/service/reservations/models"
)

// Service сервис панели администратора
type Service struct {
	users              UserRepository
	reservations       ReservationRepository
	favorites          FavoriteCleaner
	facilities         FacilityCleaner
	stats              StatsRepository
	hasher             PasswordHasher
	txManager          TransactionManager
	timeProvider       TimeProvider
	recentReservations uint64
	logger             Logger
}

// Deps зависимости сервиса администратора
type Deps struct {
	Users              UserRepository
	Reservations       ReservationRepository
	Favorites          FavoriteCleaner
	Facilities         FacilityCleaner
	Stats              StatsRepository
	Hasher             PasswordHasher
	TxManager          TransactionManager
	TimeProvider       TimeProvider
	RecentReservations int
	Logger             Logger
}

// NewService создает новый экземпляр сервиса администратора
func NewService(deps Deps) *Service {
	recent := deps.RecentReservations
	if recent <= 0 {
		recent = domain.DefaultRecentReservations
	}
	return &Service{
		users:              deps.Users,
		reservations:       deps.Reservations,
		favorites:          deps.Favorites,
		facilities:         deps.Facilities,
		stats:              deps.Stats,
		hasher:             deps.Hasher,
		txManager:          deps.TxManager,
		timeProvider:       deps.TimeProvider,
		recentReservations: uint64(recent),
		logger:             deps.Logger,
	}
}

// Dashboard счётчики платформы и последние бронирования
func (s *Service) Dashboard(ctx context.Context, identity domain.Identity) (*models.DashboardResponse, error) {
	if err := guard.RequireAdmin(identity); err != nil {
		return nil, err
	}

	stats, err := s.stats.Platform(ctx)
	if err != nil {
		s.logger.Error("Dashboard: stats error: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	recent, err := s.reservations.ListAll(ctx, s.recentReservations)
	if err != nil {
		s.logger.Error("Dashboard: reservations error: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	return &models.DashboardResponse{
		Stats:              models.FromDomainStats(stats),
		RecentReservations: reservationModels.FromDomainReservationList(recent, s.timeProvider.Now()),
	}, nil
}

// ListUsers все пользователи
func (s *Service) ListUsers(ctx context.Context, identity domain.Identity) ([]*authModels.UserResponse, error) {
	if err := guard.RequireAdmin(identity); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error("ListUsers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUsers - repository error: %v", ErrInternal, err)
	}
	return authModels.FromDomainUserList(users), nil
}

// UpdateUser правка любого пользователя, включая роль
func (s *Service) UpdateUser(ctx context.Context, identity domain.Identity, id int64, req *models.UpdateUserRequest) (*authModels.UserResponse, error) {
	if err := guard.RequireAdmin(identity); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("UpdateUser: admin=%d updating user=%d", identity.UserID, id)

	if err := auth.ValidateProfile(req.Name, email, req.Age, req.Address); err != nil {
		s.logger.Warn("UpdateUser: validation failed for user=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if id == identity.UserID && role != domain.RoleAdmin {
		s.logger.Warn("UpdateUser: admin=%d tried to change own role to %s", id, role)
		return nil, ErrSelfDemote
	}
	if req.NewPassword != "" {
		if err := auth.ValidatePassword(req.NewPassword); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	user, err := s.getUser(ctx, "UpdateUser", id)
	if err != nil {
		return nil, err
	}

	taken, err := s.users.EmailTakenByOther(ctx, email, id)
	if err != nil {
		s.logger.Error("UpdateUser: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateUser - repository error: %v", ErrInternal, err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = email
	user.Age = req.Age
	user.Address = req.Address
	user.Role = role
	user.PasswordHash = ""
	if req.NewPassword != "" {
		if user.PasswordHash, err = s.hasher.Hash(req.NewPassword); err != nil {
			return nil, fmt.Errorf("%w: UpdateUser - %v", ErrInternal, err)
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, userRepo.ErrEmailTaken):
			return nil, ErrEmailTaken
		case errors.Is(err, userRepo.ErrUserNotFound):
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateUser: repository error for user=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateUser: user=%d updated, role=%s", id, role)
	return authModels.FromDomainUser(user), nil
}

// DeleteUser удаляет пользователя и всё, что на него ссылается, одной транзакцией:
// его бронирования и избранное, бронирования и избранное на его площадках, сами площадки.
func (s *Service) DeleteUser(ctx context.Context, identity domain.Identity, id int64) error {
	if err := guard.RequireAdmin(identity); err != nil {
		return err
	}
	if identity.UserID == id {
		s.logger.Warn("DeleteUser: admin=%d tried to delete own account", id)
		return ErrSelfDelete
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.getUser(ctx, "DeleteUser", id); err != nil {
			return err
		}

		steps := []struct {
			name string
			run  func(ctx context.Context, id int64) (int64, error)
		}{
			{"own reservations", s.reservations.DeleteByUser},
			{"own favorites", s.favorites.DeleteByUser},
			{"reservations on owned facilities", s.reservations.DeleteByFacilityOwner},
			{"favorites on owned facilities", s.favorites.DeleteByFacilityOwner},
			{"owned facilities", s.facilities.DeleteByOwner},
		}
		for _, step := range steps {
			n, err := step.run(ctx, id)
			if err != nil {
				s.logger.Error("DeleteUser: failed to delete %s of user=%d: %v", step.name, id, err)
				return fmt.Errorf("%w: DeleteUser - %s: %v", ErrInternal, step.name, err)
			}
			s.logger.Info("DeleteUser: deleted %d %s of user=%d", n, step.name, id)
		}

		if err := s.users.Delete(ctx, id); err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("%w: DeleteUser - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("DeleteUser: admin=%d deleted user=%d", identity.UserID, id)
	return nil
}

func (s *Service) getUser(ctx context.Context, op string, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user=%d not found", op, id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: repository error for user=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return user, nil
}
