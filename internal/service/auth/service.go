package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	sessionStore "github.com/m04kA/SMC-CanchaBooking/internal/infra/session"
	userRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth/models"
)

// Service сервис регистрации, входа и сессий
type Service struct {
	users      UserRepository
	sessions   SessionStore
	tokens     *TokenManager
	bcryptCost int
	logger     Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	users UserRepository,
	sessions SessionStore,
	tokens *TokenManager,
	bcryptCost int,
	logger Logger,
) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register создает учётную запись и сразу открывает сессию.
// Запрошенная роль сводится к "usuario" или "dueño"; администратора через регистрацию не получить.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	s.logger.Info("Register: registering email=%s, requested role=%q", email, req.Role)

	if err := ValidateProfile(req.Name, email, req.Age, req.Address); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", email, err)
		return nil, err
	}
	if err := ValidatePassword(req.Password); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", email, err)
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		s.logger.Warn("Register: email=%s already registered", email)
		return nil, ErrEmailTaken
	} else if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("Register: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	hash, err := hashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: %v", err)
		return nil, fmt.Errorf("%w: Register - %v", ErrInternal, err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Age:          req.Age,
		PasswordHash: hash,
		Address:      req.Address,
		Role:         domain.RegistrationRole(req.Role),
	})
	if err != nil {
		// Гонка двух регистраций с одним email ловится уникальным индексом
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email=%s taken concurrently", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: failed to create user email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created user id=%d role=%s", created.ID, created.Role)
	return s.openSession(ctx, "Register", created)
}

// Authenticate проверяет email и пароль и открывает сессию
func (s *Service) Authenticate(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	s.logger.Info("Authenticate: login attempt for email=%s", email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Authenticate: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Authenticate: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	ok, err := checkPassword(user.PasswordHash, req.Password)
	if err != nil {
		s.logger.Error("Authenticate: broken password hash for user=%d: %v", user.ID, err)
		return nil, ErrInvalidCredentials
	}
	if !ok {
		s.logger.Warn("Authenticate: wrong password for user=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	return s.openSession(ctx, "Authenticate", user)
}

// ResolveToken восстанавливает идентичность по токену.
// Роль и имя берутся из базы, чтобы правки администратора действовали сразу.
func (s *Service) ResolveToken(ctx context.Context, token string) (domain.Identity, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return domain.Anonymous, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	userID, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			return domain.Anonymous, fmt.Errorf("%w: session closed", ErrUnauthenticated)
		}
		s.logger.Error("ResolveToken: session store error: %v", err)
		return domain.Anonymous, fmt.Errorf("%w: ResolveToken - session store error: %v", ErrInternal, err)
	}
	if userID != claims.UserID {
		s.logger.Warn("ResolveToken: session %s belongs to user=%d, token says user=%d", claims.ID, userID, claims.UserID)
		return domain.Anonymous, fmt.Errorf("%w: session owner mismatch", ErrUnauthenticated)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			_ = s.sessions.Delete(ctx, claims.ID)
			return domain.Anonymous, fmt.Errorf("%w: user deleted", ErrUnauthenticated)
		}
		s.logger.Error("ResolveToken: repository error for user=%d: %v", userID, err)
		return domain.Anonymous, fmt.Errorf("%w: ResolveToken - repository error: %v", ErrInternal, err)
	}

	identity := user.Identity()
	identity.SessionID = claims.ID
	return identity, nil
}

// Logout закрывает сессию; повторный выход не ошибка
func (s *Service) Logout(ctx context.Context, identity domain.Identity) error {
	if identity.IsAnonymous() || identity.SessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, identity.SessionID); err != nil {
		s.logger.Error("Logout: failed to delete session for user=%d: %v", identity.UserID, err)
		return fmt.Errorf("%w: Logout - session store error: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: user=%d logged out", identity.UserID)
	return nil
}

// Profile возвращает данные текущего пользователя
func (s *Service) Profile(ctx context.Context, identity domain.Identity) (*models.UserResponse, error) {
	if identity.IsAnonymous() {
		return nil, ErrUnauthenticated
	}

	user, err := s.getUser(ctx, "Profile", identity.UserID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainUser(user), nil
}

// UpdateProfile самостоятельное редактирование профиля; роль не меняется
func (s *Service) UpdateProfile(ctx context.Context, identity domain.Identity, req *models.UpdateProfileRequest) (*models.UserResponse, error) {
	if identity.IsAnonymous() {
		return nil, ErrUnauthenticated
	}

	email := normalizeEmail(req.Email)
	s.logger.Info("UpdateProfile: updating user=%d", identity.UserID)

	if err := ValidateProfile(req.Name, email, req.Age, req.Address); err != nil {
		s.logger.Warn("UpdateProfile: validation failed for user=%d: %v", identity.UserID, err)
		return nil, err
	}
	if req.NewPassword != "" {
		if err := ValidatePassword(req.NewPassword); err != nil {
			s.logger.Warn("UpdateProfile: validation failed for user=%d: %v", identity.UserID, err)
			return nil, err
		}
	}

	taken, err := s.users.EmailTakenByOther(ctx, email, identity.UserID)
	if err != nil {
		s.logger.Error("UpdateProfile: repository error for user=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}
	if taken {
		s.logger.Warn("UpdateProfile: email=%s belongs to another user", email)
		return nil, ErrEmailTaken
	}

	user, err := s.getUser(ctx, "UpdateProfile", identity.UserID)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = email
	user.Age = req.Age
	user.Address = req.Address
	user.PasswordHash = ""
	if req.NewPassword != "" {
		if user.PasswordHash, err = hashPassword(req.NewPassword, s.bcryptCost); err != nil {
			return nil, fmt.Errorf("%w: UpdateProfile - %v", ErrInternal, err)
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateProfile: failed to update user=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: user=%d updated", identity.UserID)
	return models.FromDomainUser(user), nil
}

// EnsureAdmin создает администратора или повышает существующего пользователя.
// Повторный вызов ничего не меняет; created=true только при создании новой записи.
func (s *Service) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = normalizeEmail(email)

	existing, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role == domain.RoleAdmin {
			s.logger.Info("EnsureAdmin: admin email=%s already exists", email)
			return false, nil
		}
		existing.Role = domain.RoleAdmin
		existing.PasswordHash = ""
		if err := s.users.Update(ctx, existing); err != nil {
			return false, fmt.Errorf("%w: EnsureAdmin - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("EnsureAdmin: promoted user=%d to admin", existing.ID)
		return false, nil
	case !errors.Is(err, userRepo.ErrUserNotFound):
		return false, fmt.Errorf("%w: EnsureAdmin - repository error: %v", ErrInternal, err)
	}

	if err := ValidateProfile(name, email, domain.MinUserAge, nil); err != nil {
		return false, err
	}
	if err := ValidatePassword(password); err != nil {
		return false, err
	}

	hash, err := hashPassword(password, s.bcryptCost)
	if err != nil {
		return false, fmt.Errorf("%w: EnsureAdmin - %v", ErrInternal, err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		Age:          domain.MinUserAge,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		return false, fmt.Errorf("%w: EnsureAdmin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("EnsureAdmin: created admin id=%d", created.ID)
	return true, nil
}

func (s *Service) openSession(ctx context.Context, op string, user *domain.User) (*models.AuthResponse, error) {
	issued, err := s.tokens.Issue(user.Identity())
	if err != nil {
		s.logger.Error("%s: failed to issue token for user=%d: %v", op, user.ID, err)
		return nil, fmt.Errorf("%w: %s - %v", ErrInternal, op, err)
	}

	if err := s.sessions.Save(ctx, issued.SessionID, user.ID, s.tokens.TTL()); err != nil {
		s.logger.Error("%s: failed to save session for user=%d: %v", op, user.ID, err)
		return nil, fmt.Errorf("%w: %s - session store error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: session opened for user=%d", op, user.ID)
	return &models.AuthResponse{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		User:      models.FromDomainUser(user),
	}, nil
}

func (s *Service) getUser(ctx context.Context, op string, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: repository error for user=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return user, nil
}
