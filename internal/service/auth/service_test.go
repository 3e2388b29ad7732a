package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/session"
	userRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth/models"
	"github.com/m04kA/SMC-CanchaBooking/pkg/logger"
)

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsers) EmailTakenByOther(ctx context.Context, email string, exceptID int64) (bool, error) {
	args := m.Called(ctx, email, exceptID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUsers) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newService(users *mockUsers) *auth.Service {
	store := session.NewMemoryStore().WithClock(func() time.Time { return now })
	tokens := auth.NewTokenManager("test-secret", "canchas", time.Hour).WithClock(func() time.Time { return now })
	return auth.NewService(users, store, tokens, bcrypt.MinCost, logger.NewNop())
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("age 17 is rejected", func(t *testing.T) {
		users := &mockUsers{}
		svc := newService(users)

		_, err := svc.Register(ctx, &models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Age: 17, Password: "abc123"})

		assert.ErrorIs(t, err, auth.ErrInvalidInput)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		svc := newService(&mockUsers{})

		_, err := svc.Register(ctx, &models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Age: 20, Password: "abc12"})

		assert.ErrorIs(t, err, auth.ErrInvalidInput)
	})

	t.Run("age 18 with abc123 gets default role even when admin requested", func(t *testing.T) {
		users := &mockUsers{}
		svc := newService(users)
		stored := &domain.User{ID: 7, Name: "Ana", Email: "ana@example.com", Age: 18, Role: domain.RoleUser}
		users.On("GetByEmail", ctx, "ana@example.com").Return(nil, userRepo.ErrUserNotFound)
		users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == domain.RoleUser && u.Email == "ana@example.com" && u.Age == 18 &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("abc123")) == nil
		})).Return(stored, nil).Once()
		users.On("GetByID", ctx, int64(7)).Return(stored, nil)

		resp, err := svc.Register(ctx, &models.RegisterRequest{
			Name: "Ana", Email: " Ana@Example.com ", Age: 18, Password: "abc123", Role: "administrador",
		})

		require.NoError(t, err)
		assert.Equal(t, "usuario", resp.User.Role)
		assert.NotEmpty(t, resp.Token)

		identity, err := svc.ResolveToken(ctx, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), identity.UserID)
		users.AssertExpectations(t)
	})

	t.Run("owner role is honoured", func(t *testing.T) {
		users := &mockUsers{}
		svc := newService(users)
		users.On("GetByEmail", ctx, "bob@example.com").Return(nil, userRepo.ErrUserNotFound)
		users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool { return u.Role == domain.RoleOwner })).
			Return(&domain.User{ID: 8, Name: "Bob", Email: "bob@example.com", Age: 30, Role: domain.RoleOwner}, nil)

		resp, err := svc.Register(ctx, &models.RegisterRequest{Name: "Bob", Email: "bob@example.com", Age: 30, Password: "secret1", Role: "dueño"})

		require.NoError(t, err)
		assert.Equal(t, "dueño", resp.User.Role)
	})

	t.Run("taken email is a conflict", func(t *testing.T) {
		users := &mockUsers{}
		svc := newService(users)
		users.On("GetByEmail", ctx, "ana@example.com").Return(&domain.User{ID: 1}, nil)

		_, err := svc.Register(ctx, &models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Age: 20, Password: "abc123"})

		assert.ErrorIs(t, err, auth.ErrEmailTaken)
	})

	t.Run("unique violation race is a conflict", func(t *testing.T) {
		users := &mockUsers{}
		svc := newService(users)
		users.On("GetByEmail", ctx, "ana@example.com").Return(nil, userRepo.ErrUserNotFound)
		users.On("Create", ctx, mock.Anything).Return(nil, userRepo.ErrEmailTaken)

		_, err := svc.Register(ctx, &models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Age: 20, Password: "abc123"})

		assert.ErrorIs(t, err, auth.ErrEmailTaken)
	})
}

func TestService_AuthenticateAndResolve(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: 3, Name: "Ana", Email: "ana@example.com", Age: 25, Role: domain.RoleUser, PasswordHash: hashed(t, "abc123")}

	t.Run("unknown email", func(t *testing.T) {
		users := &mockUsers{}
		svc := newService(users)
		users.On("GetByEmail", ctx, "nobody@example.com").Return(nil, userRepo.ErrUserNotFound)

		_, err := svc.Authenticate(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "abc123"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := &mockUsers{}
		svc := newService(users)
		users.On("GetByEmail", ctx, "ana@example.com").Return(user, nil)

		_, err := svc.Authenticate(ctx, &models.LoginRequest{Email: "ana@example.com", Password: "wrong1"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("session round trip and logout", func(t *testing.T) {
		users := &mockUsers{}
		svc := newService(users)
		users.On("GetByEmail", ctx, "ana@example.com").Return(user, nil)
		users.On("GetByID", ctx, int64(3)).Return(user, nil)

		resp, err := svc.Authenticate(ctx, &models.LoginRequest{Email: "ana@example.com", Password: "abc123"})
		require.NoError(t, err)

		identity, err := svc.ResolveToken(ctx, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(3), identity.UserID)
		assert.Equal(t, domain.RoleUser, identity.Role)
		assert.Equal(t, "Ana", identity.Name)
		assert.NotEmpty(t, identity.SessionID)

		require.NoError(t, svc.Logout(ctx, identity))

		_, err = svc.ResolveToken(ctx, resp.Token)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := newService(&mockUsers{})

		_, err := svc.ResolveToken(ctx, "not-a-token")

		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("deleted user loses session", func(t *testing.T) {
		users := &mockUsers{}
		svc := newService(users)
		users.On("GetByEmail", ctx, "ana@example.com").Return(user, nil)
		users.On("GetByID", ctx, int64(3)).Return(nil, userRepo.ErrUserNotFound)

		resp, err := svc.Authenticate(ctx, &models.LoginRequest{Email: "ana@example.com", Password: "abc123"})
		require.NoError(t, err)

		_, err = svc.ResolveToken(ctx, resp.Token)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	identity := domain.Identity{UserID: 3, Role: domain.RoleUser}

	t.Run("email of another user is a conflict", func(t *testing.T) {
		users := &mockUsers{}
		svc := newService(users)
		users.On("EmailTakenByOther", ctx, "bob@example.com", int64(3)).Return(true, nil)

		_, err := svc.UpdateProfile(ctx, identity, &models.UpdateProfileRequest{Name: "Ana", Email: "bob@example.com", Age: 25})

		assert.ErrorIs(t, err, auth.ErrEmailTaken)
	})

	t.Run("keeps password when none given", func(t *testing.T) {
		users := &mockUsers{}
		svc := newService(users)
		users.On("EmailTakenByOther", ctx, "ana@example.com", int64(3)).Return(false, nil)
		users.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3, Name: "Ana", Role: domain.RoleUser, PasswordHash: "old"}, nil)
		users.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.PasswordHash == "" && u.Name == "Ana María" && u.Role == domain.RoleUser
		})).Return(nil)

		resp, err := svc.UpdateProfile(ctx, identity, &models.UpdateProfileRequest{Name: "Ana María", Email: "ana@example.com", Age: 26})

		require.NoError(t, err)
		assert.Equal(t, "Ana María", resp.Name)
		users.AssertExpectations(t)
	})

	t.Run("short new password is rejected", func(t *testing.T) {
		svc := newService(&mockUsers{})

		_, err := svc.UpdateProfile(ctx, identity, &models.UpdateProfileRequest{Name: "Ana", Email: "ana@example.com", Age: 25, NewPassword: "123"})

		assert.ErrorIs(t, err, auth.ErrInvalidInput)
	})
}

func TestService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates when absent", func(t *testing.T) {
		users := &mockUsers{}
		svc := newService(users)
		users.On("GetByEmail", ctx, "admin@example.com").Return(nil, userRepo.ErrUserNotFound)
		users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool { return u.Role == domain.RoleAdmin })).
			Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)

		created, err := svc.EnsureAdmin(ctx, "Admin", "admin@example.com", "admin123")

		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("idempotent when already admin", func(t *testing.T) {
		users := &mockUsers{}
		svc := newService(users)
		users.On("GetByEmail", ctx, "admin@example.com").Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)

		created, err := svc.EnsureAdmin(ctx, "Admin", "admin@example.com", "admin123")

		require.NoError(t, err)
		assert.False(t, created)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
