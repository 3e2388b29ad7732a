package update_user_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	handler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/update_user"
	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/admin"
	adminModels "github.com/m04kA/SMC-CanchaBooking/internal/service/admin/models"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	authModels "github.com/m04kA/SMC-CanchaBooking/internal/service/auth/models"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
	"github.com/m04kA/SMC-CanchaBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UpdateUser(ctx context.Context, identity domain.Identity, id int64, req *adminModels.UpdateUserRequest) (*authModels.UserResponse, error) {
	args := m.Called(ctx, identity, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authModels.UserResponse), args.Error(1)
}

const validBody = `{"name":"Bob","email":"bob@example.com","age":30,"role":"dueño"}`

func serve(svc *mockService, path, body string, identity domain.Identity) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/admin/users/{userId}", handler.NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req = req.WithContext(auth.WithIdentity(req.Context(), identity))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	root := domain.Identity{UserID: 1, Role: domain.RoleAdmin}

	t.Run("updated", func(t *testing.T) {
		svc := &mockService{}
		svc.On("UpdateUser", mock.Anything, root, int64(3), mock.MatchedBy(func(req *adminModels.UpdateUserRequest) bool {
			return req.Role == "dueño" && req.Email == "bob@example.com"
		})).Return(&authModels.UserResponse{ID: 3, Name: "Bob", Role: "dueño"}, nil)

		rec := serve(svc, "/admin/users/3", validBody, root)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"dueño"`)
		svc.AssertExpectations(t)
	})

	errorCases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"anonymous", guard.ErrUnauthenticated, http.StatusUnauthorized, "debes iniciar sesión"},
		{"not an admin", guard.ErrAccessDenied, http.StatusForbidden, "acceso denegado"},
		{"invalid role", fmt.Errorf("%w: unknown role", admin.ErrInvalidInput), http.StatusBadRequest, ""},
		{"admin demoting self", admin.ErrSelfDemote, http.StatusBadRequest, "no puedes quitarte el rol de administrador"},
		{"email taken", admin.ErrEmailTaken, http.StatusConflict, ""},
		{"unknown user", admin.ErrUserNotFound, http.StatusNotFound, ""},
		{"store failure", fmt.Errorf("%w: boom", admin.ErrInternal), http.StatusInternalServerError, "error interno del servidor"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("UpdateUser", mock.Anything, root, int64(3), mock.Anything).Return(nil, tc.err)

			rec := serve(svc, "/admin/users/3", validBody, root)

			assert.Equal(t, tc.status, rec.Code)
			if tc.body != "" {
				assert.Contains(t, rec.Body.String(), tc.body)
			}
		})
	}

	badRequests := []struct {
		name string
		path string
		body string
	}{
		{"bad id", "/admin/users/x", validBody},
		{"unknown field", "/admin/users/3", `{"name":"Bob","isAdmin":true}`},
		{"empty body", "/admin/users/3", ""},
	}
	for _, tc := range badRequests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockService{}

			rec := serve(svc, tc.path, tc.body, root)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
