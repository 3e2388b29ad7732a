package remove_favorite_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	handler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/remove_favorite"
	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/favorites"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
	"github.com/m04kA/SMC-CanchaBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Remove(ctx context.Context, identity domain.Identity, facilityID int64) error {
	return m.Called(ctx, identity, facilityID).Error(0)
}

func serve(svc *mockService, path string, identity domain.Identity) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/favorites/{facilityId}", handler.NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, path, nil)
	req = req.WithContext(auth.WithIdentity(req.Context(), identity))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	user := domain.Identity{UserID: 3, Role: domain.RoleUser}

	tests := []struct {
		name     string
		identity domain.Identity
		err      error
		status   int
	}{
		{"removed or absent", user, nil, http.StatusNoContent},
		{"anonymous", domain.Anonymous, guard.ErrUnauthenticated, http.StatusUnauthorized},
		{"store failure", user, fmt.Errorf("%w: boom", favorites.ErrInternal), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Remove", mock.Anything, tc.identity, int64(5)).Return(tc.err)

			rec := serve(svc, "/favorites/5", tc.identity)

			assert.Equal(t, tc.status, rec.Code)
			svc.AssertExpectations(t)
		})
	}

	t.Run("removed has empty body", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Remove", mock.Anything, user, int64(5)).Return(nil)

		rec := serve(svc, "/favorites/5", user)

		assert.Empty(t, rec.Body.String())
	})
}
