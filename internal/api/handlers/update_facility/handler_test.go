package update_facility_test

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

	handler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/update_facility"
	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/facilities"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/facilities/models"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/guard"
	"github.com/m04kA/SMC-CanchaBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Update(ctx context.Context, identity domain.Identity, id int64, req *models.FacilityRequest) (*models.FacilityResponse, error) {
	args := m.Called(ctx, identity, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FacilityResponse), args.Error(1)
}

const validBody = `{"name":"Cancha A","price":"50000","description":"Sintética","address":"Calle 5"}`

func serve(svc *mockService, path, body string, identity domain.Identity) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/owner/facilities/{facilityId}", handler.NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req = req.WithContext(auth.WithIdentity(req.Context(), identity))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	owner := domain.Identity{UserID: 2, Role: domain.RoleOwner}

	t.Run("updated keeps image when filename omitted", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Update", mock.Anything, owner, int64(5), mock.MatchedBy(func(req *models.FacilityRequest) bool {
			return req.Name == "Cancha A" && req.ImageFilename == nil
		})).Return(&models.FacilityResponse{ID: 5, Name: "Cancha A", Price: "50000"}, nil)

		rec := serve(svc, "/owner/facilities/5", validBody, owner)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"price":"50000"`)
		svc.AssertExpectations(t)
	})

	errorCases := []struct {
		name   string
		err    error
		status int
	}{
		{"anonymous", guard.ErrUnauthenticated, http.StatusUnauthorized},
		{"plain user", guard.ErrAccessDenied, http.StatusForbidden},
		{"foreign facility", facilities.ErrFacilityNotFound, http.StatusNotFound},
		{"non numeric price", fmt.Errorf("%w: price", facilities.ErrInvalidInput), http.StatusBadRequest},
		{"store failure", fmt.Errorf("%w: boom", facilities.ErrInternal), http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Update", mock.Anything, owner, int64(5), mock.Anything).Return(nil, tc.err)

			rec := serve(svc, "/owner/facilities/5", validBody, owner)

			assert.Equal(t, tc.status, rec.Code)
		})
	}

	t.Run("unknown field", func(t *testing.T) {
		svc := &mockService{}

		rec := serve(svc, "/owner/facilities/5", `{"name":"Cancha A","ownerId":9}`, owner)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
