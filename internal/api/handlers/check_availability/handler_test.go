package check_availability_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	handler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/check_availability"
	checkAvailability "github.com/m04kA/SMC-CanchaBooking/internal/usecase/check_availability"
	"github.com/m04kA/SMC-CanchaBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkAvailability.Response), args.Error(1)
}

func serve(uc *mockUseCase, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/facilities/{facilityId}/availability", handler.NewHandler(uc, logger.NewNop()).Handle).
		Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("occupied slots for facility and date", func(t *testing.T) {
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *checkAvailability.Request) bool {
			return r.FacilityID == 5 && r.Date.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
		})).Return(&checkAvailability.Response{FacilityID: 5, Date: "2025-06-01", OccupiedSlots: []string{"18:00", "20:00"}}, nil)

		rec := serve(uc, "/facilities/5/availability?date=2025-06-01")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"facilityId":5,"date":"2025-06-01","occupiedSlots":["18:00","20:00"]}`, rec.Body.String())
		uc.AssertExpectations(t)
	})

	badRequests := []struct {
		name string
		path string
	}{
		{"missing date", "/facilities/5/availability"},
		{"malformed date", "/facilities/5/availability?date=01/06/2025"},
		{"non numeric facility", "/facilities/abc/availability?date=2025-06-01"},
		{"zero facility", "/facilities/0/availability?date=2025-06-01"},
	}
	for _, tc := range badRequests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{}

			rec := serve(uc, tc.path)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}

	errorCases := []struct {
		name   string
		err    error
		status int
	}{
		{"facility not found", checkAvailability.ErrFacilityNotFound, http.StatusNotFound},
		{"invalid input", fmt.Errorf("%w: facilityID must be positive", checkAvailability.ErrInvalidInput), http.StatusBadRequest},
		{"store failure", fmt.Errorf("%w: boom", checkAvailability.ErrInternal), http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tc.err)

			rec := serve(uc, "/facilities/5/availability?date=2025-06-01")

			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}
