package create_facility

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/facilities/models"
)

type FacilityService interface {
	Create(ctx context.Context, identity domain.Identity, req *models.FacilityRequest) (*models.FacilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
