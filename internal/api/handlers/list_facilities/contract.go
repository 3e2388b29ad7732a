package list_facilities

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/facilities/models"
)

type FacilityService interface {
	ListPublic(ctx context.Context, identity domain.Identity) ([]*models.FacilityResponse, error)
	ListByOwner(ctx context.Context, identity domain.Identity) ([]*models.FacilityResponse, error)
	AdminListAll(ctx context.Context, identity domain.Identity) ([]*models.FacilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
