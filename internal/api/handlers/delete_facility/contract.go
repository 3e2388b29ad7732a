package delete_facility

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

type FacilityService interface {
	Delete(ctx context.Context, identity domain.Identity, id int64) error
	AdminDelete(ctx context.Context, identity domain.Identity, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
