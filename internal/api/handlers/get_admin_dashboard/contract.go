package get_admin_dashboard

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/admin/models"
)

type AdminService interface {
	Dashboard(ctx context.Context, identity domain.Identity) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
