package get_owner_dashboard

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/dashboards/models"
)

type DashboardService interface {
	OwnerDashboard(ctx context.Context, identity domain.Identity) (*models.OwnerDashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
