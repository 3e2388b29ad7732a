package update_user

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	adminModels "github.com/m04kA/SMC-CanchaBooking/internal/service/admin/models"
	authModels "github.com/m04kA/SMC-CanchaBooking/internal/service/auth/models"
)

type AdminService interface {
	UpdateUser(ctx context.Context, identity domain.Identity, id int64, req *adminModels.UpdateUserRequest) (*authModels.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
