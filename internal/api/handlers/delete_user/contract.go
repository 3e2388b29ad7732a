package delete_user

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

type AdminService interface {
	DeleteUser(ctx context.Context, identity domain.Identity, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
