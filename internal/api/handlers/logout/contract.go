package logout

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

type AuthService interface {
	Logout(ctx context.Context, identity domain.Identity) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
