package run_sweep

import (
	"context"

	sweepCompletions "github.com/m04kA/SMC-CanchaBooking/internal/usecase/sweep_completions"
)

type SweepUseCase interface {
	Execute(ctx context.Context) (*sweepCompletions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
