package sweep_completions

import (
	"context"
	"time"
)

// RunEvery выполняет проход сразу и затем каждые interval, пока ctx не отменён.
// Ошибка прохода только логируется: следующий тик повторит попытку.
func (uc *UseCase) RunEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := uc.Execute(ctx); err != nil {
			uc.logger.Warn("SweepCompletions: scheduled run failed: %v", err)
		}

		select {
		case <-ctx.Done():
			uc.logger.Info("SweepCompletions: scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}
