package middleware

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

// TokenResolver превращает bearer-токен в идентичность с живой сессией
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (domain.Identity, error)
}

// HTTPMetrics приёмник метрик HTTP-запросов
type HTTPMetrics interface {
	ObserveHTTP(method, route string, status int, seconds float64)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
