package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

var (
	// ErrInvalidToken возвращается для подделанного, просроченного или чужого токена
	ErrInvalidToken = errors.New("auth.tokens: invalid token")

	// ErrSignToken возвращается при ошибке подписи
	ErrSignToken = errors.New("auth.tokens: failed to sign token")
)

// Claims содержимое токена сессии; ID (jti) - ключ сессии в хранилище
type Claims struct {
	UserID int64  `json:"uid"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет HS256 токены сессий
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager создает менеджер токенов
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock подменяет часы (для тестов)
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	m.now = now
	return m
}

// TTL время жизни сессии
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// IssuedToken подписанный токен и ключ его сессии
type IssuedToken struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
}

// Issue выпускает новый токен с уникальным jti
func (m *TokenManager) Issue(identity domain.Identity) (*IssuedToken, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	sessionID := uuid.NewString()

	claims := Claims{
		UserID: identity.UserID,
		Role:   identity.Role.String(),
		Name:   identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    m.issuer,
			Subject:   fmt.Sprintf("%d", identity.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignToken, err)
	}

	return &IssuedToken{Token: signed, SessionID: sessionID, ExpiresAt: expiresAt}, nil
}

// Parse проверяет подпись, алгоритм, издателя и срок действия
func (m *TokenManager) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ID == "" || claims.UserID == 0 {
		return nil, fmt.Errorf("%w: missing session id or user id", ErrInvalidToken)
	}
	return claims, nil
}
