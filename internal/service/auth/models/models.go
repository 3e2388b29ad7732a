package models

import (
	"time"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

// Request модели

// RegisterRequest запрос на регистрацию
type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Age      int     `json:"age"`
	Password string  `json:"password"`
	Address  *string `json:"address,omitempty"`
	Role     string  `json:"role,omitempty"` // "usuario" или "dueño"; всё остальное -> "usuario"
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest самостоятельное редактирование профиля
type UpdateProfileRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Age         int     `json:"age"`
	Address     *string `json:"address,omitempty"`
	NewPassword string  `json:"newPassword,omitempty"` // пусто - пароль не меняется
}

// Response модели

// UserResponse данные пользователя без хеша пароля
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	Address   *string   `json:"address,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse ответ на регистрацию и вход
type AuthResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      *UserResponse `json:"user"`
}

// FromDomainUser конвертирует domain.User в UserResponse
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		Address:   u.Address,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

// FromDomainUserList конвертирует список пользователей
func FromDomainUserList(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, FromDomainUser(u))
	}
	return result
}
