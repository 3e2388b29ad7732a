package auth

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateProfile проверяет общие поля регистрации и профиля
func ValidateProfile(name, email string, age int, address *string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is longer than %d characters", ErrInvalidInput, domain.MaxEmailLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: malformed email %q", ErrInvalidInput, email)
	}

	if age < domain.MinUserAge {
		return fmt.Errorf("%w: age must be at least %d", ErrInvalidInput, domain.MinUserAge)
	}

	if address != nil && len([]rune(*address)) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address is longer than %d characters", ErrInvalidInput, domain.MaxAddressLength)
	}
	return nil
}

// ValidatePassword проверяет минимальную длину пароля
func ValidatePassword(password string) error {
	if len(password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	return nil
}
