package guard

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

var (
	// ErrAccessDenied возвращается, когда роль не подходит для операции
	ErrAccessDenied = errors.New("guard: access denied")

	// ErrUnauthenticated частный случай отказа: нет сессии
	ErrUnauthenticated = fmt.Errorf("%w: not authenticated", ErrAccessDenied)
)

// RequireRole пропускает только идентичность с одной из ролей; аноним не проходит никогда
func RequireRole(identity domain.Identity, roles ...domain.Role) error {
	if identity.IsAnonymous() {
		return ErrUnauthenticated
	}
	if !identity.HasRole(roles...) {
		return fmt.Errorf("%w: role %q, required one of %v", ErrAccessDenied, identity.Role, roles)
	}
	return nil
}

// RequireAuthenticated пропускает любую роль с активной сессией
func RequireAuthenticated(identity domain.Identity) error {
	return RequireRole(identity, domain.RoleUser, domain.RoleOwner, domain.RoleAdmin)
}

func RequireAdmin(identity domain.Identity) error {
	return RequireRole(identity, domain.RoleAdmin)
}

func RequireOwner(identity domain.Identity) error {
	return RequireRole(identity, domain.RoleOwner)
}
