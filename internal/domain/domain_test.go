package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReservation_DisplayStatus(t *testing.T) {
	today := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		date   time.Time
		status domain.ReservationStatus
		want   domain.DisplayStatus
	}{
		{"past pending", date(2025, 5, 31), domain.StatusPending, domain.DisplayCompleted},
		{"past completed", date(2025, 5, 1), domain.StatusCompleted, domain.DisplayCompleted},
		{"today", date(2025, 6, 1), domain.StatusPending, domain.DisplayToday},
		{"future", date(2025, 6, 2), domain.StatusPending, domain.DisplayUpcoming},
		{"cancelled future", date(2025, 6, 10), domain.StatusCancelled, domain.DisplayCancelled},
		{"cancelled past", date(2025, 5, 10), domain.StatusCancelled, domain.DisplayCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &domain.Reservation{BookingDate: tt.date, Status: tt.status}
			assert.Equal(t, tt.want, r.DisplayStatus(today))
		})
	}
}

func TestReservation_CanBeCancelled(t *testing.T) {
	today := date(2025, 6, 1)

	assert.True(t, (&domain.Reservation{BookingDate: today, Status: domain.StatusPending}).CanBeCancelled(today))
	assert.True(t, (&domain.Reservation{BookingDate: date(2025, 6, 5), Status: domain.StatusPending}).CanBeCancelled(today))
	assert.False(t, (&domain.Reservation{BookingDate: date(2025, 5, 31), Status: domain.StatusPending}).CanBeCancelled(today))
	assert.False(t, (&domain.Reservation{BookingDate: today, Status: domain.StatusCancelled}).CanBeCancelled(today))
	assert.False(t, (&domain.Reservation{BookingDate: today, Status: domain.StatusCompleted}).CanBeCancelled(today))
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Role
		wantErr bool
	}{
		{"usuario", domain.RoleUser, false},
		{"user", domain.RoleUser, false},
		{"dueño", domain.RoleOwner, false},
		{"Owner", domain.RoleOwner, false},
		{"administrador", domain.RoleAdmin, false},
		{" admin ", domain.RoleAdmin, false},
		{"root", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseRole(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistrationRole(t *testing.T) {
	assert.Equal(t, domain.RoleUser, domain.RegistrationRole(""))
	assert.Equal(t, domain.RoleUser, domain.RegistrationRole("usuario"))
	assert.Equal(t, domain.RoleOwner, domain.RegistrationRole("dueño"))
	assert.Equal(t, domain.RoleUser, domain.RegistrationRole("administrador"))
	assert.Equal(t, domain.RoleUser, domain.RegistrationRole("superuser"))
}

func TestIdentity_HasRole(t *testing.T) {
	admin := domain.Identity{UserID: 1, Role: domain.RoleAdmin}
	owner := domain.Identity{UserID: 2, Role: domain.RoleOwner}

	assert.True(t, admin.HasRole(domain.RoleAdmin))
	assert.False(t, admin.HasRole(domain.RoleOwner))
	assert.True(t, owner.IsOwner())
	assert.False(t, domain.Anonymous.HasRole(domain.RoleUser, domain.RoleOwner, domain.RoleAdmin))
	assert.True(t, domain.Anonymous.IsAnonymous())
}

func TestImageRef(t *testing.T) {
	ref, err := domain.ImageRef("Cancha Central Norte", 7, "foto.JPG")
	require.NoError(t, err)
	assert.Equal(t, "canchas_uploads/Cancha_Central_Norte_7.jpg", ref)

	again, err := domain.ImageRef("Cancha Central Norte", 7, "otra.jpg")
	require.NoError(t, err)
	assert.Equal(t, ref, again)

	_, err = domain.ImageRef("Cancha", 7, "script.exe")
	assert.ErrorIs(t, err, domain.ErrUnsupportedImage)

	_, err = domain.ImageRef("Cancha", 7, "noextension")
	assert.ErrorIs(t, err, domain.ErrUnsupportedImage)
}

func TestNormalizeTimeSlot(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"plain", "18:00", "18:00"},
		{"trimmed", "  18:00 ", "18:00"},
		{"inner whitespace collapsed", "18:00  -\t19:00", "18:00 - 19:00"},
		{"non ascii label", "Mañana", "Mañana"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NormalizeTimeSlot(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	invalid := map[string]string{
		"empty":         "",
		"blank":         "   ",
		"too long":      "18:00 - 19:00 (cancha techada)",
		"control chars": "18:00\x00",
	}
	for name, label := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := domain.NormalizeTimeSlot(label)
			assert.ErrorIs(t, err, domain.ErrInvalidTimeSlot)
		})
	}
}
