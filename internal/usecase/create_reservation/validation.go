package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает нормализованную метку слота
func validateRequest(req *Request) (string, error) {
	if req.UserID <= 0 {
		return "", fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.FacilityID <= 0 {
		return "", fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	slot, err := domain.NormalizeTimeSlot(req.TimeSlot)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(req.Contact) > domain.MaxContactLength {
		return "", fmt.Errorf("%w: contact is longer than %d characters", ErrInvalidInput, domain.MaxContactLength)
	}

	if req.Message != nil && len([]rune(*req.Message)) > domain.MaxMessageLength {
		return "", fmt.Errorf("%w: message is longer than %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	return slot, nil
}

// validateDate запрещает даты раньше сегодняшней; сегодня бронировать можно
func validateDate(bookingDate, now time.Time) error {
	if domain.DateOnly(bookingDate).Before(domain.DateOnly(now)) {
		return fmt.Errorf("%w: %s is before %s", ErrInvalidDate,
			bookingDate.Format(domain.DateFormat), now.Format(domain.DateFormat))
	}
	return nil
}
