package facilities

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/facilities/models"
)

func validateFacility(req *models.FacilityRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(req.Name)) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	price := strings.TrimSpace(req.Price)
	if price == "" {
		return fmt.Errorf("%w: price is required", ErrInvalidInput)
	}
	if v, err := strconv.ParseFloat(price, 64); err != nil || v < 0 {
		return fmt.Errorf("%w: price must be a non-negative number, got %q", ErrInvalidInput, req.Price)
	}

	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if len([]rune(req.Address)) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address is longer than %d characters", ErrInvalidInput, domain.MaxAddressLength)
	}
	return nil
}
