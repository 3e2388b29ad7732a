package check_availability

import (
	"time"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	checkAvailability "github.com/m04kA/SMC-CanchaBooking/internal/usecase/check_availability"
)

// ToUseCaseRequest создает запрос use case из параметров маршрута и query
func ToUseCaseRequest(facilityID int64, dateStr string) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		FacilityID: facilityID,
		Date:       date,
	}, nil
}
