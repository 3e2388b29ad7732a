package check_availability

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадки нет или у неё нет владельца
	ErrFacilityNotFound = errors.New("check_availability: facility not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
