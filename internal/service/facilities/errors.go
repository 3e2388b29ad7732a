package facilities

import "errors"

var (
	// ErrFacilityNotFound площадка не найдена или не принадлежит владельцу
	ErrFacilityNotFound = errors.New("facilities: facility not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("facilities: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("facilities: internal error")
)
