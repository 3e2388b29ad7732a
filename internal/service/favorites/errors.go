package favorites

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадки не существует
	ErrFacilityNotFound = errors.New("favorites: facility not found")

	// ErrAlreadyFavorite возвращается, когда площадка уже в избранном
	ErrAlreadyFavorite = errors.New("favorites: already in favorites")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("favorites: internal error")
)
