package favorite

import "errors"

var (
	// ErrAlreadyFavorite возвращается, когда площадка уже в избранном
	ErrAlreadyFavorite = errors.New("favorite.repository: already in favorites")

	// ErrFacilityNotFound возвращается, когда площадки для избранного не существует
	ErrFacilityNotFound = errors.New("favorite.repository: facility not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("favorite.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("favorite.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("favorite.repository: failed to scan row")
)
