package reservations

import "errors"

var (
	// ErrReservationNotFound бронирование не найдено, чужое или уже не может быть отменено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
