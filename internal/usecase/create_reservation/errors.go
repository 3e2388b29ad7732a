package create_reservation

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадки нет или у неё нет владельца
	ErrFacilityNotFound = errors.New("create_reservation: facility not found")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_reservation: booking date is in the past")

	// ErrSlotTaken возвращается, когда слот уже занят неотменённым бронированием
	ErrSlotTaken = errors.New("create_reservation: slot already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
