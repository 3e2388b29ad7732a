package auth

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("auth: email already registered")

	// ErrInvalidCredentials неизвестный email или неверный пароль
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrUnauthenticated токен невалиден, сессия закрыта или пользователь удалён
	ErrUnauthenticated = errors.New("auth: not authenticated")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
