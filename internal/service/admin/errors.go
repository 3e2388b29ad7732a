package admin

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("admin: user not found")

	// ErrEmailTaken возвращается, когда email принадлежит другому пользователю
	ErrEmailTaken = errors.New("admin: email already registered")

	// ErrSelfDelete администратор не может удалить собственную учётную запись
	ErrSelfDelete = errors.New("admin: cannot delete own account")

	// ErrSelfDemote администратор не может снять с себя роль администратора
	ErrSelfDemote = errors.New("admin: cannot change own admin role")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("admin: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("admin: internal error")
)
