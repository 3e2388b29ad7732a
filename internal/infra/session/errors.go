package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия отсутствует или истекла
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrStore возвращается при ошибке хранилища сессий
	ErrStore = errors.New("session.store: storage error")
)
