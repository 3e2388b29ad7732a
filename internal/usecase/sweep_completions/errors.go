package sweep_completions

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("sweep_completions: internal error")
)
