package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок Postgres, на которые реагируют репозитории
const (
	CodeUniqueViolation      pq.ErrorCode = "23505"
	CodeForeignKeyViolation  pq.ErrorCode = "23503"
	CodeSerializationFailure pq.ErrorCode = "40001"
)

// Code возвращает код ошибки Postgres или пустую строку
func Code(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

// Constraint имя нарушенного ограничения
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return Code(err) == CodeUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return Code(err) == CodeForeignKeyViolation
}

// IsSerializationFailure конфликт параллельных транзакций, повтор возможен
func IsSerializationFailure(err error) bool {
	return Code(err) == CodeSerializationFailure
}
