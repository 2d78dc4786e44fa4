// Package apperrors defines the request-scoped failure kinds surfaced by the
// task core. Handlers map them to HTTP statuses with errors.Is.
package apperrors

import "errors"

var (
	// ErrNotFound — задача или пользователь, на которых ссылается запрос, не существуют.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateTitle — коллизия уникального ключа при создании (title/email/username).
	ErrDuplicateTitle = errors.New("already exists")

	// ErrPermissionDenied — отказ проверки доступа к мутации задачи.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrUnauthenticated — личность вызывающего не удалось разрешить.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidArgument — битое значение enum или параметры страницы вне диапазона.
	ErrInvalidArgument = errors.New("invalid argument")
)
