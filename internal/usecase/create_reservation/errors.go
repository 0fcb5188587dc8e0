package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (вина вызывающего, повтор бесполезен)
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при ошибках хранилища.
	// Ожидаемые бизнес-исходы (нет мест, вне часов работы и т.д.)
	// ошибками не являются и возвращаются как Outcome.
	ErrInternal = errors.New("create_reservation: internal error")
)
