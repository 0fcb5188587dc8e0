package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservations.service: reservation not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("reservations.service: customer not found")

	// ErrCannotCancel возвращается, когда бронь нельзя отменить в текущем статусе
	ErrCannotCancel = errors.New("reservations.service: reservation cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations.service: internal error")
)
