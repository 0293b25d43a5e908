package availability

import "errors"

var (
	// ErrInvalidBooking возвращается, когда у кандидата некорректное временное окно
	ErrInvalidBooking = errors.New("booking has invalid time window")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability service: internal error")
)
