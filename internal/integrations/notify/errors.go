package notify

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notify client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("notify client: invalid response")

	// ErrSendRejected возвращается, когда сервис уведомлений отклонил отправку
	ErrSendRejected = errors.New("notify client: send rejected")
)
