package directory

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден в каталоге
	ErrUserNotFound = errors.New("directory client: user not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("directory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("directory client: invalid response")
)
