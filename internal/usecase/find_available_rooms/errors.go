package find_available_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidWindow возвращается, когда начало окна не раньше конца
	ErrInvalidWindow = errors.New("start must be before end")
)
