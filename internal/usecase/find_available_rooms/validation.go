package find_available_rooms

import "fmt"

// validateRequest валидирует входные данные запроса
// Ошибки валидации — это ошибка вызывающего (HTTP 400), в отличие от
// сбоев хранилища, которые деградируют в пустой результат
func validateRequest(req *Request) error {
	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.Start.Before(req.End) {
		return ErrInvalidWindow
	}

	if req.MinCapacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}

	return nil
}
