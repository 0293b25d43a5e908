package notify

import "time"

// RenderRequest запрос на рендеринг тела уведомления по шаблону
type RenderRequest struct {
	Template string           `json:"template"`
	Bookings []BookingPayload `json:"bookings"`
}

// RenderResponse ответ с готовым телом уведомления
type RenderResponse struct {
	Body string `json:"body"`
}

// BookingPayload данные бронирования для подстановки в шаблон
type BookingPayload struct {
	ID        int64     `json:"id"`
	Owner     string    `json:"owner"`
	Subject   string    `json:"subject"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// SendRequest запрос на отправку уведомления
type SendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	IsHTML  bool   `json:"isHtml"`
}

// ErrorResponse модель ошибки от NotificationService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
