package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом уведомлений (NotificationService)
// Рендеринг шаблонов и доставка писем выполняются на стороне сервиса
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotificationService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// RenderCancellationBody рендерит тело уведомления об отмене бронирований
func (c *Client) RenderCancellationBody(ctx context.Context, template string, bookings []*domain.Booking) (string, error) {
	payload := RenderRequest{
		Template: template,
		Bookings: make([]BookingPayload, len(bookings)),
	}
	for i, b := range bookings {
		payload.Bookings[i] = BookingPayload{
			ID:        b.ID,
			Owner:     b.Owner,
			Subject:   b.Subject,
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
		}
	}

	var rendered RenderResponse
	if err := c.post(ctx, "/internal/notifications/render", payload, &rendered); err != nil {
		return "", err
	}

	return rendered.Body, nil
}

// Send отправляет одно уведомление
func (c *Client) Send(ctx context.Context, from, to, subject, body string, isHTML bool) error {
	payload := SendRequest{
		From:    from,
		To:      to,
		Subject: subject,
		Body:    body,
		IsHTML:  isHTML,
	}

	if err := c.post(ctx, "/internal/notifications/send", payload, nil); err != nil {
		return err
	}

	c.log.Info("Send: notification sent to=%s subject=%q", to, subject)
	return nil
}

// post выполняет POST запрос с JSON телом и парсит ответ в out (если out != nil)
func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		// Продолжаем обработку
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrSendRejected, path)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
