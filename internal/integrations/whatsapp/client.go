package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент шлюза WhatsApp-уведомлений
type Client struct {
	baseURL    string
	enabled    bool
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента шлюза
func NewClient(baseURL string, enabled bool, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendMessage отправляет текстовое сообщение на номер
func (c *Client) SendMessage(ctx context.Context, phone, text string) error {
	if !c.enabled {
		return ErrDisabled
	}

	payload, err := json.Marshal(Message{Phone: phone, Text: text})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/messages", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	return nil
}

// NotifyBestEffort отправляет уведомление, не влияя на исход операции
// Ошибка доставки логируется и не возвращается наружу
func (c *Client) NotifyBestEffort(ctx context.Context, phone, text string) {
	if !c.enabled {
		return
	}

	if err := c.SendMessage(ctx, phone, text); err != nil {
		c.log.Error("WhatsApp notification failed for phone=%s: %v", phone, err)
		return
	}

	c.log.Info("WhatsApp notification sent to phone=%s", phone)
}
