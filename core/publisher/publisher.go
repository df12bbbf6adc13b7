// Package publisher delivers notifications to a chat bot webhook.
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var ErrNoWebhookURL = errors.New("publisher: webhook url is not configured")

// Webhook posts JSON messages to a bot webhook URL, such as a WeCom group
// bot. A single attempt is made and the response status is not inspected.
type Webhook struct {
	URL    string
	Client *http.Client
}

func New(url string, client *http.Client) *Webhook {
	if client == nil {
		client = http.DefaultClient
	}
	return &Webhook{
		URL:    strings.TrimSpace(url),
		Client: client,
	}
}

func (p *Webhook) PublishMessage(ctx context.Context, data any) error {
	if p.URL == "" {
		return ErrNoWebhookURL
	}

	msg, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, bytes.NewReader(msg))
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return nil
}
