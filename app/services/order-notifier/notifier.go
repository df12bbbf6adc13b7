package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	v1 "github.com/snirkop89/order-notifier/api/v1"
	"github.com/snirkop89/order-notifier/core/httpio"
	"github.com/snirkop89/order-notifier/core/signature"
)

var (
	errMethodNotAllowed  = errors.New("method not allowed")
	errSignatureMismatch = errors.New("signature mismatch")
)

type messagePublisher interface {
	PublishMessage(ctx context.Context, data any) error
}

// notifier turns a Shopify order webhook into a bot notification. It holds
// no mutable state and is safe for concurrent use.
type notifier struct {
	secret    string
	publisher messagePublisher
}

// process runs one webhook delivery. The returned error is errMethodNotAllowed,
// errSignatureMismatch or any other failure on the way to the bot.
func (n *notifier) process(ctx context.Context, method string, h http.Header, body io.Reader) (v1.OrderSummary, error) {
	if method != http.MethodPost {
		return v1.OrderSummary{}, errMethodNotAllowed
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return v1.OrderSummary{}, fmt.Errorf("read body: %w", err)
	}

	// Without a secret there is nothing to verify against. With one, a
	// missing header is treated as a mismatch.
	if n.secret != "" {
		if err := signature.Verify(n.secret, raw, h.Get(v1.HeaderHMAC)); err != nil {
			return v1.OrderSummary{}, fmt.Errorf("%w: %w", errSignatureMismatch, err)
		}
	}

	var event *v1.OrderEvent
	if err := httpio.Decode(bytes.NewReader(raw), &event); err != nil {
		return v1.OrderSummary{}, fmt.Errorf("decode order: %w", err)
	}
	if event == nil {
		return v1.OrderSummary{}, errors.New("decode order: body is null")
	}

	summary := event.Summary()
	if err := n.publisher.PublishMessage(ctx, v1.NewMarkdownMessage(summary.Markdown())); err != nil {
		return v1.OrderSummary{}, err
	}
	return summary, nil
}
