package v1

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	HeaderHMAC       = "X-Shopify-Hmac-Sha256"
	HeaderTopic      = "X-Shopify-Topic"
	HeaderShopDomain = "X-Shopify-Shop-Domain"
	HeaderWebhookID  = "X-Shopify-Webhook-Id"
)

// Delivery describes one inbound webhook call.
type Delivery struct {
	ID         string // Shopify webhook id, or a generated GUID when absent
	Topic      string
	ShopDomain string
}

func NewDelivery(h http.Header) Delivery {
	id := strings.TrimSpace(h.Get(HeaderWebhookID))
	if id == "" {
		id = uuid.NewString()
	}
	return Delivery{
		ID:         id,
		Topic:      strings.TrimSpace(h.Get(HeaderTopic)),
		ShopDomain: strings.TrimSpace(h.Get(HeaderShopDomain)),
	}
}

// MarkdownMessage is the WeCom group bot request body.
type MarkdownMessage struct {
	MsgType  string          `json:"msgtype"`
	Markdown MarkdownContent `json:"markdown"`
}

type MarkdownContent struct {
	Content string `json:"content"`
}

func NewMarkdownMessage(content string) MarkdownMessage {
	return MarkdownMessage{
		MsgType:  "markdown",
		Markdown: MarkdownContent{Content: content},
	}
}
