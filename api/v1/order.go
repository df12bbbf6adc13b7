package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// undefined is what an absent order field renders as in notifications.
const undefined = "undefined"

// Text holds a JSON string or number as its literal text. Shopify sends
// order_number as a number and prices as strings, both are accepted.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*t = Text(n.String())
	return nil
}

// OrderEvent is the subset of a Shopify order webhook payload the notifier
// reads. Every field is optional.
type OrderEvent struct {
	OrderNumber       Text      `json:"order_number"`
	Name              Text      `json:"name"`
	TotalPrice        Text      `json:"total_price"`
	CurrentTotalPrice Text      `json:"current_total_price"`
	Currency          Text      `json:"currency"`
	Customer          *Customer `json:"customer"`
	CreatedAt         Text      `json:"created_at"`
	FinancialStatus   Text      `json:"financial_status"`
	FulfillmentStatus Text      `json:"fulfillment_status"`
}

type Customer struct {
	FirstName Text `json:"first_name"`
	LastName  Text `json:"last_name"`
	Email     Text `json:"email"`
}

// OrderSummary is the notification view of an order. Absent values are
// omitted from JSON, customerName is always present.
type OrderSummary struct {
	OrderNumber       string `json:"orderNumber,omitempty"`
	TotalPrice        string `json:"totalPrice,omitempty"`
	Currency          string `json:"currency,omitempty"`
	CustomerName      string `json:"customerName"`
	Email             string `json:"email,omitempty"`
	CreatedAt         string `json:"createdAt,omitempty"`
	PaymentStatus     string `json:"paymentStatus,omitempty"`
	FulfillmentStatus string `json:"fulfillmentStatus,omitempty"`
}

// Summary derives the order summary. order_number falls back to name and
// total_price falls back to current_total_price.
func (e OrderEvent) Summary() OrderSummary {
	var c Customer
	if e.Customer != nil {
		c = *e.Customer
	}
	return OrderSummary{
		OrderNumber:       firstOf(e.OrderNumber, e.Name),
		TotalPrice:        firstOf(e.TotalPrice, e.CurrentTotalPrice),
		Currency:          string(e.Currency),
		CustomerName:      orUndefined(string(c.FirstName)) + " " + orUndefined(string(c.LastName)),
		Email:             string(c.Email),
		CreatedAt:         string(e.CreatedAt),
		PaymentStatus:     string(e.FinancialStatus),
		FulfillmentStatus: string(e.FulfillmentStatus),
	}
}

// Markdown renders the summary as the bot notification body.
func (s OrderSummary) Markdown() string {
	var b strings.Builder
	b.WriteString("# 🛍️ 新订单通知\n")
	fmt.Fprintf(&b, "- **订单号**: #%s\n", orUndefined(s.OrderNumber))
	fmt.Fprintf(&b, "- **金额**: %s %s\n", orUndefined(s.Currency), orUndefined(s.TotalPrice))
	fmt.Fprintf(&b, "- **支付状态**: %s\n", orUndefined(s.PaymentStatus))
	fmt.Fprintf(&b, "- **履行状态**: %s\n", orUndefined(s.FulfillmentStatus))
	fmt.Fprintf(&b, "- **客户**: %s (%s)\n", s.CustomerName, orUndefined(s.Email))
	fmt.Fprintf(&b, "- **创建时间**: %s", orUndefined(s.CreatedAt))
	return b.String()
}

func firstOf(primary, fallback Text) string {
	if primary != "" {
		return string(primary)
	}
	return string(fallback)
}

func orUndefined(s string) string {
	if s == "" {
		return undefined
	}
	return s
}
