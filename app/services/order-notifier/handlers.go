package main

import (
	"errors"
	"log/slog"
	"net/http"

	v1 "github.com/snirkop89/order-notifier/api/v1"
	"github.com/snirkop89/order-notifier/core/httpio"
)

const (
	msgMethodNotAllowed = "Only POST requests allowed"
	msgInvalidHMAC      = "Invalid HMAC - not from Shopify"
)

func orderNotificationHandler(log *slog.Logger, n *notifier, maxBodyBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		delivery := v1.NewDelivery(r.Header)
		log := log.With(
			"delivery_id", delivery.ID,
			"topic", delivery.Topic,
			"shop", delivery.ShopDomain,
		)

		body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
		summary, err := n.process(r.Context(), r.Method, r.Header, body)

		var werr error
		switch {
		case err == nil:
			log.Info("Order notification sent", "order", summary.OrderNumber)
			werr = httpio.WriteJSON(w, http.StatusOK, map[string]any{
				"success":   true,
				"orderInfo": summary,
			})
		case errors.Is(err, errMethodNotAllowed):
			werr = httpio.MethodNotAllowedResponse(w, msgMethodNotAllowed)
		case errors.Is(err, errSignatureMismatch):
			log.Warn("Rejected webhook", "error", err)
			werr = httpio.UnauthorizedResponse(w, msgInvalidHMAC)
		default:
			log.Error("Order notification failed", "error", err)
			werr = httpio.InternalServerErrorResponse(w, err.Error())
		}
		if werr != nil {
			log.Error("Writing response", "error", werr)
		}
	}
}
