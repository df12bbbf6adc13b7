package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/snirkop89/order-notifier/core/httpio"
	"github.com/snirkop89/order-notifier/core/logger"
)

func routes(log *slog.Logger, n *notifier, maxBodyBytes int64) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(logger.LoggingMiddleware(log))

	r.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", httpio.HealthCheckHandler(log))
		r.HandleFunc("/shopify", orderNotificationHandler(log, n, maxBodyBytes))
	})
	return r
}
