package logger

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/term"
)

func NewLogger(service string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	// Create handle based on TTY environment.
	var h slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		h = slog.NewTextHandler(os.Stderr, opts)
	} else {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	l := slog.New(h.WithAttrs([]slog.Attr{{Key: "service", Value: slog.StringValue(service)}}))
	return l
}

// ParseLevel maps debug, info, warn and error to a slog level. Anything else
// is info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func LoggingMiddleware(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attributes := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("user-agent", r.UserAgent()),
				slog.String("path", r.URL.Path),
			}
			if id := middleware.GetReqID(r.Context()); id != "" {
				attributes = append(attributes, slog.String("request_id", id))
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			attributes = append(attributes,
				slog.Int("status", ww.Status()),
				slog.String("latency", time.Since(start).String()),
			)

			logger.WithGroup("http").LogAttrs(r.Context(), slog.LevelInfo, "Handled request", attributes...)
		})
	}
}
