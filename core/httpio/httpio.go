package httpio

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

// Decode reads exactly one JSON value. Unknown fields are ignored since
// webhook payloads carry far more than any handler reads.
func Decode(r io.Reader, data any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(data); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

func WriteJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

func ErrorResponse(w http.ResponseWriter, code int, msg string) error {
	return WriteJSON(w, code, map[string]string{
		"error": msg,
	})
}

func MethodNotAllowedResponse(w http.ResponseWriter, msg string) error {
	return ErrorResponse(w, http.StatusMethodNotAllowed, msg)
}

func UnauthorizedResponse(w http.ResponseWriter, msg string) error {
	return ErrorResponse(w, http.StatusUnauthorized, msg)
}

func InternalServerErrorResponse(w http.ResponseWriter, msg string) error {
	return ErrorResponse(w, http.StatusInternalServerError, msg)
}

// HealthCheckHandler answers any request with {"msg":"ok"}.
func HealthCheckHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg := map[string]string{
			"msg": "ok",
		}
		err := WriteJSON(w, http.StatusOK, msg)
		if err != nil {
			log.Error("Writing response", "error", err)
		}
	}
}
