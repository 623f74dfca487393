package handlers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// ErrorEnvelope is the uniform JSON error body returned by every handler.
type ErrorEnvelope struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// ErrorWriter formats error responses. In production the underlying cause is
// logged server-side but kept out of the response body.
type ErrorWriter struct {
	production bool
}

func NewErrorWriter(environment string) *ErrorWriter {
	return &ErrorWriter{production: environment == "production"}
}

func (w *ErrorWriter) JSON(c echo.Context, status int, publicMsg string, cause error) error {
	if cause != nil {
		slog.Error("request failed",
			"status", status,
			"message", publicMsg,
			"error", cause,
			"path", c.Request().URL.Path,
		)
	}

	msg := publicMsg
	if cause != nil && !w.production {
		msg = fmt.Sprintf("%s: %v", publicMsg, cause)
	}

	return c.JSON(status, ErrorEnvelope{
		Error:     msg,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
