package httputil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ErrorResponse mirrors the backend's error envelope. Some endpoints wrap
// the detail under "error", others send a bare "message".
type ErrorResponse struct {
	Error   *ErrorDetail `json:"error,omitempty"`
	Message string       `json:"message,omitempty"`
}

// ErrorDetail contains the error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DecodeJSON decodes a response body into v.
func DecodeJSON(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ErrorMessage extracts a human-readable message from an error response
// body, falling back to the HTTP status text when no envelope is present.
func ErrorMessage(status int, body []byte) string {
	var envelope ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != nil && envelope.Error.Message != "" {
			return envelope.Error.Message
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return http.StatusText(status)
}
