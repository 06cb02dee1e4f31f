package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx answer from the backend.
type Error struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("backend error: status=%d message=%s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is a backend *Error with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// Detail returns the server supplied message when err is a backend *Error,
// otherwise fallback.
func Detail(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" && apiErr.Message != http.StatusText(apiErr.StatusCode) {
		return apiErr.Message
	}
	return fallback
}

// parseError reads the error payload. The backend answers with either
// {"detail": ...} or {"error": "..."}.
func parseError(status int, body []byte) *Error {
	out := &Error{StatusCode: status}
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		out.Message = strings.TrimSpace(string(body))
		if out.Message == "" {
			out.Message = http.StatusText(status)
		}
		return out
	}
	switch d := obj["detail"].(type) {
	case string:
		out.Message = d
	case []any:
		// validation errors: [{"loc": [...], "msg": "..."}]
		msgs := make([]string, 0, len(d))
		for _, item := range d {
			if m, ok := item.(map[string]any); ok {
				if s, ok := m["msg"].(string); ok {
					msgs = append(msgs, s)
				}
			}
		}
		out.Message = strings.Join(msgs, "; ")
	}
	if out.Message == "" {
		out.Message, _ = obj["error"].(string)
	}
	if out.Message == "" {
		out.Message, _ = obj["message"].(string)
	}
	if out.Message == "" {
		out.Message = http.StatusText(status)
	}
	return out
}
