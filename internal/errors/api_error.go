package errors

import "net/http"

type APIError struct {
	Status  int         `json:"-"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

func New(status int, code, message string) *APIError {
	return &APIError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

func Internal(message string) *APIError {
	if message == "" {
		message = "internal server error"
	}
	return New(http.StatusInternalServerError, "internal_error", message)
}

func BadRequest(code, message string) *APIError {
	return New(http.StatusBadRequest, code, message)
}

func InvalidJSON() *APIError {
	return BadRequest("invalid_json", "invalid request body")
}

func NotFound(code, message string) *APIError {
	return New(http.StatusNotFound, code, message)
}

// Storage reports a persistence failure the caller may retry.
func Storage(message string, details interface{}) *APIError {
	err := New(http.StatusServiceUnavailable, "storage_unavailable", message)
	err.Details = details
	return err
}
