package http

import (
	"fmt"
	"net/http"
)

// AppError is an error that knows its HTTP status and stable code.
type AppError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Field   string                 `json:"field,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
	Status  int                    `json:"-"`
	Err     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// StatusClientClosedRequest is the non-standard status for a request the client abandoned.
const StatusClientClosedRequest = 499

// statusCodes holds the code used for each status the API returns.
var statusCodes = map[int]string{
	http.StatusBadRequest:          "ERR_BAD_REQUEST",
	http.StatusNotFound:            "ERR_NOT_FOUND",
	http.StatusTooManyRequests:     "ERR_RATE_LIMITED",
	StatusClientClosedRequest:      "ERR_CANCELED",
	http.StatusInternalServerError: "ERR_INTERNAL",
	http.StatusServiceUnavailable:  "ERR_UNAVAILABLE",
}

func NewAppError(code, field, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, Field: field, Status: status}
}

// Errorf builds an AppError for status, picking the code from statusCodes.
func Errorf(status int, format string, a ...interface{}) *AppError {
	code, ok := statusCodes[status]
	if !ok {
		code = "ERR_UNKNOWN"
	}
	return NewAppError(code, "", fmt.Sprintf(format, a...), status)
}

func (e *AppError) WithParam(key string, value interface{}) *AppError {
	if e.Params == nil {
		e.Params = make(map[string]interface{})
	}
	e.Params[key] = value
	return e
}

func (e *AppError) WithField(field string) *AppError {
	e.Field = field
	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

func NotFoundErrorf(format string, a ...interface{}) *AppError {
	return Errorf(http.StatusNotFound, format, a...)
}

func BadRequestError(message string) *AppError {
	return Errorf(http.StatusBadRequest, "%s", message)
}

func TooManyRequestsError(message string) *AppError {
	return Errorf(http.StatusTooManyRequests, "%s", message)
}

func ClientClosedError(message string) *AppError {
	return Errorf(StatusClientClosedRequest, "%s", message)
}

func ServiceUnavailableError(message string) *AppError {
	return Errorf(http.StatusServiceUnavailable, "%s", message)
}

func InternalError(message string) *AppError {
	return Errorf(http.StatusInternalServerError, "%s", message)
}
