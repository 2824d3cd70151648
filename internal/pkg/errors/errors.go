package errors

import (
	"errors"
	"net/http"
)

// ErrorResp carries the HTTP status a domain error maps to. Handlers never
// build statuses themselves, they pass these through helpers.RespError.
type ErrorResp struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResp) Error() string {
	return e.Message
}

func BadRequest(message string) error {
	return &ErrorResp{Code: http.StatusBadRequest, Message: message}
}

// Validation is malformed or rule-breaking input, always user-correctable.
func Validation(message string) error {
	return &ErrorResp{Code: http.StatusBadRequest, Message: message}
}

// Precondition is a state requirement not yet met, e.g. completing a booking
// before its payment is confirmed.
func Precondition(message string) error {
	return &ErrorResp{Code: http.StatusBadRequest, Message: message}
}

func UnauthorizedError(message string) error {
	return &ErrorResp{Code: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) error {
	return &ErrorResp{Code: http.StatusForbidden, Message: message}
}

func NotFound(message string) error {
	return &ErrorResp{Code: http.StatusNotFound, Message: message}
}

func Conflict(message string) error {
	return &ErrorResp{Code: http.StatusConflict, Message: message}
}

// Gateway is an upstream payment-gateway failure: signature mismatch, amount
// mismatch, timeout. State must be left untouched by the caller.
func Gateway(message string) error {
	return &ErrorResp{Code: http.StatusBadGateway, Message: message}
}

func InternalServerError(message string) error {
	return &ErrorResp{Code: http.StatusInternalServerError, Message: message}
}

// HTTPCode extracts the mapped status, defaulting to 500 for plain errors.
func HTTPCode(err error) int {
	var resp *ErrorResp
	if errors.As(err, &resp) {
		return resp.Code
	}
	return http.StatusInternalServerError
}

func IsConflict(err error) bool {
	var resp *ErrorResp
	return errors.As(err, &resp) && resp.Code == http.StatusConflict
}
