package scsdk

import (
	"errors"
	"fmt"
)

// ErrorType classifies client failures.
type ErrorType string

const (
	// ErrorTypeAPI is a provider-issued error envelope (JSON or XML).
	ErrorTypeAPI ErrorType = "API"
	// ErrorTypeHTTP is a non-2xx status with no parseable error envelope.
	ErrorTypeHTTP ErrorType = "HTTP"
	// ErrorTypeTransport is a network-level failure before a response arrived.
	ErrorTypeTransport ErrorType = "Transport"
	// ErrorTypeDecode is a payload that failed to parse as the configured format.
	ErrorTypeDecode ErrorType = "Decode"
	// ErrorTypeConfig is an invalid client configuration.
	ErrorTypeConfig ErrorType = "Config"
)

// Error represents a failure from the client. API errors carry the provider
// error code; HTTP errors carry the status code.
type Error struct {
	Type       ErrorType
	Code       string
	StatusCode int
	Message    string
	Cause      error
}

// Error implements error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Code != "" {
		msg = fmt.Sprintf("%s %s: %s", e.Type, e.Code, e.Message)
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error types for errors.Is.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// AsError extracts an *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsAPIError reports whether err is a provider error envelope.
func IsAPIError(err error) bool {
	ce, ok := AsError(err)
	return ok && ce.Type == ErrorTypeAPI
}

func newAPIError(code, message string) *Error {
	return &Error{Type: ErrorTypeAPI, Code: code, Message: message}
}

func newHTTPError(statusCode int, message string) *Error {
	return &Error{Type: ErrorTypeHTTP, StatusCode: statusCode, Message: message}
}

func newDecodeError(message string, cause error) *Error {
	return &Error{Type: ErrorTypeDecode, Message: message, Cause: cause}
}

func newTransportError(message string, cause error) *Error {
	return &Error{Type: ErrorTypeTransport, Message: message, Cause: cause}
}

func newConfigError(message string) *Error {
	return &Error{Type: ErrorTypeConfig, Message: message}
}
