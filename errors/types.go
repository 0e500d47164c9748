package errors

import "fmt"

const unknownAPIMessage = "Unknown error"

// APIError is a failure reported by the remote API in the response body.
type APIError struct {
	Endpoint string
	Code     int
	Message  string
}

func NewAPIError(endpoint string, code int, message string) *APIError {
	if message == "" {
		message = unknownAPIMessage
	}
	return &APIError{Endpoint: endpoint, Code: code, Message: message}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Failed to request: [%s] [%d]: %s", e.Endpoint, e.Code, e.Message)
}

// CustomError is a local precondition failure.
type CustomError struct {
	Message string
}

func Custom(format string, args ...interface{}) *CustomError {
	return &CustomError{Message: fmt.Sprintf(format, args...)}
}

func (e *CustomError) Error() string {
	return "Custom: " + e.Message
}

// TransportError wraps a network or timeout failure.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError wraps a response body that could not be decoded.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ConfigError means the local setup is not usable for the command.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
