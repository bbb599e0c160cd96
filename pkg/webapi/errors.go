package webapi

import (
	"errors"
	"fmt"
)

var (
	ErrTransport      = errors.New("could not perform http request")
	ErrHTTPStatus     = errors.New("invalid response code returned from request")
	ErrDecode         = errors.New("failed to decode http response")
	ErrRequestCreate  = errors.New("failed to create new request")
	ErrEncodeParams   = errors.New("failed to encode query parameters")
	ErrMissingAPIKey  = errors.New("steam web api key is required for this endpoint")
	ErrInvalidSteamID = errors.New("invalid steamid")
)

// TransportError is returned when the request never produced a response: DNS, connect, TLS or timeout
// failures, and failures reading the response body.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// HTTPStatusError is returned for any non-2xx response. Body holds the raw response body.
type HTTPStatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

func (e *HTTPStatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// DecodeError is returned when a 2xx body does not match the expected response type. Payload is only
// populated when the client was configured with RetainPayload.
type DecodeError struct {
	URL     string
	Payload []byte
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
