// Package apperr defines the error kinds that cross the service boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure. Its string form is the wire error code.
type Kind string

const (
	InvalidURL        Kind = "INVALID_URL"
	FormatUnavailable Kind = "FORMAT_UNAVAILABLE"
	VideoUnavailable  Kind = "VIDEO_UNAVAILABLE"
	FileTooLarge      Kind = "FILE_TOO_LARGE"
	NetworkError      Kind = "NETWORK_ERROR"
	RateLimited       Kind = "RATE_LIMITED"
	UnknownError      Kind = "UNKNOWN_ERROR"
)

// Messages shown to users when no more specific message is available.
var messages = map[Kind]string{
	InvalidURL:        "Please enter a valid YouTube URL",
	FormatUnavailable: "This format is currently unavailable",
	VideoUnavailable:  "This video is unavailable or restricted",
	FileTooLarge:      "Video file is too large to download",
	NetworkError:      "Network error occurred. Please try again",
	RateLimited:       "Too many requests. Please slow down",
	UnknownError:      "An unexpected error occurred",
}

var statuses = map[Kind]int{
	InvalidURL:        http.StatusBadRequest,
	FormatUnavailable: http.StatusBadRequest,
	VideoUnavailable:  http.StatusForbidden,
	FileTooLarge:      http.StatusRequestEntityTooLarge,
	NetworkError:      http.StatusInternalServerError,
	RateLimited:       http.StatusTooManyRequests,
	UnknownError:      http.StatusInternalServerError,
}

// Error is a classified failure with the HTTP status it maps to.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an error of the given kind with its default message and status.
func New(kind Kind) *Error {
	return &Error{
		Kind:       kind,
		Message:    DefaultMessage(kind),
		StatusCode: Status(kind),
	}
}

// Wrap classifies err. The upstream message is kept as the user facing
// message when it has one.
func Wrap(kind Kind, err error) *Error {
	e := New(kind)
	e.Err = err
	if err != nil && err.Error() != "" {
		e.Message = err.Error()
	}
	return e
}

// WithStatus overrides the HTTP status, for upstreams that supply their own.
func (e *Error) WithStatus(status int) *Error {
	if status > 0 {
		e.StatusCode = status
	}
	return e
}

// DefaultMessage returns the user facing message of a kind.
func DefaultMessage(kind Kind) string {
	if msg, ok := messages[kind]; ok {
		return msg
	}
	return messages[UnknownError]
}

// Status returns the HTTP status of a kind.
func Status(kind Kind) int {
	if status, ok := statuses[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Payload is the uniform error body returned to clients.
type Payload struct {
	Message    string `json:"message"`
	Code       Kind   `json:"code"`
	StatusCode int    `json:"statusCode"`
}

// From converts any error into a Payload. Errors that were never
// classified become UnknownError and their text is not exposed.
func From(err error) Payload {
	var e *Error
	if errors.As(err, &e) {
		msg := e.Message
		if msg == "" {
			msg = DefaultMessage(e.Kind)
		}
		status := e.StatusCode
		if status == 0 {
			status = Status(e.Kind)
		}
		return Payload{Message: msg, Code: e.Kind, StatusCode: status}
	}

	return Payload{
		Message:    DefaultMessage(UnknownError),
		Code:       UnknownError,
		StatusCode: Status(UnknownError),
	}
}
