// Package apperr defines the error kinds returned by the lot and alert
// usecases and their mapping onto transport status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Kind string

const (
	KindInvalidArgument   Kind = "invalid_argument"
	KindNotFound          Kind = "not_found"
	KindInvalidTransition Kind = "invalid_transition"
	KindValidation        Kind = "validation_error"
	KindConflict          Kind = "conflict"
	KindDataIntegrity     Kind = "data_integrity_error"
	KindInternal          Kind = "internal"
)

// Sentinels for errors.Is checks against a kind.
var (
	ErrInvalidArgument   = &Error{Kind: KindInvalidArgument}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrInvalidTransition = &Error{Kind: KindInvalidTransition}
	ErrValidation        = &Error{Kind: KindValidation}
	ErrConflict          = &Error{Kind: KindConflict}
	ErrDataIntegrity     = &Error{Kind: KindDataIntegrity}
)

type Error struct {
	Kind    Kind
	Message string
	// Field names the offending input for validation errors.
	Field string
	// CurrentState carries the alert status for invalid transitions so
	// callers can resynchronize.
	CurrentState string
	Err          error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

func InvalidTransition(current string, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidTransition, Message: fmt.Sprintf(format, args...), CurrentState: current}
}

func Validation(field, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...), Field: field}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func DataIntegrity(err error) *Error {
	return &Error{Kind: KindDataIntegrity, Message: "data integrity violation", Err: err}
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// GRPCStatus converts err into a gRPC status error.
func GRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, err.Error())
	}
	return status.Error(grpcCode(e.Kind), e.Error())
}

func grpcCode(k Kind) codes.Code {
	switch k {
	case KindInvalidArgument, KindValidation:
		return codes.InvalidArgument
	case KindNotFound:
		return codes.NotFound
	case KindInvalidTransition:
		return codes.FailedPrecondition
	case KindConflict:
		return codes.Aborted
	default:
		return codes.Internal
	}
}

// HTTPStatus returns the response status code for err.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidTransition, KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Body is the JSON error envelope used by the HTTP surface.
type Body struct {
	Kind         Kind   `json:"kind"`
	Message      string `json:"message"`
	Field        string `json:"field,omitempty"`
	CurrentState string `json:"current_state,omitempty"`
}

func ToBody(err error) Body {
	var e *Error
	if errors.As(err, &e) {
		return Body{Kind: e.Kind, Message: e.Error(), Field: e.Field, CurrentState: e.CurrentState}
	}
	return Body{Kind: KindInternal, Message: "internal error"}
}
