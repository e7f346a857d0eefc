// Package apierr pairs a technical error from internal/scramble with the
// message cmd/scrambled is willing to show a client, and the HTTP status
// that message belongs on.
package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dekarrin/scramble/internal/scramble"
)

// apiError holds both the client-facing message and the wrapped technical
// error it was built from, the same split the teacher's interpreter errors
// keep between a player-facing message and the underlying cause.
type apiError struct {
	client string
	status int
	cause  error
}

func (e apiError) Error() string { return e.cause.Error() }
func (e apiError) Unwrap() error { return e.cause }

// ClientMessage returns the message safe to return to an API caller.
func ClientMessage(err error) string {
	var ae apiError
	if errors.As(err, &ae) {
		return ae.client
	}
	return "an internal error occurred"
}

// Status returns the HTTP status code that should accompany err.
func Status(err error) int {
	var ae apiError
	if errors.As(err, &ae) {
		return ae.status
	}
	return http.StatusInternalServerError
}

// FromRunError classifies an error returned by scramble.Engine.RunSource or
// RunFile into an apiError, giving every concrete error type in
// internal/scramble's taxonomy its own client message and status. Errors
// outside that taxonomy (I/O failures reading a submitted file, etc.) are
// treated as internal.
func FromRunError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case asType[scramble.UnexpectedSymbol](err),
		asType[scramble.Balance](err),
		asType[scramble.UnexpectedToken](err),
		asType[scramble.UnexpectedEOF](err),
		asType[scramble.MissingToken](err),
		asType[scramble.MissingExpression](err),
		asType[scramble.ConsistentIndentation](err),
		asType[scramble.InvalidFormatFlag](err),
		asType[scramble.IncorrectFormatArgs](err):
		return wrap(err, http.StatusBadRequest, "the submitted source could not be parsed: "+err.Error())

	case asType[scramble.Signature](err),
		asType[scramble.Name](err),
		asType[scramble.Break](err),
		asType[scramble.Continue](err),
		asType[scramble.Return](err):
		return wrap(err, http.StatusUnprocessableEntity, "the submitted source failed to run: "+err.Error())

	case asType[scramble.Input](err):
		return wrap(err, http.StatusBadRequest, "the program tried to read input that was not available")

	default:
		return wrap(err, http.StatusInternalServerError, "an internal error occurred while running the program")
	}
}

func wrap(cause error, status int, client string) error {
	return apiError{client: client, status: status, cause: cause}
}

func asType[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// NotFound wraps a dao-layer not-found error into a 404 apiError.
func NotFound(resource string, id fmt.Stringer) error {
	return wrap(fmt.Errorf("%s %s not found", resource, id), http.StatusNotFound, fmt.Sprintf("%s not found", resource))
}

// Unauthorized wraps an authentication failure into a 401 apiError without
// leaking the underlying cause (wrong password vs. unknown user) to the
// client.
func Unauthorized(cause error) error {
	return wrap(cause, http.StatusUnauthorized, "invalid credentials")
}

// Internal wraps an unexpected failure (dao errors, marshal errors) into a
// 500 apiError.
func Internal(cause error) error {
	return wrap(cause, http.StatusInternalServerError, "an internal error occurred")
}

// BadRequest wraps a malformed-request failure into a 400 apiError.
func BadRequest(cause error) error {
	return wrap(cause, http.StatusBadRequest, cause.Error())
}
