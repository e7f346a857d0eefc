package apierr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dekarrin/scramble/internal/scramble"
	"github.com/stretchr/testify/assert"
)

func Test_FromRunError_parseErrorsAreBadRequest(t *testing.T) {
	err := FromRunError(scramble.Balance{Open: "("})
	assert.Equal(t, http.StatusBadRequest, Status(err))
	assert.Contains(t, ClientMessage(err), "could not be parsed")
}

func Test_FromRunError_nameErrorIsUnprocessable(t *testing.T) {
	err := FromRunError(scramble.Name{Name: "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, Status(err))
	assert.Contains(t, ClientMessage(err), "failed to run")
}

func Test_FromRunError_inputErrorIsBadRequest(t *testing.T) {
	err := FromRunError(scramble.Input{Message: "closed"})
	assert.Equal(t, http.StatusBadRequest, Status(err))
}

func Test_FromRunError_unknownErrorIsInternal(t *testing.T) {
	err := FromRunError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, Status(err))
}

func Test_FromRunError_nilIsNil(t *testing.T) {
	assert.NoError(t, FromRunError(nil))
}

func Test_ClientMessage_nonApiErrorIsGeneric(t *testing.T) {
	assert.Equal(t, "an internal error occurred", ClientMessage(errors.New("whatever")))
}

func Test_Unauthorized(t *testing.T) {
	err := Unauthorized(errors.New("bad password"))
	assert.Equal(t, http.StatusUnauthorized, Status(err))
	assert.Equal(t, "invalid credentials", ClientMessage(err))
}
