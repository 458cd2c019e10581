package app

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInvalidRequestError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsInvalidRequestError(stdErr))

	irErr := InvalidRequestError("invalid request")
	assert.True(t, IsInvalidRequestError(irErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", irErr)
	assert.True(t, IsInvalidRequestError(wrapperErr))

	assert.False(t, IsInvalidRequestError(ErrProjectNotFound))
}

func TestIsNotFoundError(t *testing.T) {
	assert.False(t, IsNotFoundError(errors.New("simple error")))
	assert.False(t, IsNotFoundError(nil))

	assert.True(t, IsNotFoundError(ErrProjectNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("wrapping message: %w", ErrProjectNotFound)))

	assert.Equal(t, "Project not found", ErrProjectNotFound.Error())
	assert.Equal(t, http.StatusNotFound, ErrProjectNotFound.StatusCode())
}

func TestIsTooManyRequestsError(t *testing.T) {
	assert.False(t, IsTooManyRequestsError(errors.New("simple error")))

	tmrErr := TooManyRequestsError("slow down")
	assert.True(t, IsTooManyRequestsError(tmrErr))
	assert.True(t, IsTooManyRequestsError(fmt.Errorf("wrapping message: %w", tmrErr)))
	assert.False(t, IsTooManyRequestsError(InvalidRequestError("invalid request")))
}
