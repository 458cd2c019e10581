package app

import (
	"errors"
	"net/http"
)

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	var e invalidReqErr
	if errors.As(err, &e) {
		return e.IsInvalidRequest()
	}

	return false
}

// NotFoundError is returned when requested entity doesn't exist on chain.
type NotFoundError string

// ErrProjectNotFound is returned for projects with zero creation timestamp.
const ErrProjectNotFound = NotFoundError("Project not found")

// Error implements error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFound tells that this error is 'not found'.
// Returns always true.
func (NotFoundError) IsNotFound() bool {
	return true
}

// StatusCode returns http status code used when error is surfaced to api users.
func (NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// IsNotFoundError checks if given error is caused by missing entity
func IsNotFoundError(err error) bool {
	type notFoundErr interface {
		IsNotFound() bool
	}

	var e notFoundErr
	if errors.As(err, &e) {
		return e.IsNotFound()
	}

	return false
}

// TooManyRequestsError is returned when rate limit is exceeded.
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequests tells that this error is 'too many requests'.
// Returns always true.
func (TooManyRequestsError) IsTooManyRequests() bool {
	return true
}

// IsTooManyRequestsError checks if given error is caused by exceeded rate limit
func IsTooManyRequestsError(err error) bool {
	type tooManyReqErr interface {
		IsTooManyRequests() bool
	}

	var e tooManyReqErr
	if errors.As(err, &e) {
		return e.IsTooManyRequests()
	}

	return false
}
