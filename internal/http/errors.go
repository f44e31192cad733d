// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

package http

import (
	"errors"
	"fmt"
)

// ErrNonPointerTarget is returned when the decode target is not a non-nil pointer.
var ErrNonPointerTarget = errors.New("target must be a non-nil pointer")

// StatusError is returned when the remote API responds with a non-2xx status code.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status: %d", e.Status)
}

// NetworkError is returned when the request fails at the transport level
// (DNS, timeout, connection reset).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure: %s", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the response body is not the expected JSON shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed response body: %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
