package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedReading is returned by the parser when a message is not a valid reading.
// It is wrapped with the concrete reason.
var ErrMalformedReading = errors.New("malformed reading")

// ConnectionIOError is a read or write failure on a single client connection,
// including a reset by the peer. It only ever closes that connection.
type ConnectionIOError struct {
	Addr string
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *ConnectionIOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

// Unwrap returns the underlying network error.
func (e *ConnectionIOError) Unwrap() error {
	return e.Err
}

// AcceptError is a failed accept on the listening socket. The accept loop keeps going.
type AcceptError struct {
	Err error
}

// Error implements the error interface.
func (e *AcceptError) Error() string {
	return fmt.Sprintf("accept: %v", e.Err)
}

// Unwrap returns the underlying network error.
func (e *AcceptError) Unwrap() error {
	return e.Err
}

// BindError means the server could not bind its listening socket and cannot start.
type BindError struct {
	Address BindAddress
	Err     error
}

// Error implements the error interface.
func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %v", e.Address, e.Err)
}

// Unwrap returns the underlying network error.
func (e *BindError) Unwrap() error {
	return e.Err
}
