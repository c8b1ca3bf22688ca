package domain

import (
	"errors"
)

// ErrTransportNotReady indicates that the transport has no usable connection.
// The reading is dropped and the transport reconnects on the next send.
var ErrTransportNotReady = errors.New("transport is not ready")

// ErrConnectionClosed indicates that the monitoring center closed the connection.
var ErrConnectionClosed = errors.New("connection closed by the monitoring center")
