package domain

import "errors"

// MaxConnections caps how many client connections are served at the same time.
// Zero means no limit.
type MaxConnections uint32

// NewMaxConnections validates the connection cap.
func NewMaxConnections(val int) (MaxConnections, error) {
	if val < 0 {
		return 0, errors.New("max connections must not be negative")
	}
	return MaxConnections(val), nil
}
