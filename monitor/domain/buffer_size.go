package domain

import "errors"

// DefaultBufferSize is the size of a single socket read.
// One read carries one reading message.
const DefaultBufferSize = 1024

// BufferSize is the number of bytes a connection handler reads at once.
type BufferSize uint32

// NewBufferSize creates a new BufferSize instance.
func NewBufferSize(size int) (BufferSize, error) {
	if size <= 0 {
		return 0, errors.New("buffer size must be greater than 0")
	}

	return BufferSize(size), nil
}
