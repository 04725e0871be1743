package network

import "github.com/pkg/errors"

// ErrMalformed is returned when a buffer is too short to hold the requested header.
var ErrMalformed = errors.New("malformed packet")

type Addr interface {
	String() string
	// Raw returns an owned copy of the address bytes in wire order.
	Raw() []byte
}
