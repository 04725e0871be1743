// Package byteview provides bounds-checked, read-only windows over byte
// buffers owned by someone else.
package byteview

import (
	"bytes"

	"github.com/pkg/errors"
)

var ErrOutOfBounds = errors.New("out of bounds")

// View is a borrowed window over a byte buffer.
// It is only valid while the underlying buffer is valid and unmodified.
type View struct {
	b []byte
}

func New(b []byte) View {
	return View{b: b[:len(b):len(b)]}
}

// NewWithLen creates a view over the first n bytes of b.
func NewWithLen(b []byte, n int) (View, error) {
	if n < 0 || n > len(b) {
		return View{}, errors.Wrapf(ErrOutOfBounds, "length %d over buffer of %d", n, len(b))
	}
	return View{b: b[:n:n]}, nil
}

func (v View) Len() int { return len(v.b) }

// Slice returns the sub-view [off, off+n).
func (v View) Slice(off, n int) (View, error) {
	// Compared as off > len-n so that off+n cannot overflow.
	if off < 0 || n < 0 || n > len(v.b) || off > len(v.b)-n {
		return View{}, errors.Wrapf(ErrOutOfBounds, "range [%d, %d+%d) over view of %d", off, off, n, len(v.b))
	}
	return View{b: v.b[off : off+n : off+n]}, nil
}

// Bytes returns the viewed bytes without copying.
// The caller must not modify them.
func (v View) Bytes() []byte { return v.b }

// CopyTo copies the view into dst, which must be exactly Len() long.
func (v View) CopyTo(dst []byte) (int, error) {
	if len(dst) != len(v.b) {
		return 0, errors.Wrapf(ErrOutOfBounds, "destination of %d for view of %d", len(dst), len(v.b))
	}
	return copy(dst, v.b), nil
}

// Clone returns an owned copy of the viewed bytes.
func (v View) Clone() []byte {
	out := make([]byte, len(v.b))
	copy(out, v.b)
	return out
}

func (v View) Equal(other View) bool {
	return bytes.Equal(v.b, other.b)
}
