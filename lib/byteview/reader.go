package byteview

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Reader is a forward cursor reading fixed-width big-endian fields from a View.
// A failed Seek or read leaves the position unchanged.
type Reader struct {
	view View
	pos  int
}

func NewReader(v View) *Reader {
	return &Reader{view: v}
}

func (r *Reader) Pos() int { return r.pos }

func (r *Reader) Remaining() int { return r.view.Len() - r.pos }

// Seek moves the cursor to off. Seeking to the end of the view is allowed.
func (r *Reader) Seek(off int) error {
	if off < 0 || off > r.view.Len() {
		return errors.Wrapf(ErrOutOfBounds, "seek to %d over view of %d", off, r.view.Len())
	}
	r.pos = off
	return nil
}

// ReadView returns the next n bytes as a borrowed sub-view.
func (r *Reader) ReadView(n int) (View, error) {
	v, err := r.view.Slice(r.pos, n)
	if err != nil {
		return View{}, errors.Wrapf(err, "reading %d bytes at %d", n, r.pos)
	}
	r.pos += n
	return v, nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	v, err := r.ReadView(1)
	if err != nil {
		return 0, err
	}
	return v.b[0], nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	v, err := r.ReadView(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(v.b), nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	v, err := r.ReadView(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(v.b), nil
}
