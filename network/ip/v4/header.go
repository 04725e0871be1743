package ipv4

import (
	"packetfield/lib/byteview"

	"github.com/pkg/errors"
)

// Fixed offsets of the IPv4 header without options.
const (
	HeaderMinLen = 20
	AddrLen      = 4

	srcOffset = 12
	dstOffset = 16
)

// Header is a validated view over an IPv4 header.
// It borrows the buffer given to ParseHeader and must not outlive it.
type Header struct {
	raw      byteview.View
	src, dst byteview.View
}

// ParseHeader validates b as an IPv4 header. Field accessors are only
// available through the returned header, which is nil on failure.
func ParseHeader(b []byte) (*Header, error) {
	if err := checkLen(b); err != nil {
		return nil, err
	}

	raw := byteview.New(b)
	src, err := raw.Slice(srcOffset, AddrLen)
	if err != nil {
		return nil, errors.Wrap(err, "source address")
	}
	dst, err := raw.Slice(dstOffset, AddrLen)
	if err != nil {
		return nil, errors.Wrap(err, "destination address")
	}

	return &Header{raw: raw, src: src, dst: dst}, nil
}

func (h *Header) Len() int { return h.raw.Len() }

// SrcView returns the source address bytes without copying.
func (h *Header) SrcView() byteview.View { return h.src }

// DstView returns the destination address bytes without copying.
func (h *Header) DstView() byteview.View { return h.dst }

func (h *Header) Src() Addr { return addrFromView(h.src) }

func (h *Header) Dst() Addr { return addrFromView(h.dst) }

func addrFromView(v byteview.View) Addr {
	var addr Addr
	copy(addr[:], v.Bytes())
	return addr
}
