package ipv4

import (
	"packetfield/lib/byteview"
	"packetfield/network"

	"github.com/pkg/errors"
)

// Strategy selects how ExtractAddrs reads the address fields.
// All strategies return identical results for the same input.
type Strategy uint8

const (
	// StrategyCopy slices the fields at their fixed offsets and copies them.
	StrategyCopy Strategy = iota
	// StrategySequential seeks a reader to the source field and reads
	// both addresses as consecutive big-endian words.
	StrategySequential
	// StrategyView validates the buffer through ParseHeader and copies
	// out of the header's field views.
	StrategyView
)

func (s Strategy) String() string {
	switch s {
	case StrategyCopy:
		return "copy"
	case StrategySequential:
		return "sequential"
	case StrategyView:
		return "view"
	default:
		return "unknown"
	}
}

// ExtractAddrs returns the source and destination addresses of the IPv4
// header in b. Both results are zero on error.
func ExtractAddrs(b []byte, s Strategy) (src, dst Addr, err error) {
	switch s {
	case StrategyCopy:
		return ExtractAddrsCopy(b)
	case StrategySequential:
		return ExtractAddrsSequential(b)
	case StrategyView:
		h, err := ParseHeader(b)
		if err != nil {
			return Addr{}, Addr{}, err
		}
		return h.Src(), h.Dst(), nil
	default:
		return Addr{}, Addr{}, errors.Errorf("unknown extraction strategy %d", s)
	}
}

func ExtractAddrsCopy(b []byte) (src, dst Addr, err error) {
	if err := checkLen(b); err != nil {
		return Addr{}, Addr{}, err
	}

	v := byteview.New(b)
	if err := copyAddr(v, srcOffset, &src); err != nil {
		return Addr{}, Addr{}, errors.Wrap(err, "source address")
	}
	if err := copyAddr(v, dstOffset, &dst); err != nil {
		return Addr{}, Addr{}, errors.Wrap(err, "destination address")
	}

	return src, dst, nil
}

func ExtractAddrsSequential(b []byte) (src, dst Addr, err error) {
	if err := checkLen(b); err != nil {
		return Addr{}, Addr{}, err
	}

	r := byteview.NewReader(byteview.New(b))
	if err := r.Seek(srcOffset); err != nil {
		return Addr{}, Addr{}, errors.Wrap(err, "seeking to source address")
	}
	s, err := r.ReadUint32()
	if err != nil {
		return Addr{}, Addr{}, errors.Wrap(err, "source address")
	}
	d, err := r.ReadUint32()
	if err != nil {
		return Addr{}, Addr{}, errors.Wrap(err, "destination address")
	}

	return AddrFromUint32(s), AddrFromUint32(d), nil
}

func checkLen(b []byte) error {
	if len(b) < HeaderMinLen {
		return errors.Wrapf(network.ErrMalformed, "ipv4 header needs %d bytes, got %d", HeaderMinLen, len(b))
	}
	return nil
}

func copyAddr(v byteview.View, off int, dst *Addr) error {
	field, err := v.Slice(off, AddrLen)
	if err != nil {
		return err
	}
	_, err = field.CopyTo(dst[:])
	return err
}
