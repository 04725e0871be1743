package ethernet

import (
	"packetfield/lib/byteview"
	"packetfield/network"

	"github.com/pkg/errors"
)

const (
	// FrameMinLen covers the destination and source addresses.
	FrameMinLen = 12
	AddrLen     = 6

	dstOffset = 0
)

// Strategy selects how Extract reads the destination address.
type Strategy uint8

const (
	// StrategyCopy copies the address into an owned HardwareAddr.
	StrategyCopy Strategy = iota
	// StrategyBorrow reads it through a zero-copy AddrView first.
	StrategyBorrow
)

func (s Strategy) String() string {
	switch s {
	case StrategyCopy:
		return "copy"
	case StrategyBorrow:
		return "borrow"
	default:
		return "unknown"
	}
}

// AddrView is a hardware address borrowed from a frame buffer.
// It is only valid while that buffer is valid and unmodified; use Copy to
// keep the address beyond that.
type AddrView struct {
	v byteview.View
}

func (av AddrView) Bytes() []byte { return av.v.Bytes() }

func (av AddrView) Copy() HardwareAddr {
	var addr HardwareAddr
	copy(addr[:], av.v.Bytes())
	return addr
}

func (av AddrView) Equal(other AddrView) bool { return av.v.Equal(other.v) }

func (av AddrView) EqualAddr(addr HardwareAddr) bool {
	return av.v.Equal(byteview.New(addr[:]))
}

func (av AddrView) String() string { return av.Copy().String() }

// Extract returns an owned copy of the destination address of the frame in b.
func Extract(b []byte, s Strategy) (HardwareAddr, error) {
	switch s {
	case StrategyCopy:
		return ExtractDestination(b)
	case StrategyBorrow:
		av, err := DestinationView(b)
		if err != nil {
			return HardwareAddr{}, err
		}
		return av.Copy(), nil
	default:
		return HardwareAddr{}, errors.Errorf("unknown extraction strategy %d", s)
	}
}

func ExtractDestination(b []byte) (HardwareAddr, error) {
	av, err := DestinationView(b)
	if err != nil {
		return HardwareAddr{}, err
	}

	var addr HardwareAddr
	if _, err := av.v.CopyTo(addr[:]); err != nil {
		return HardwareAddr{}, errors.Wrap(err, "destination address")
	}
	return addr, nil
}

// DestinationView returns the destination address of the frame in b
// without copying. The result borrows b.
func DestinationView(b []byte) (AddrView, error) {
	if len(b) < FrameMinLen {
		return AddrView{}, errors.Wrapf(network.ErrMalformed, "ethernet frame needs %d bytes, got %d", FrameMinLen, len(b))
	}

	v, err := byteview.New(b).Slice(dstOffset, AddrLen)
	if err != nil {
		return AddrView{}, errors.Wrap(err, "destination address")
	}
	return AddrView{v: v}, nil
}
