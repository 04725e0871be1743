package ethernet

import (
	"strconv"
	"strings"

	"packetfield/network"

	"github.com/pkg/errors"
)

// HardwareAddr is a 6-byte link-layer (MAC) address.
type HardwareAddr [6]byte

var _ network.Addr = HardwareAddr{}

var Broadcast = HardwareAddr{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

func HardwareAddrFrom(b [6]byte) HardwareAddr { return HardwareAddr(b) }

// ParseHardwareAddr parses six colon separated hex octets, e.g. "bc:5f:f4:36:5a:be".
func ParseHardwareAddr(s string) (HardwareAddr, error) {
	octets := strings.Split(s, ":")
	if len(octets) != len(HardwareAddr{}) {
		return HardwareAddr{}, errors.New("octets are not properly seperated")
	}

	var addr HardwareAddr
	for idx, octet := range octets {
		if len(octet) != 2 {
			return HardwareAddr{}, errors.Errorf("octet %q is not two hex digits", octet)
		}
		n, err := strconv.ParseUint(octet, 16, 8)
		if err != nil {
			return HardwareAddr{}, errors.Wrap(err, "failed to parse octet")
		}
		addr[idx] = byte(n)
	}

	return addr, nil
}

func (a HardwareAddr) Bytes() [6]byte { return a }

func (a HardwareAddr) Raw() []byte { return a[:] }

func (a HardwareAddr) Equal(other HardwareAddr) bool { return Equal(a, other) }

func (a HardwareAddr) IsBroadcast() bool { return a == Broadcast }

// IsMulticast reports whether the group bit of the first octet is set.
// Broadcast is also a multicast address.
func (a HardwareAddr) IsMulticast() bool { return a[0]&0x01 != 0 }

func (a HardwareAddr) String() string {
	const hexDigit = "0123456789abcdef"

	buf := make([]byte, 0, len(a)*3-1)
	for idx, b := range a {
		if idx > 0 {
			buf = append(buf, ':')
		}
		buf = append(buf, hexDigit[b>>4], hexDigit[b&0xF])
	}
	return string(buf)
}
