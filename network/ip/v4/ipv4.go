package ipv4

import (
	"encoding/binary"
	"strconv"
	"strings"

	"packetfield/network/ip"

	"github.com/pkg/errors"
)

// Addr is an IPv4 address in network byte order.
type Addr [4]byte

var _ ip.Addr = Addr{}

func AddrFrom(b [4]byte) Addr { return Addr(b) }

func AddrFromUint32(u uint32) Addr {
	var addr Addr
	binary.BigEndian.PutUint32(addr[:], u)
	return addr
}

func ParseAddr(s string) (Addr, error) {
	digits := strings.Split(s, ".")
	if len(digits) != 4 {
		return Addr{}, errors.New("digits are not properly seperated")
	}

	var addr Addr
	for idx, digit := range digits {
		n, err := strconv.ParseUint(digit, 10, 8)
		if err != nil {
			return Addr{}, errors.Wrap(err, "failed to parse a part into digit")
		}

		if digit[0] == '0' && !(n == 0 && len(digit) == 1) {
			// '00', '01'
			return Addr{}, errors.New("leading zero is not allowed in digit")
		}
		addr[idx] = byte(n)
	}

	return addr, nil
}

func (addr Addr) Bytes() [4]byte { return addr }

func (addr Addr) Raw() []byte { return addr[:] }

func (addr Addr) ToUint32() uint32 {
	return binary.BigEndian.Uint32(addr[:])
}

func (addr Addr) Version() uint { return 4 }

func (addr Addr) String() string {
	buf := make([]byte, 0, len("255.255.255.255"))
	for idx, b := range addr {
		if idx > 0 {
			buf = append(buf, '.')
		}
		buf = strconv.AppendUint(buf, uint64(b), 10)
	}
	return string(buf)
}
