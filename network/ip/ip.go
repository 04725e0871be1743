package ip

import "packetfield/network"

type Addr interface {
	network.Addr

	Version() uint
}
