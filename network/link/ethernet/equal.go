package ethernet

import "encoding/binary"

// Equal compares a and b as whole arrays. It is correct on every platform.
func Equal(a, b HardwareAddr) bool {
	return a == b
}

// EqualWords compares a and b as one 32-bit and one 16-bit word.
//
// Words are decoded from byte offsets with encoding/binary, never by
// reinterpreting the array's memory, so alignment of the 6-byte array is
// irrelevant to correctness. On architectures without cheap unaligned
// loads the decoding gains nothing and EqualWords falls back to Equal.
func EqualWords(a, b HardwareAddr) bool {
	if !wordCompare {
		return Equal(a, b)
	}
	return binary.LittleEndian.Uint32(a[0:4]) == binary.LittleEndian.Uint32(b[0:4]) &&
		binary.LittleEndian.Uint16(a[4:6]) == binary.LittleEndian.Uint16(b[4:6])
}
