package ethernet

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var equalFuncs = []struct {
	name  string
	equal func(a, b HardwareAddr) bool
}{
	{name: "array", equal: Equal},
	{name: "words", equal: EqualWords},
	{name: "method", equal: HardwareAddr.Equal},
}

func randomAddr(rnd *rand.Rand) HardwareAddr {
	var addr HardwareAddr
	for i := range addr {
		addr[i] = byte(rnd.UintN(256))
	}
	return addr
}

func TestEqualBoundaries(t *testing.T) {
	zero := HardwareAddr{}
	ones := Broadcast

	for _, f := range equalFuncs {
		t.Run(f.name, func(t *testing.T) {
			assert.True(t, f.equal(zero, zero))
			assert.True(t, f.equal(ones, ones))
			assert.False(t, f.equal(zero, ones))
			assert.False(t, f.equal(ones, zero))
		})
	}
}

func TestEqualSingleByteDifference(t *testing.T) {
	base := HardwareAddr{0xbc, 0x5f, 0xf4, 0x36, 0x5a, 0xbe}

	for idx := range base {
		other := base
		other[idx] ^= 0x01

		for _, f := range equalFuncs {
			assert.False(t, f.equal(base, other), "%s: byte %d", f.name, idx)
			assert.False(t, f.equal(other, base), "%s: byte %d", f.name, idx)
		}
	}
}

func TestEqualLaws(t *testing.T) {
	rnd := rand.New(rand.NewPCG(6, 48))

	for i := 0; i < 10000; i++ {
		a := randomAddr(rnd)
		b := randomAddr(rnd)
		if i%4 == 0 {
			b = a
		}
		c := b
		if i%8 == 0 {
			c[5] ^= 0x80
		}

		expected := a == b
		for _, f := range equalFuncs {
			require.True(t, f.equal(a, a), "%s not reflexive", f.name)
			require.Equal(t, expected, f.equal(a, b), "%s disagrees", f.name)
			require.Equal(t, f.equal(a, b), f.equal(b, a), "%s not symmetric", f.name)
			if f.equal(a, b) && f.equal(b, c) {
				require.True(t, f.equal(a, c), "%s not transitive", f.name)
			}
		}
	}
}
