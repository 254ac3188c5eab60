package bitconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteToBools(t *testing.T) {
	test := []struct {
		b   byte
		exp []bool
	}{
		{0x00, []bool{false, false, false, false, false, false, false, false}},
		{0x01, []bool{true, false, false, false, false, false, false, false}},
		{0x41, []bool{true, false, false, false, false, false, true, false}},
		{0x80, []bool{false, false, false, false, false, false, false, true}},
		{0xff, []bool{true, true, true, true, true, true, true, true}},
	}
	for _, tt := range test {
		assert.Equal(t, tt.exp, ByteToBools(tt.b), "byte %#02x", tt.b)
	}
}

func TestUint32ToBools(t *testing.T) {
	bits := Uint32ToBools(8)
	require.Len(t, bits, 32)
	for i, b := range bits {
		assert.Equal(t, i == 3, b, "bit %d of 8", i)
	}
}

func TestBitConvRoundTrip(t *testing.T) {
	test := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"single", []byte{0b10101010}},
		{"pair", []byte{0b11110000, 0b00001111}},
		{"ascii", []byte("Hello")},
		{"utf8", []byte("こんにちは")},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			bits := BytesToBools(tt.data)
			require.Len(t, bits, len(tt.data)*8)
			out, err := BoolsToBytes(bits)
			require.NoError(t, err)
			assert.Equal(t, tt.data, out)
		})
	}
}

func TestBoolsToValue(t *testing.T) {
	for _, v := range []uint32{0, 1, 8, 255, 256, 1 << 20, 1<<32 - 1} {
		assert.Equal(t, uint64(v), BoolsToValue(Uint32ToBools(v)), "value %d", v)
	}
	for b := 0; b < 256; b++ {
		assert.Equal(t, uint64(b), BoolsToValue(ByteToBools(byte(b))))
	}
}

func TestBoolsToBytesUnaligned(t *testing.T) {
	_, err := BoolsToBytes(make([]bool, 13))
	assert.Error(t, err)
}
