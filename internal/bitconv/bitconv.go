// Package bitconv converts between bytes, unsigned integers and
// least-significant-bit-first boolean bit sequences.
package bitconv

import "fmt"

// ByteToBools returns the 8 bits of b, LSB first: bit i is (b>>i)&1.
func ByteToBools(b byte) []bool {
	bits := make([]bool, 8)
	for i := range bits {
		bits[i] = (b>>uint(i))&1 == 1
	}
	return bits
}

// Uint32ToBools returns the 32 bits of v, LSB first.
func Uint32ToBools(v uint32) []bool {
	bits := make([]bool, 32)
	for i := range bits {
		bits[i] = (v>>uint(i))&1 == 1
	}
	return bits
}

// BytesToBools flattens p into len(p)*8 bits, byte order preserved,
// LSB first within each byte.
func BytesToBools(p []byte) []bool {
	bits := make([]bool, 0, len(p)*8)
	for _, b := range p {
		for i := 0; i < 8; i++ {
			bits = append(bits, (b>>uint(i))&1 == 1)
		}
	}
	return bits
}

// BoolsToValue interprets bits LSB first: bit i contributes bits[i]<<i.
// Inverse of ByteToBools and Uint32ToBools for widths up to 64.
func BoolsToValue(bits []bool) uint64 {
	var v uint64
	for i, b := range bits {
		if b {
			v |= 1 << uint(i)
		}
	}
	return v
}

// BoolsToBytes regroups bits into bytes, 8 bits per byte, LSB first.
// The length of bits must be a multiple of 8; trailing bits are never
// silently dropped or padded.
func BoolsToBytes(bits []bool) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, fmt.Errorf("bit count %d is not byte aligned", len(bits))
	}
	out := make([]byte, len(bits)/8)
	for i := range out {
		out[i] = byte(BoolsToValue(bits[i*8 : (i+1)*8]))
	}
	return out, nil
}
