// Package parity reads and forces the least-significant bit of a
// sample byte. Touching only the LSB changes a 16-bit sample's
// amplitude by at most one unit.
package parity

// IsEven reports whether the LSB of b is 0.
func IsEven(b byte) bool {
	return b&1 == 0
}

// ForceEven clears the LSB of b, embedding a 0 bit.
func ForceEven(b byte) byte {
	return b &^ 1
}

// ForceOdd sets the LSB of b, embedding a 1 bit.
func ForceOdd(b byte) byte {
	return b | 1
}

// Force returns b with its LSB set to bit.
func Force(b byte, bit bool) byte {
	if bit {
		return ForceOdd(b)
	}
	return ForceEven(b)
}
