// Package wavemark implements the carrier-level mechanics of LSB
// embedding: building the length-prefixed frame and mapping frame bits
// onto the parity of successive carrier samples.
package wavemark

import (
	"context"
	"sync"

	"github.com/yyyoichi/wavemark/internal/bitconv"
	"github.com/yyyoichi/wavemark/internal/parity"
)

const (
	// HeaderSize is the canonical PCM WAV header length in bytes. The
	// header is treated as opaque and copied verbatim.
	HeaderSize = 44
	// BytesPerSample is the fixed sample stride; 16-bit PCM.
	BytesPerSample = 2
	// PrefixBits is the width of the frame's bit-count prefix.
	PrefixBits = 32
	// BitsPerByte is the number of carrier samples one payload byte occupies.
	BitsPerByte = 8
	// BitDepth is the assumed carrier bit depth.
	BitDepth = 16

	// MaxPayloadBytes is the largest payload whose bit count the
	// 32-bit prefix can represent without truncation.
	MaxPayloadBytes = (1<<PrefixBits - 1) / BitsPerByte
)

// NewFrame builds the embeddable bit sequence for payload: a 32-bit
// LSB-first prefix holding the payload's bit count, followed by the
// payload bits in byte order, LSB first within each byte. The caller
// must reject payloads larger than MaxPayloadBytes first.
func NewFrame(payload []byte) []bool {
	bits := make([]bool, 0, PrefixBits+len(payload)*BitsPerByte)
	bits = append(bits, bitconv.Uint32ToBools(uint32(len(payload)*BitsPerByte))...)
	bits = append(bits, bitconv.BytesToBools(payload)...)
	return bits
}

// Embed returns a copy of carrier in which the first byte of sample i
// has its LSB forced to frame[i]. The header, every sample beyond the
// frame and any trailing partial sample are copied untouched, so the
// output length always equals the carrier length.
//
// The per-sample transform is independent, so the frame is split into
// disjoint chunks forced concurrently; output is identical for any
// workers value. The caller must validate capacity beforehand.
func Embed(ctx context.Context, carrier []byte, frame []bool, workers int) []byte {
	out := make([]byte, len(carrier))
	copy(out, carrier)

	if workers < 1 {
		workers = 1
	}
	if workers > len(frame) {
		workers = max(len(frame), 1)
	}
	chunk := (len(frame) + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < len(frame); lo += chunk {
		hi := min(lo+chunk, len(frame))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				at := HeaderSize + i*BytesPerSample
				out[at] = parity.Force(out[at], frame[i])
			}
		}(lo, hi)
	}
	wg.Wait()
	return out
}

// ExtractBits reads n bits from body starting at sample offset off,
// one bit per sample, taken from the parity of each sample's first
// byte. The caller must validate that body holds off+n full samples.
func ExtractBits(body []byte, off, n int) []bool {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = !parity.IsEven(body[(off+i)*BytesPerSample])
	}
	return bits
}

// ReadPrefix decodes the 32-bit bit-count prefix from the first
// PrefixBits samples of body.
func ReadPrefix(body []byte) uint32 {
	return uint32(bitconv.BoolsToValue(ExtractBits(body, 0, PrefixBits)))
}
