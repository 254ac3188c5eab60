package wavemark

import (
	"encoding/binary"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Quality returns the peak signal-to-noise ratio in dB between an
// original carrier and its embedded counterpart, computed over full
// 16-bit samples. Identical bodies yield +Inf. LSB-only embedding keeps
// the ratio above 90dB for any realistic carrier.
func Quality(original, embedded []byte) (float64, error) {
	if len(original) != len(embedded) {
		return 0, fmt.Errorf("carrier lengths differ: %d vs %d", len(original), len(embedded))
	}
	if len(original) < HeaderSize {
		return 0, fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidCarrier, len(original), HeaderSize)
	}
	samples := (len(original) - HeaderSize) / BytesPerSample
	if samples == 0 {
		return 0, fmt.Errorf("%w: carrier body holds no samples", ErrInvalidCarrier)
	}

	sq := make([]float64, samples)
	for i := range sq {
		at := HeaderSize + i*BytesPerSample
		a := int16(binary.LittleEndian.Uint16(original[at:]))
		b := int16(binary.LittleEndian.Uint16(embedded[at:]))
		d := float64(int(a) - int(b))
		sq[i] = d * d
	}
	mse := stat.Mean(sq, nil)
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 20*math.Log10(math.MaxInt16) - 10*math.Log10(mse), nil
}
