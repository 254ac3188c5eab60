package wavemark

import (
	"bytes"
	"fmt"

	"github.com/go-audio/wav"
)

// VerifyCarrier checks that carrier is a canonical PCM 16-bit WAV
// buffer whose data chunk starts right after the 44-byte header, i.e.
// that the fixed sample-width assumption the codec makes actually holds
// for this carrier. It returns ErrInvalidCarrier for buffers shorter
// than the header and ErrUnsupportedCarrier for anything that is WAV
// but not the layout the codec embeds into.
func VerifyCarrier(carrier []byte) error {
	if len(carrier) < HeaderSize {
		return fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidCarrier, len(carrier), HeaderSize)
	}

	d := wav.NewDecoder(bytes.NewReader(carrier))
	if !d.IsValidFile() {
		return fmt.Errorf("%w: not a RIFF/WAVE buffer", ErrUnsupportedCarrier)
	}
	d.ReadInfo()
	if err := d.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedCarrier, err)
	}
	if d.WavAudioFormat != 1 {
		return fmt.Errorf("%w: audio format %d is not PCM", ErrUnsupportedCarrier, d.WavAudioFormat)
	}
	if int(d.BitDepth) != BitDepth {
		return fmt.Errorf("%w: bit depth %d, codec assumes %d", ErrUnsupportedCarrier, d.BitDepth, BitDepth)
	}
	// The codec addresses samples at fixed offsets from byte 44, so the
	// data chunk must sit exactly there.
	if !bytes.Equal(carrier[36:40], []byte("data")) {
		return fmt.Errorf("%w: data chunk is not at the canonical offset", ErrUnsupportedCarrier)
	}
	return nil
}
