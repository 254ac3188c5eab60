// Package wavemark hides an arbitrary binary payload inside the least
// significant bit of each sample of a PCM 16-bit WAV carrier, and
// recovers it losslessly. One payload bit occupies one 2-byte sample;
// forcing only the LSB of the sample's low byte perturbs the amplitude
// by at most one unit out of 65536.
package wavemark

import (
	"context"
	"errors"
	"fmt"

	"github.com/yyyoichi/wavemark/internal/bitconv"
	"github.com/yyyoichi/wavemark/internal/wavemark"
)

var (
	// ErrInvalidCarrier means the carrier is shorter than the fixed
	// 44-byte WAV header.
	ErrInvalidCarrier = errors.New("carrier is not a valid wave buffer")
	// ErrCarrierTooSmall means the carrier body has too few samples to
	// hold the bit-count prefix plus the payload bits.
	ErrCarrierTooSmall = errors.New("carrier has too few samples for the payload")
	// ErrPayloadTooLarge means the payload bit count does not fit the
	// 32-bit prefix.
	ErrPayloadTooLarge = errors.New("payload exceeds the representable bit count")
	// ErrTruncatedMessage means the carrier body cannot satisfy the bit
	// count its prefix declares; the carrier is corrupted or was never
	// embedded.
	ErrTruncatedMessage = errors.New("carrier does not hold the declared message")
	// ErrUnsupportedCarrier means strict verification rejected the
	// carrier as non-canonical PCM 16-bit WAV.
	ErrUnsupportedCarrier = errors.New("carrier is not canonical PCM 16-bit wave")
)

// Fixed carrier geometry. The header is opaque and the sample width is
// assumed, not parsed; use VerifyCarrier to check the assumption.
const (
	HeaderSize     = wavemark.HeaderSize
	BytesPerSample = wavemark.BytesPerSample
	PrefixBits     = wavemark.PrefixBits
	BitDepth       = wavemark.BitDepth

	// MaxPayloadBytes is the largest payload Embed accepts.
	MaxPayloadBytes = wavemark.MaxPayloadBytes
)

// Embed hides payload inside carrier with the specified options.
// This is a convenience function that creates a Wavemark instance and calls its Embed method.
func Embed(ctx context.Context, carrier, payload []byte, opts ...Option) ([]byte, error) {
	w, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return w.Embed(ctx, carrier, payload)
}

// Extract recovers a payload from an embedded carrier with the specified options.
// This is a convenience function that creates a Wavemark instance and calls its Extract method.
func Extract(ctx context.Context, carrier []byte, opts ...Option) ([]byte, error) {
	w, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return w.Extract(ctx, carrier)
}

type Wavemark struct {
	workers int
	strict  bool
}

// New initializes a Wavemark processor. The embed fan-out and strict
// carrier verification can be optionally specified; for default values,
// refer to the init function.
func New(opts ...Option) (*Wavemark, error) {
	w := new(Wavemark)
	if err := w.init(opts...); err != nil {
		return nil, err
	}
	return w, nil
}

// Embed hides payload inside carrier.
//
// Process:
//  1. Splits the carrier into the opaque 44-byte header and the body.
//  2. Builds the frame: a 32-bit bit-count prefix followed by the
//     payload bits, LSB first.
//  3. Forces one frame bit into the LSB of each successive sample's
//     first byte; every other byte is copied verbatim.
//
// The output has the same length as the carrier. All preconditions are
// checked up front; on error no output is produced.
func (w *Wavemark) Embed(ctx context.Context, carrier, payload []byte) ([]byte, error) {
	if len(carrier) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidCarrier, len(carrier), HeaderSize)
	}
	if w.strict {
		if err := VerifyCarrier(carrier); err != nil {
			return nil, err
		}
	}
	if len(payload) > MaxPayloadBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, len(payload), MaxPayloadBytes)
	}
	frame := wavemark.NewFrame(payload)
	if need, body := len(frame)*BytesPerSample, len(carrier)-HeaderSize; need > body {
		return nil, fmt.Errorf("%w: need %d body bytes, have %d", ErrCarrierTooSmall, need, body)
	}
	return wavemark.Embed(ctx, carrier, frame, w.workers), nil
}

// Extract recovers the payload embedded in carrier.
//
// Process:
//  1. Drops the 44-byte header.
//  2. Reads the 32-bit bit-count prefix from the first 32 samples.
//  3. Reads exactly that many bits from the following samples and
//     regroups them into bytes, LSB first.
//
// Extracting from a carrier that was never embedded yields garbage but
// never reads outside validated bounds.
func (w *Wavemark) Extract(ctx context.Context, carrier []byte) ([]byte, error) {
	if len(carrier) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidCarrier, len(carrier), HeaderSize)
	}
	if w.strict {
		if err := VerifyCarrier(carrier); err != nil {
			return nil, err
		}
	}
	body := carrier[HeaderSize:]
	if len(body) < PrefixBits*BytesPerSample {
		return nil, fmt.Errorf("%w: body cannot hold the bit-count prefix", ErrTruncatedMessage)
	}
	messageBits := wavemark.ReadPrefix(body)
	if messageBits%8 != 0 {
		return nil, fmt.Errorf("%w: declared bit count %d is not byte aligned", ErrTruncatedMessage, messageBits)
	}
	if need := (int64(PrefixBits) + int64(messageBits)) * BytesPerSample; need > int64(len(body)) {
		return nil, fmt.Errorf("%w: need %d body bytes, have %d", ErrTruncatedMessage, need, len(body))
	}
	payload, err := bitconv.BoolsToBytes(wavemark.ExtractBits(body, PrefixBits, int(messageBits)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncatedMessage, err)
	}
	return payload, nil
}

// Capacity returns how many payload bytes the carrier can hold.
func Capacity(carrier []byte) (int, error) {
	if len(carrier) < HeaderSize {
		return 0, fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidCarrier, len(carrier), HeaderSize)
	}
	samples := (len(carrier) - HeaderSize) / BytesPerSample
	if samples <= PrefixBits {
		return 0, nil
	}
	return min((samples-PrefixBits)/8, MaxPayloadBytes), nil
}

func (w *Wavemark) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return err
		}
	}
	if w.workers == 0 {
		w.workers = defaultWorkers
	}
	return nil
}
