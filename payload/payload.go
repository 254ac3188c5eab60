// Package payload prepares byte payloads before embedding and decodes
// them after extraction. Payloads can optionally be protected with a
// Golay error correction code and a seeded deterministic shuffle, so
// that isolated sample-level bit flips in the carrier remain
// recoverable.
package payload

var (
	DefaultShuffleSeed int64 = 1234567890
)

type (
	// Option selects the encoding algorithm, i.e. whether an error
	// correction code is applied and with which shuffle seed.
	Option func(*codecFactory)

	codecFactory struct {
		f factory
	}
)

// WithoutECC uses the payload bytes as-is without encoding.
func WithoutECC() Option {
	return func(cf *codecFactory) {
		cf.f = withoutecc{}
	}
}

// WithGolay protects the payload with the Golay(23,12) code. seed
// drives a deterministic shuffle of the encoded bits so that a
// localized burst of sample corruption spreads across codewords.
func WithGolay(seed int64) Option {
	return func(cf *codecFactory) {
		cf.f = shuffledgolay(seed)
	}
}

func newFactory(opts []Option) factory {
	if len(opts) == 0 {
		opts = append(opts, WithGolay(DefaultShuffleSeed))
	}
	var cf codecFactory
	for _, opt := range opts {
		opt(&cf)
	}
	return cf.f
}

// Encode returns the embeddable representation of data. By default it
// uses the Golay code with shuffle; pass WithoutECC to embed data
// unchanged.
func Encode(data []byte, opts ...Option) []byte {
	return newFactory(opts).encode(data)
}

// Decode recovers the original originalLen bytes from an extracted
// payload. The options must match the ones used by Encode.
func Decode(data []byte, originalLen int, opts ...Option) ([]byte, error) {
	return newFactory(opts).decode(data, originalLen)
}

// EncodedLen returns the number of bytes Encode produces for an
// n-byte payload, for capacity planning against a carrier.
func EncodedLen(n int, opts ...Option) int {
	return newFactory(opts).encodedLen(n)
}

type factory interface {
	encode(data []byte) []byte
	decode(data []byte, originalLen int) ([]byte, error)
	encodedLen(n int) int
}
