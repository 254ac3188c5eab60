package wavemark

import (
	"fmt"
	"runtime"
)

var defaultWorkers = runtime.GOMAXPROCS(0)

type Option func(*Wavemark) error

// WithWorkers sets the number of goroutines used to force sample
// parities during Embed. Each worker owns a disjoint range of samples,
// so the output is identical for any value.
func WithWorkers(n int) Option {
	return func(w *Wavemark) error {
		if n < 1 {
			return fmt.Errorf("workers must be positive, got %d", n)
		}
		w.workers = n
		return nil
	}
}

// WithStrictCarrier verifies before each operation that the carrier
// really is canonical PCM 16-bit WAV instead of trusting the fixed
// sample-width assumption. See VerifyCarrier.
func WithStrictCarrier() Option {
	return func(w *Wavemark) error {
		w.strict = true
		return nil
	}
}
