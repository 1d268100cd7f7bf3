// Package telemetry carries this module's ambient structured logging. Spec
// §1 lists logging as an external collaborator the core is written against,
// not a protocol concern. srs.NewTrusted, keygen.GenerateAll and
// aggregate.New log party counts and sizes at debug level, and
// decrypt.Aggregate logs the index of a share that fails verification;
// ciphertext.Encrypt and decrypt.Partial do not log, and no timings are
// recorded. Nothing logs secret scalars, masks, or plaintext bytes (spec §5
// secret hygiene, carried into the ambient stack).
package telemetry

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Log returns the package-wide logger, initialized lazily with the
// teacher's own conventional zerolog console writer.
func Log() zerolog.Logger {
	once.Do(func() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().
			Timestamp().
			Str("component", "tess").
			Logger()
	})
	return logger
}

// SetLevel adjusts the global zerolog level, e.g. to silence debug logging
// in a benchmark run.
func SetLevel(l zerolog.Level) {
	zerolog.SetGlobalLevel(l)
}
