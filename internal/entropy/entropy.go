// Package entropy wraps the module's single point of contact with a random
// source (spec §6 "Rng (consumed)"). The core never reads crypto/rand
// itself — every randomized entry point (srs.NewTrusted, ciphertext.Encrypt,
// decrypt.Partial) takes an io.Reader and draws from it, so a deterministic
// stream can be substituted in tests (spec §8 "Determinism"). keygen no
// longer draws randomness at all: a party's secret is the Shamir share
// srs.NewTrusted already dealt, not an independently sampled scalar (see
// DESIGN.md's "threshold mask reconstruction" entry).
package entropy

import (
	"crypto/rand"
	"crypto/sha256"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

func newSHA256() hash.Hash { return sha256.New() }

// System returns the operating system's cryptographically secure RNG. No
// third-party CSPRNG in the pack improves on this for raw entropy (see
// DESIGN.md); everything downstream of this reader goes through explicit,
// auditable field-reduction code in the backend packages.
func System() io.Reader { return rand.Reader }

// Deterministic derives a reproducible byte stream from seed via HKDF-Expand
// (SHA-256), for test harnesses exercising spec §8's determinism property
// ("for a fixed rng seed and inputs, param_gen/keygen/encrypt produce
// byte-identical outputs regardless of thread count"). Not used outside
// tests; production callers should pass entropy.System().
func Deterministic(seed []byte, label string) io.Reader {
	return hkdf.Expand(newSHA256, seed, []byte(label))
}
