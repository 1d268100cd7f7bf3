// Package mask implements the keyed extendable-output function spec §6
// calls "Symmetric KDF / stream (consumed)": given a byte string and a
// domain-separation tag, produce an arbitrary-length keystream. The payload
// keystream is derived once in ciphertext.Encrypt (K from the Gt mask M)
// and once in decrypt.Aggregate (K' from the recomputed M');
// internal/challenge also calls Keystream to derive every Fiat-Shamir
// challenge. It is a thin wrapper rather than a general hashing package.
//
// zeebo/blake3's "derive key" mode is BLAKE3's native context-separation
// construction, which is exactly the "keyed XOF with a domain tag" shape
// spec §6 asks for; it is pulled into this module from the luxfi-threshold
// pack member's go.mod since the teacher itself carries no XOF dependency
// (see DESIGN.md).
package mask

import (
	"io"

	"github.com/zeebo/blake3"
)

// Keystream derives an n-byte pseudorandom stream from material, bound to
// domainTag via BLAKE3's derive-key construction. Distinct domainTag values
// produce independent streams even for identical material.
func Keystream(domainTag string, material []byte, n int) ([]byte, error) {
	h := blake3.NewDeriveKey(domainTag)
	if _, err := h.Write(material); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(h.Digest(), out); err != nil {
		return nil, err
	}
	return out, nil
}

// XOR computes dst[i] = a[i] ^ b[i] for i < min(len(a), len(b)) into a
// freshly allocated slice of that length; the caller is responsible for
// zeroizing the keystream operand after use (spec §5 "symmetric keystream
// buffer is zeroed after XOR").
func XOR(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] ^ b[i]
	}
	return out
}
