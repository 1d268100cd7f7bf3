// Package challenge derives Fiat-Shamir challenge scalars for this repo's
// Chaum-Pedersen discrete-log-equality proofs (the ciphertext-level
// threshold-binding proof in ciphertext.Encrypt/VerifyBinding and the per-share
// proof in decrypt.Partial/Aggregate; see DESIGN.md's "threshold mask
// reconstruction" entry for why these proofs replaced the original
// pairing-based checks).
//
// Rather than writing new modulus-reduction logic, Derive feeds a BLAKE3
// keystream (internal/mask's XOF) through backend.Scalar.SetRandom, reusing
// that method's existing oversample-then-reduce bias avoidance.
package challenge

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/tesslabs/tess/backend"
	"github.com/tesslabs/tess/internal/mask"
)

// scalarSeedBytes is how many keystream bytes to feed SetRandom: long enough
// that SetRandom's own oversampling (order byte length + 16 bytes, i.e. 48
// bytes for both backends' scalar fields) never runs out of input.
const scalarSeedBytes = 96

// Derive returns a challenge scalar bound to tag and the concatenation of
// transcript, each element length-prefixed so no ambiguity arises between
// e.g. transcript = [a, bc] and transcript = [ab, c].
func Derive(suite backend.Suite, tag string, transcript ...[]byte) (backend.Scalar, error) {
	var buf bytes.Buffer
	for _, t := range transcript {
		var lenBuf [8]byte
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(t)))
		buf.Write(lenBuf[:])
		buf.Write(t)
	}

	keystream, err := mask.Keystream(tag, buf.Bytes(), scalarSeedBytes)
	if err != nil {
		return nil, fmt.Errorf("challenge: derive keystream: %w", err)
	}

	c := suite.NewScalar()
	if _, err := c.SetRandom(bytes.NewReader(keystream)); err != nil {
		return nil, fmt.Errorf("challenge: reduce keystream to scalar: %w", err)
	}
	return c, nil
}
