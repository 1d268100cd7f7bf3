// Package decrypt implements partial decryption (spec §4.H) and
// subset-aggregated reconstruction (spec §4.I). A partial share is a scalar
// multiplication no different in shape from a BLS signature share, plus a
// Chaum-Pedersen proof that its exponent matches the party's public key;
// aggregation verifies every share's proof before combining via
// Shamir-at-0 Lagrange weights, the same per-share verification idiom the
// eigenx-kms-go IBE flow test grounding file applies to its per-operator
// partial shares.
package decrypt

import (
	"fmt"
	"io"

	"github.com/tesslabs/tess/backend"
	"github.com/tesslabs/tess/ciphertext"
	"github.com/tesslabs/tess/internal/challenge"
	"github.com/tesslabs/tess/keygen"
	"github.com/tesslabs/tess/terrors"
)

// partialChallengeTag domain-separates this package's per-share
// Chaum-Pedersen challenge from ciphertext's threshold-binding challenge.
const partialChallengeTag = "tess/v1/partial-binding"

// Share is party index's partial decryption d_i = sk_i * gamma, together
// with a Chaum-Pedersen proof (Zc, Zs) that d_i and the party's public key
// pk_i = sk_i * G1Gen share the discrete log sk_i. The proof is bound to
// ct.Gamma, so it cannot be replayed against a different ciphertext.
type Share struct {
	Index int
	D     backend.G1
	Zc    backend.Scalar
	Zs    backend.Scalar
}

// Partial computes sk's contribution to a future aggregate decryption of ct
// and proves, in zero knowledge, that the contribution is genuine: that d_i
// and pk_i = sk_i*g1Gen share the same exponent sk_i. Unlike a plain scalar
// multiplication, this requires fresh randomness per call (the NIZK's
// blinding factor), so Partial now takes an rng.
func Partial(rng io.Reader, sk *keygen.SecretKey, g1Gen backend.G1, ct *ciphertext.Ciphertext) (*Share, error) {
	if ct.Gamma == nil || ct.Gamma.IsZero() {
		return nil, fmt.Errorf("%w: gamma is identity", terrors.ErrMalformedCiphertext)
	}
	suite := sk.Suite

	d := suite.NewG1().ScalarMul(ct.Gamma, sk.Scalar())
	pk := suite.NewG1().ScalarMul(g1Gen, sk.Scalar())

	k := suite.NewScalar()
	if _, err := k.SetRandom(rng); err != nil {
		return nil, fmt.Errorf("%w: %v", terrors.ErrBackendError, err)
	}
	a1 := suite.NewG1().ScalarMul(ct.Gamma, k)
	a2 := suite.NewG1().ScalarMul(g1Gen, k)

	c, err := challenge.Derive(suite, partialChallengeTag, ct.Gamma.Bytes(), d.Bytes(), pk.Bytes(), a1.Bytes(), a2.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", terrors.ErrBackendError, err)
	}
	zs := suite.NewScalar().Add(k, suite.NewScalar().Mul(c, sk.Scalar()))

	return &Share{Index: sk.Index, D: d, Zc: c, Zs: zs}, nil
}

// verifyPartial checks sh's Chaum-Pedersen proof against ct.Gamma and the
// claimed owner's public key pk, recomputing the prover's A1/A2 from the
// verification equations A1' = [Zs]Gamma - [Zc]D, A2' = [Zs]G1Gen - [Zc]pk.
// It never returns an error: a forged or tampered share simply fails (spec
// §7 "verification failures return Verified:false, never a thrown error").
func verifyPartial(suite backend.Suite, g1Gen backend.G1, ct *ciphertext.Ciphertext, pk backend.G1, sh *Share) bool {
	if sh.D == nil || sh.Zc == nil || sh.Zs == nil {
		return false
	}
	a1 := suite.NewG1().Sub(
		suite.NewG1().ScalarMul(ct.Gamma, sh.Zs),
		suite.NewG1().ScalarMul(sh.D, sh.Zc),
	)
	a2 := suite.NewG1().Sub(
		suite.NewG1().ScalarMul(g1Gen, sh.Zs),
		suite.NewG1().ScalarMul(pk, sh.Zc),
	)
	c, err := challenge.Derive(suite, partialChallengeTag, ct.Gamma.Bytes(), sh.D.Bytes(), pk.Bytes(), a1.Bytes(), a2.Bytes())
	if err != nil {
		return false
	}
	return c.Equal(sh.Zc)
}
