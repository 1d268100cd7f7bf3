// Package kzg implements the commit/open/verify contract of spec §4.C,
// generalized from gnark-crypto's own single-curve ecc/<curve>/kzg package
// (this module's direct grounding source — see
// other_examples/...mimoo-gnark-crypto__ecc-bls12-377-fr-kzg-kzg.go) to an
// arbitrary backend.Suite and an arbitrary power-of-tau vector, since this
// module's SRS (package srs) is sized by the threshold scheme's n and t
// rather than by a single fixed circuit.
package kzg

import (
	"fmt"

	"github.com/tesslabs/tess/backend"
	"github.com/tesslabs/tess/poly"
	"github.com/tesslabs/tess/terrors"
)

// Digest is a commitment to a polynomial: [p(tau)]_1.
type Digest = backend.G1

// OpeningProof is a KZG proof that a committed polynomial evaluates to
// ClaimedValue at Point.
type OpeningProof struct {
	H            backend.G1
	Point        backend.Scalar
	ClaimedValue backend.Scalar
}

// Commit computes [p(tau)]_1 = Σ p[i] * powersG1[i] via a single
// variable-base multi-scalar multiplication. powersG1 must have length
// >= len(p).
func Commit(suite backend.Suite, p poly.Polynomial, powersG1 []backend.G1) (Digest, error) {
	if len(p) == 0 || len(p) > len(powersG1) {
		return nil, fmt.Errorf("%w: polynomial of length %d does not fit SRS of length %d", terrors.ErrBackendError, len(p), len(powersG1))
	}
	scalars := make([]backend.Scalar, len(p))
	copy(scalars, p)
	res, err := suite.MultiExpG1(powersG1[:len(p)], scalars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", terrors.ErrBackendError, err)
	}
	return res, nil
}

// Open computes a witness that p(point) = p.Eval(point), by committing to
// the synthetic-division quotient w(X) = (p(X) - p(point)) / (X - point).
func Open(suite backend.Suite, p poly.Polynomial, point backend.Scalar, powersG1 []backend.G1) (*OpeningProof, error) {
	if len(p) == 0 || len(p) > len(powersG1) {
		return nil, fmt.Errorf("%w: polynomial of length %d does not fit SRS of length %d", terrors.ErrBackendError, len(p), len(powersG1))
	}
	w, pa := poly.DivideByLinear(suite, p, point)
	hCommit, err := Commit(suite, w, powersG1)
	if err != nil {
		return nil, err
	}
	return &OpeningProof{H: hCommit, Point: point.Clone(), ClaimedValue: pa}, nil
}

// Verify checks e(C - [y]_1, [1]_2) == e(pi, [tau]_2 - [z]_2), i.e. that C
// commits to a polynomial agreeing with y at z, witnessed by pi.
//
// Grounded directly on Verify in the bls12-377 kzg.go grounding file: the
// same two-pairing check, expressed against backend.Suite instead of a
// single hard-coded curve.
func Verify(suite backend.Suite, commitment Digest, proof *OpeningProof, g1Gen backend.G1, g2Gen, g2Tau backend.G2) (bool, error) {
	claimedG1 := suite.NewG1().ScalarMul(g1Gen, proof.ClaimedValue)
	cMinusY := suite.NewG1().Sub(commitment, claimedG1)

	negH := suite.NewG1().Neg(proof.H)

	zG2 := suite.NewG2().ScalarMul(g2Gen, proof.Point)
	tauMinusZ := suite.NewG2().Sub(g2Tau, zG2)

	ok, err := suite.PairingCheck(
		[]backend.G1{cMinusY, negH},
		[]backend.G2{g2Gen, tauMinusZ},
	)
	if err != nil {
		return false, fmt.Errorf("%w: %v", terrors.ErrBackendError, err)
	}
	return ok, nil
}
