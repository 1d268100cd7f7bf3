// Package backend defines the abstract pairing-friendly-curve capability set
// that the rest of this module is written against. A concrete backend
// (bls12381, bls12377) implements Suite by wrapping a gnark-crypto curve
// package; the protocol packages (poly, kzg, srs, keygen, aggregate,
// ciphertext, decrypt) never import gnark-crypto directly.
//
// The abstraction boundary sits at the package API only: every MultiExp/FFT
// call a Suite exposes runs entirely inside the concrete backend against
// concrete gnark-crypto types, so there is no interface dispatch inside any
// hot loop.
package backend

import (
	"io"
	"math/big"
)

// Scalar is an element of the curve's prime-order scalar field F.
type Scalar interface {
	// Set copies a into the receiver and returns the receiver.
	Set(a Scalar) Scalar
	SetUint64(v uint64) Scalar
	SetBigInt(v *big.Int) Scalar
	// SetRandom draws a uniform element of F from r.
	SetRandom(r io.Reader) (Scalar, error)
	SetBytes(b []byte) (Scalar, error)
	Bytes() []byte

	Add(a, b Scalar) Scalar
	Sub(a, b Scalar) Scalar
	Mul(a, b Scalar) Scalar
	Square(a Scalar) Scalar
	Inverse(a Scalar) Scalar
	Neg(a Scalar) Scalar
	Exp(a Scalar, e *big.Int) Scalar

	IsZero() bool
	Equal(b Scalar) bool
	Clone() Scalar
}

// G1 is an element of the first pairing source group.
type G1 interface {
	Set(a G1) G1
	Add(a, b G1) G1
	Sub(a, b G1) G1
	Neg(a G1) G1
	ScalarMul(p G1, s Scalar) G1
	IsZero() bool
	Equal(b G1) bool
	Bytes() []byte
	SetBytes(b []byte) (G1, error)
	Clone() G1
}

// G2 is an element of the second pairing source group.
type G2 interface {
	Set(a G2) G2
	Add(a, b G2) G2
	Sub(a, b G2) G2
	Neg(a G2) G2
	ScalarMul(p G2, s Scalar) G2
	IsZero() bool
	Equal(b G2) bool
	Bytes() []byte
	SetBytes(b []byte) (G2, error)
	Clone() G2
}

// GT is an element of the pairing target group.
type GT interface {
	Set(a GT) GT
	Mul(a, b GT) GT
	Exp(a GT, e *big.Int) GT
	Inverse(a GT) GT
	IsOne() bool
	Equal(b GT) bool
	Bytes() []byte
	SetBytes(b []byte) (GT, error)
	Clone() GT
}

// Domain is a size-N multiplicative subgroup of F together with forward and
// inverse FFTs over it. Both FFT and FFTInverse take and return natural
// (non-bit-reversed) coefficient/evaluation order.
type Domain interface {
	Cardinality() uint64
	Generator() Scalar
	GeneratorInverse() Scalar
	CardinalityInverse() Scalar
	// FFT evaluates coeffs (a polynomial in coefficient form, len(coeffs) ==
	// Cardinality) at every point of the domain, in place.
	FFT(coeffs []Scalar)
	// FFTInverse interpolates evals (evaluations over the domain, in domain
	// order) into coefficient form, in place.
	FFTInverse(evals []Scalar)
}

// Suite is the capability set a concrete pairing-friendly curve backend
// must provide: scalar/group arithmetic, pairing, multi-pairing, batched
// fixed/variable-base scalar multiplication, and an FFT domain factory.
type Suite interface {
	Name() string
	ScalarFieldOrder() *big.Int

	NewScalar() Scalar
	NewG1() G1
	NewG2() G2
	NewGT() GT

	G1Generator() G1
	G2Generator() G2

	// Pairing computes e(p, q).
	Pairing(p G1, q G2) (GT, error)
	// MultiPairing computes the product Π e(ps[i], qs[i]) with a single
	// combined Miller loop and one final exponentiation.
	MultiPairing(ps []G1, qs []G2) (GT, error)
	// PairingCheck reports whether MultiPairing(ps, qs) == 1, without
	// materializing the GT result (cheaper for pure equality checks).
	PairingCheck(ps []G1, qs []G2) (bool, error)

	// MultiExpG1 computes Σ scalars[i]*bases[i] via a single (internally
	// parallel) variable-base multi-scalar multiplication.
	MultiExpG1(bases []G1, scalars []Scalar) (G1, error)
	// BatchScalarMulG1 computes gen*scalars[i] for every i via a single
	// (internally parallel) fixed-base batch multiplication.
	BatchScalarMulG1(gen G1, scalars []Scalar) ([]G1, error)
	// BatchScalarMulG2 is the G2 analogue of BatchScalarMulG1.
	BatchScalarMulG2(gen G2, scalars []Scalar) ([]G2, error)

	// Domain returns an evaluation domain of size the smallest power of two
	// >= n.
	Domain(n uint64) (Domain, error)
}
