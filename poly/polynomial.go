// Package poly implements the dense polynomial and evaluation-domain
// utilities spec §4.B describes: coefficient-form arithmetic, synthetic
// division, the vanishing polynomial of H, the Lagrange basis, FFT-based
// interpolation, and Shamir-at-0 Lagrange weights for a subset of domain
// points. There is no subset-indicator polynomial. All arithmetic runs
// through backend.Scalar/backend.Domain, so this package has no curve
// dependency of its own.
//
// Grounded on gnark-crypto's own fr/polynomial idiom (dividePolyByXminusA in
// the bls12-377 kzg.go grounding file) and the teacher's Lagrange-form trace
// construction idiom from its PLONK setup package.
package poly

import "github.com/tesslabs/tess/backend"

// Polynomial is a dense polynomial in coefficient form: p(X) = Σ coeffs[i]*X^i.
type Polynomial []backend.Scalar

// New returns a zero polynomial of the given degree bound (length n means
// degree <= n-1), backed by freshly allocated suite scalars.
func New(suite backend.Suite, n int) Polynomial {
	p := make(Polynomial, n)
	for i := range p {
		p[i] = suite.NewScalar().SetUint64(0)
	}
	return p
}

// Degree returns the index of the highest nonzero coefficient, or -1 for
// the zero polynomial.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of p.
func (p Polynomial) Clone() Polynomial {
	out := make(Polynomial, len(p))
	for i, c := range p {
		out[i] = c.Clone()
	}
	return out
}

// Eval evaluates p at x via Horner's method.
func (p Polynomial) Eval(suite backend.Suite, x backend.Scalar) backend.Scalar {
	if len(p) == 0 {
		return suite.NewScalar().SetUint64(0)
	}
	acc := p[len(p)-1].Clone()
	tmp := suite.NewScalar()
	for i := len(p) - 2; i >= 0; i-- {
		tmp.Mul(acc, x)
		acc.Add(tmp, p[i])
	}
	return acc
}

// Add returns a+b.
func Add(suite backend.Suite, a, b Polynomial) Polynomial {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := New(suite, n)
	for i := 0; i < n; i++ {
		var av, bv backend.Scalar = suite.NewScalar().SetUint64(0), suite.NewScalar().SetUint64(0)
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i].Add(av, bv)
	}
	return out
}

// ScaleInPlace multiplies every coefficient of p by c, in place.
func ScaleInPlace(p Polynomial, c backend.Scalar) {
	for i := range p {
		p[i].Mul(p[i], c)
	}
}

// DivideByLinear computes q(X) = (p(X) - p(a)) / (X - a) via synthetic
// division, returning q and the evaluation p(a). deg(q) = deg(p)-1.
//
// Grounded directly on dividePolyByXminusA in the bls12-377 kzg.go grounding
// file: f[0] -= f(a), then run the synthetic-division recurrence from the
// top coefficient down.
func DivideByLinear(suite backend.Suite, p Polynomial, a backend.Scalar) (q Polynomial, pa backend.Scalar) {
	pa = p.Eval(suite, a)
	f := p.Clone()
	f[0].Sub(f[0], pa)

	c := suite.NewScalar().SetUint64(0)
	t := suite.NewScalar()
	for i := len(f) - 1; i >= 0; i-- {
		t.Mul(c, a)
		f[i].Add(f[i], t)
		c, f[i] = f[i], c
	}
	return f[:len(f)-1], pa
}
