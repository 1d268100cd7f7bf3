package poly

import (
	"fmt"
	"math/big"

	"github.com/tesslabs/tess/backend"
)

// VanishingPolynomial returns Z_H(X) = X^N - 1 for a size-N domain, as a
// degree-N dense polynomial (coefficients 0..N).
func VanishingPolynomial(suite backend.Suite, n uint64) Polynomial {
	z := New(suite, int(n)+1)
	z[0].SetUint64(1)
	z[0].Neg(z[0])
	z[n].SetUint64(1)
	return z
}

// EvalVanishing evaluates Z_H(x) = x^N - 1 directly, without building the
// dense polynomial; LagrangeBasisAt uses it for its numerator.
func EvalVanishing(suite backend.Suite, n uint64, x backend.Scalar) backend.Scalar {
	out := suite.NewScalar().Exp(x, new(big.Int).SetUint64(n))
	one := suite.NewScalar().SetUint64(1)
	out.Sub(out, one)
	return out
}

// Interpolate returns the coefficient-form polynomial agreeing with evals
// (evaluations over the size-len(evals) domain dom, in domain order).
func Interpolate(suite backend.Suite, dom backend.Domain, evals []backend.Scalar) Polynomial {
	coeffs := make(Polynomial, len(evals))
	for i, e := range evals {
		coeffs[i] = e.Clone()
	}
	dom.FFTInverse(coeffs)
	return coeffs
}

// LagrangeBasisAt evaluates the i-th Lagrange basis polynomial (0-indexed,
// over the size-N domain with generator omega) at point x:
//
//	L_i(x) = (x^N - 1) / (N * omega^{-i} * (x - omega^i))
//
// Returns false if x coincides with omega^i (caller should special-case
// that as L_i(omega^i) = 1, L_j(omega^i) = 0 for j != i).
func LagrangeBasisAt(suite backend.Suite, dom backend.Domain, i int, x backend.Scalar) (backend.Scalar, bool) {
	omegaI := suite.NewScalar().SetUint64(1)
	gen := dom.Generator()
	for k := 0; k < i; k++ {
		omegaI.Mul(omegaI, gen)
	}
	diff := suite.NewScalar().Sub(x, omegaI)
	if diff.IsZero() {
		return nil, false
	}
	num := EvalVanishing(suite, dom.Cardinality(), x)
	nInv := suite.NewScalar()
	nInv.SetUint64(dom.Cardinality())
	nInv.Inverse(nInv)
	omegaNegI := suite.NewScalar().Inverse(omegaI)

	denom := suite.NewScalar().Mul(nInv, omegaNegI)
	denom.Mul(denom, diff)

	res := suite.NewScalar().Inverse(denom)
	res.Mul(res, num)
	return res, true
}

// LagrangeWeightsAt0 returns the classical Shamir reconstruction
// coefficients at X=0 for the polynomial interpolated through exactly the
// domain points {omega^i : i in indices} (1-indexed, spec §4.I combiner
// step):
//
//	lambda_i = product over j in indices, j != i of (-omega^j)/(omega^i-omega^j)
//
// This is the subset-restricted weight set, distinct from LagrangeBasisAt's
// full N-party basis: evaluating a degree-(|indices|-1) interpolant at 0
// only agrees with the dealer's degree-t secret polynomial when indices
// names >= t+1 genuine points of that same polynomial, which is exactly the
// threshold property decrypt.Aggregate relies on. Returns an error if two
// entries of indices collide on the same domain point.
func LagrangeWeightsAt0(suite backend.Suite, dom backend.Domain, indices []int) ([]backend.Scalar, error) {
	gen := dom.Generator()
	omega := make([]backend.Scalar, len(indices))
	for k, idx := range indices {
		w := suite.NewScalar().SetUint64(1)
		for e := 0; e < idx; e++ {
			w = suite.NewScalar().Mul(w, gen)
		}
		omega[k] = w
	}

	weights := make([]backend.Scalar, len(indices))
	for k := range indices {
		num := suite.NewScalar().SetUint64(1)
		den := suite.NewScalar().SetUint64(1)
		for m := range indices {
			if m == k {
				continue
			}
			diff := suite.NewScalar().Sub(omega[k], omega[m])
			if diff.IsZero() {
				return nil, fmt.Errorf("poly: duplicate domain point for indices %d and %d", indices[k], indices[m])
			}
			negOmegaM := suite.NewScalar().Neg(omega[m])
			num = suite.NewScalar().Mul(num, negOmegaM)
			den = suite.NewScalar().Mul(den, diff)
		}
		denInv := suite.NewScalar().Inverse(den)
		weights[k] = suite.NewScalar().Mul(num, denInv)
	}
	return weights, nil
}
