package poly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tesslabs/tess/backend"
	"github.com/tesslabs/tess/backend/bls12381"
	"github.com/tesslabs/tess/internal/entropy"
	"github.com/tesslabs/tess/poly"
)

// TestFFTRoundTrip verifies ifft(fft(v)) == v over H, spec §8 "FFT
// round-trip".
func TestFFTRoundTrip(t *testing.T) {
	suite := bls12381.New()
	dom, err := suite.Domain(16)
	require.NoError(t, err)

	n := int(dom.Cardinality())
	rng := entropy.System()
	orig := make([]backend.Scalar, n)
	for i := range orig {
		s := suite.NewScalar()
		_, err := s.SetRandom(rng)
		require.NoError(t, err)
		orig[i] = s
	}

	v := make([]backend.Scalar, n)
	for i, s := range orig {
		v[i] = s.Clone()
	}

	dom.FFT(v)
	dom.FFTInverse(v)

	for i := range orig {
		require.True(t, orig[i].Equal(v[i]), "coefficient %d mismatch", i)
	}
}

func TestLagrangeBasisIsKroneckerDeltaOnDomain(t *testing.T) {
	suite := bls12381.New()
	dom, err := suite.Domain(8)
	require.NoError(t, err)
	n := int(dom.Cardinality())

	gen := dom.Generator()
	omega := make([]backend.Scalar, n)
	omega[0] = suite.NewScalar().SetUint64(1)
	for i := 1; i < n; i++ {
		omega[i] = suite.NewScalar().Mul(omega[i-1], gen)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			val, distinct := poly.LagrangeBasisAt(suite, dom, i, omega[j])
			if i == j {
				require.False(t, distinct, "L_%d should hit its own defining point", i)
				continue
			}
			require.True(t, distinct)
			require.True(t, val.IsZero(), "L_%d(omega^%d) should be 0", i, j)
		}
	}
}

func TestVanishingPolynomialVanishesOnDomain(t *testing.T) {
	suite := bls12381.New()
	dom, err := suite.Domain(8)
	require.NoError(t, err)
	n := dom.Cardinality()

	gen := dom.Generator()
	x := suite.NewScalar().SetUint64(1)
	for i := uint64(0); i < n; i++ {
		v := poly.EvalVanishing(suite, n, x)
		require.True(t, v.IsZero())
		x.Mul(x, gen)
	}
}

// TestLagrangeWeightsAt0ReconstructsDegreeTPolynomial checks the Shamir
// reconstruction identity directly: for a random degree-t polynomial f,
// combining any t+1 of its domain-point evaluations via
// LagrangeWeightsAt0 recovers f(0) exactly.
func TestLagrangeWeightsAt0ReconstructsDegreeTPolynomial(t *testing.T) {
	suite := bls12381.New()
	dom, err := suite.Domain(16)
	require.NoError(t, err)

	rng := entropy.System()
	degreeT := 4
	f := poly.New(suite, degreeT+1)
	for i := range f {
		_, err := f[i].SetRandom(rng)
		require.NoError(t, err)
	}

	gen := dom.Generator()
	indices := []int{2, 3, 5, 8, 9}
	require.Len(t, indices, degreeT+1)

	omega := make([]backend.Scalar, len(indices))
	shares := make([]backend.Scalar, len(indices))
	for k, idx := range indices {
		w := suite.NewScalar().SetUint64(1)
		for e := 0; e < idx; e++ {
			w.Mul(w, gen)
		}
		omega[k] = w
		shares[k] = f.Eval(suite, w)
	}

	weights, err := poly.LagrangeWeightsAt0(suite, dom, indices)
	require.NoError(t, err)

	got := suite.NewScalar().SetUint64(0)
	for k := range indices {
		term := suite.NewScalar().Mul(weights[k], shares[k])
		got.Add(got, term)
	}

	require.True(t, got.Equal(f[0]), "reconstructed f(0) mismatch")
}

// TestLagrangeWeightsAt0RejectsDuplicatePoints guards the degenerate input
// decrypt.Aggregate must never hand it: a selector naming the same party
// index twice would otherwise silently divide by zero.
func TestLagrangeWeightsAt0RejectsDuplicatePoints(t *testing.T) {
	suite := bls12381.New()
	dom, err := suite.Domain(8)
	require.NoError(t, err)

	_, err = poly.LagrangeWeightsAt0(suite, dom, []int{1, 2, 2})
	require.Error(t, err)
}
