package poly_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tesslabs/tess/backend"
	"github.com/tesslabs/tess/backend/bls12381"
	"github.com/tesslabs/tess/internal/entropy"
	"github.com/tesslabs/tess/poly"
)

func randomPoly(t *testing.T, suite backend.Suite, degree int) poly.Polynomial {
	t.Helper()
	rng := entropy.System()
	p := poly.New(suite, degree+1)
	for i := range p {
		_, err := p[i].SetRandom(rng)
		require.NoError(t, err)
	}
	return p
}

func TestEvalMatchesHornerByHand(t *testing.T) {
	suite := bls12381.New()
	// p(X) = 3 + 2X + X^2
	p := poly.New(suite, 3)
	p[0].SetUint64(3)
	p[1].SetUint64(2)
	p[2].SetUint64(1)

	x := suite.NewScalar().SetUint64(5)
	got := p.Eval(suite, x)

	want := suite.NewScalar().SetBigInt(big.NewInt(3 + 2*5 + 5*5))
	require.True(t, got.Equal(want))
}

func TestDivideByLinearRoundTrip(t *testing.T) {
	suite := bls12381.New()
	p := randomPoly(t, suite, 32)

	a := suite.NewScalar().SetUint64(7)
	q, pa := poly.DivideByLinear(suite, p, a)

	require.True(t, pa.Equal(p.Eval(suite, a)))

	// reconstruct p(X) = q(X)*(X-a) + p(a) and check it agrees with p at a
	// fresh random point.
	z := suite.NewScalar().SetUint64(123456789)
	qz := q.Eval(suite, z)
	zMinusA := suite.NewScalar().Sub(z, a)
	lhs := suite.NewScalar().Mul(qz, zMinusA)
	lhs.Add(lhs, pa)

	require.True(t, lhs.Equal(p.Eval(suite, z)))
}

func TestAddIsCoefficientwise(t *testing.T) {
	suite := bls12381.New()
	a := poly.New(suite, 2)
	a[0].SetUint64(1)
	a[1].SetUint64(2)
	b := poly.New(suite, 3)
	b[0].SetUint64(10)
	b[1].SetUint64(20)
	b[2].SetUint64(30)

	sum := poly.Add(suite, a, b)
	require.Len(t, sum, 3)
	require.True(t, sum[0].Equal(suite.NewScalar().SetUint64(11)))
	require.True(t, sum[1].Equal(suite.NewScalar().SetUint64(22)))
	require.True(t, sum[2].Equal(suite.NewScalar().SetUint64(30)))
}
