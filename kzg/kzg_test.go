package kzg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tesslabs/tess/backend"
	"github.com/tesslabs/tess/backend/bls12381"
	"github.com/tesslabs/tess/internal/entropy"
	"github.com/tesslabs/tess/kzg"
	"github.com/tesslabs/tess/poly"
)

// trustedSetup builds a throwaway power-of-tau vector for these unit tests;
// it has none of srs.Params' domain/Lagrange machinery, just what
// kzg.Commit/Open/Verify need.
func trustedSetup(t *testing.T, suite backend.Suite, degree int) (powersG1 []backend.G1, g1Gen backend.G1, g2Gen, g2Tau backend.G2) {
	t.Helper()
	tau := suite.NewScalar()
	_, err := tau.SetRandom(entropy.System())
	require.NoError(t, err)

	g1Gen = suite.G1Generator()
	g2Gen = suite.G2Generator()

	taus := make([]backend.Scalar, degree+1)
	taus[0] = suite.NewScalar().SetUint64(1)
	for i := 1; i <= degree; i++ {
		taus[i] = suite.NewScalar().Mul(taus[i-1], tau)
	}
	powersG1, err = suite.BatchScalarMulG1(g1Gen, taus)
	require.NoError(t, err)
	g2Tau = suite.NewG2().ScalarMul(g2Gen, tau)
	return powersG1, g1Gen, g2Gen, g2Tau
}

// TestCommitOpenVerifyRoundTrip is spec §8 scenario 6: a random degree-32
// polynomial opened at z=7 verifies.
func TestCommitOpenVerifyRoundTrip(t *testing.T) {
	suite := bls12381.New()
	powersG1, g1Gen, g2Gen, g2Tau := trustedSetup(t, suite, 32)

	p := poly.New(suite, 33)
	rng := entropy.System()
	for i := range p {
		_, err := p[i].SetRandom(rng)
		require.NoError(t, err)
	}

	commitment, err := kzg.Commit(suite, p, powersG1)
	require.NoError(t, err)

	z := suite.NewScalar().SetUint64(7)
	proof, err := kzg.Open(suite, p, z, powersG1)
	require.NoError(t, err)
	require.True(t, proof.ClaimedValue.Equal(p.Eval(suite, z)))

	ok, err := kzg.Verify(suite, commitment, proof, g1Gen, g2Gen, g2Tau)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestVerifyRejectsTamperedProof mutates the opening proof's witness by a
// nonzero scalar shift and checks verification fails (spec §8 scenario 6).
func TestVerifyRejectsTamperedProof(t *testing.T) {
	suite := bls12381.New()
	powersG1, g1Gen, g2Gen, g2Tau := trustedSetup(t, suite, 32)

	p := poly.New(suite, 33)
	rng := entropy.System()
	for i := range p {
		_, err := p[i].SetRandom(rng)
		require.NoError(t, err)
	}

	commitment, err := kzg.Commit(suite, p, powersG1)
	require.NoError(t, err)

	z := suite.NewScalar().SetUint64(7)
	proof, err := kzg.Open(suite, p, z, powersG1)
	require.NoError(t, err)

	proof.H = suite.NewG1().Add(proof.H, g1Gen)

	ok, err := kzg.Verify(suite, commitment, proof, g1Gen, g2Gen, g2Tau)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCommitRejectsOversizedPolynomial(t *testing.T) {
	suite := bls12381.New()
	powersG1, _, _, _ := trustedSetup(t, suite, 4)

	p := poly.New(suite, 10)
	_, err := kzg.Commit(suite, p, powersG1)
	require.Error(t, err)
}
