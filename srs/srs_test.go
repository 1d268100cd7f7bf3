package srs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tesslabs/tess/backend"
	"github.com/tesslabs/tess/internal/entropy"
	"github.com/tesslabs/tess/poly"
	"github.com/tesslabs/tess/srs"
)

func TestNewTrustedRejectsBadThreshold(t *testing.T) {
	_, _, err := srs.NewTrusted(entropy.System(), 5, 5)
	require.Error(t, err)
	_, _, err = srs.NewTrusted(entropy.System(), 5, 0)
	require.Error(t, err)
}

// TestNewTrustedDealsOneShareAboveUnusedSlotZero checks the Shamir-dealing
// side effect of the ceremony: shares[0] is unused filler and shares[1..n]
// are nonzero (spec §9's open-question resolution, see DESIGN.md).
func TestNewTrustedDealsOneShareAboveUnusedSlotZero(t *testing.T) {
	params, shares, err := srs.NewTrusted(entropy.System(), 5, 2)
	require.NoError(t, err)
	require.Len(t, shares, 6)
	require.True(t, shares[0].IsZero())
	for i := 1; i <= 5; i++ {
		require.False(t, shares[i].IsZero(), "share %d should not be zero", i)
	}
	require.False(t, params.MasterPK.IsZero())
}

// TestLagrangeCommitmentsMatchDirectInterpolation checks that the iFFT-based
// Lagrange commitments agree with committing the directly interpolated L_i
// polynomial coefficient by coefficient, for a small n.
func TestLagrangeCommitmentsMatchDirectInterpolation(t *testing.T) {
	params, _, err := srs.NewTrusted(entropy.System(), 5, 2)
	require.NoError(t, err)

	suite := params.Suite
	dom := params.Dom
	n := int(params.N)

	for i := 0; i < n; i++ {
		evals := make([]backend.Scalar, n)
		for j := range evals {
			v := suite.NewScalar()
			if j == i {
				v.SetUint64(1)
			} else {
				v.SetUint64(0)
			}
			evals[j] = v
		}
		li := poly.Interpolate(suite, dom, evals)

		scalars := make([]backend.Scalar, len(li))
		copy(scalars, li)
		want, err := suite.MultiExpG1(params.PowersG1[:len(li)], scalars)
		require.NoError(t, err)
		require.True(t, want.Equal(params.LagrangeG1[i]), "lagrange commitment %d mismatch", i)
	}
}

func TestDescribeIncludesSizes(t *testing.T) {
	params, _, err := srs.NewTrusted(entropy.System(), 5, 2)
	require.NoError(t, err)
	require.Contains(t, params.Describe(), "n=5")
	require.Contains(t, params.Describe(), "t=2")
}
