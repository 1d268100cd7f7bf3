package keygen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tesslabs/tess/internal/entropy"
	"github.com/tesslabs/tess/keygen"
	"github.com/tesslabs/tess/srs"
)

func TestGenerateRejectsIndexOutOfRange(t *testing.T) {
	params, shares, err := srs.NewTrusted(entropy.System(), 5, 2)
	require.NoError(t, err)

	_, err = keygen.Generate(params, 0, shares[1])
	require.Error(t, err)
	_, err = keygen.Generate(params, 6, shares[1])
	require.Error(t, err)
}

func TestGenerateHintsSelfVerify(t *testing.T) {
	params, shares, err := srs.NewTrusted(entropy.System(), 5, 2)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		party, err := keygen.Generate(params, i, shares[i])
		require.NoError(t, err)
		ok, err := keygen.VerifyHints(party, params)
		require.NoError(t, err)
		require.True(t, ok, "party %d hints failed to self-verify", i)
	}
}

func TestGenerateAllOrdersPartiesDeterministically(t *testing.T) {
	params, shares, err := srs.NewTrusted(entropy.System(), 10, 3)
	require.NoError(t, err)

	res, err := keygen.GenerateAll(context.Background(), params, shares)
	require.NoError(t, err)
	require.Len(t, res.Parties, 10)
	for i, p := range res.Parties {
		require.Equal(t, i+1, p.Secret.Index)
		require.Equal(t, i+1, p.Public.Index)
	}
}

// TestGenerateAllIsDeterministicForFixedShares checks that two calls to
// GenerateAll against the same dealt shares agree byte-for-byte regardless
// of goroutine completion order (spec §8 "Determinism").
func TestGenerateAllIsDeterministicForFixedShares(t *testing.T) {
	params, shares, err := srs.NewTrusted(entropy.System(), 6, 2)
	require.NoError(t, err)

	res1, err := keygen.GenerateAll(context.Background(), params, shares)
	require.NoError(t, err)
	res2, err := keygen.GenerateAll(context.Background(), params, shares)
	require.NoError(t, err)

	for i := range res1.Parties {
		require.True(t, res1.Parties[i].Secret.Scalar().Equal(res2.Parties[i].Secret.Scalar()))
		require.True(t, res1.Parties[i].Public.PK.Equal(res2.Parties[i].Public.PK))
	}
}
