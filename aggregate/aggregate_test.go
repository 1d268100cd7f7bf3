package aggregate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tesslabs/tess/aggregate"
	"github.com/tesslabs/tess/internal/entropy"
	"github.com/tesslabs/tess/keygen"
	"github.com/tesslabs/tess/srs"
)

func TestNewSumsPublicKeys(t *testing.T) {
	params, shares, err := srs.NewTrusted(entropy.System(), 4, 1)
	require.NoError(t, err)

	res, err := keygen.GenerateAll(context.Background(), params, shares)
	require.NoError(t, err)

	publics := make([]*keygen.PublicKey, len(res.Parties))
	for i, p := range res.Parties {
		publics[i] = p.Public
	}

	apk, err := aggregate.New(params, publics)
	require.NoError(t, err)

	suite := params.Suite
	want := suite.NewG1()
	for _, p := range res.Parties {
		want = suite.NewG1().Add(want, p.Public.PK)
	}
	require.True(t, want.Equal(apk.APK))
}

func TestNewRejectsWrongPartyCount(t *testing.T) {
	params, shares, err := srs.NewTrusted(entropy.System(), 4, 1)
	require.NoError(t, err)

	res, err := keygen.GenerateAll(context.Background(), params, shares)
	require.NoError(t, err)

	publics := make([]*keygen.PublicKey, len(res.Parties)-1)
	for i := range publics {
		publics[i] = res.Parties[i].Public
	}

	_, err = aggregate.New(params, publics)
	require.Error(t, err)
}
