package decrypt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tesslabs/tess/aggregate"
	"github.com/tesslabs/tess/ciphertext"
	"github.com/tesslabs/tess/decrypt"
	"github.com/tesslabs/tess/internal/entropy"
	"github.com/tesslabs/tess/keygen"
	"github.com/tesslabs/tess/selector"
	"github.com/tesslabs/tess/srs"
)

// party bundles everything setup needs to hand back to a test: the SRS, the
// aggregate key, and every party's keygen output (so a test can pick
// whichever subset it wants to decrypt with).
type party struct {
	params *srs.Params
	apk    *aggregate.Key
	result *keygen.Result
}

func setup(t *testing.T, n, th int) *party {
	t.Helper()
	params, shares, err := srs.NewTrusted(entropy.System(), n, th)
	require.NoError(t, err)

	res, err := keygen.GenerateAll(context.Background(), params, shares)
	require.NoError(t, err)

	publics := make([]*keygen.PublicKey, len(res.Parties))
	for i, p := range res.Parties {
		publics[i] = p.Public
	}
	apk, err := aggregate.New(params, publics)
	require.NoError(t, err)

	return &party{params: params, apk: apk, result: res}
}

// sharesFor computes a partial decryption from every party in indices
// (1-indexed) against ct, and the selector naming them.
func (p *party) sharesFor(t *testing.T, ct *ciphertext.Ciphertext, indices []int) ([]*decrypt.Share, *selector.Selector) {
	t.Helper()
	shares := make([]*decrypt.Share, 0, len(indices))
	for _, i := range indices {
		sh, err := decrypt.Partial(entropy.System(), p.result.Parties[i-1].Secret, p.params.G1Gen, ct)
		require.NoError(t, err)
		shares = append(shares, sh)
	}
	sel, err := selector.FromIndices(len(p.result.Parties), indices)
	require.NoError(t, err)
	return shares, sel
}

// TestQualifyingSubsetRecoversPlaintext is spec §8 scenario 1: n=5, t=2,
// decrypting with {1,2,3} recovers the message.
func TestQualifyingSubsetRecoversPlaintext(t *testing.T) {
	p := setup(t, 5, 2)
	msg := []byte("hello")

	ct, err := ciphertext.Encrypt(entropy.System(), p.apk, p.params, 2, msg)
	require.NoError(t, err)

	shares, sel := p.sharesFor(t, ct, []int{1, 2, 3})
	res, err := decrypt.Aggregate(ct, shares, sel, p.apk)
	require.NoError(t, err)
	require.True(t, res.Verified)
	require.Equal(t, msg, res.Plaintext)
}

// TestBelowThresholdFails is spec §8 scenario 2: {1,2} is only t=2 shares,
// one short of qualifying (t+1=3).
func TestBelowThresholdFails(t *testing.T) {
	p := setup(t, 5, 2)
	msg := []byte("hello")

	ct, err := ciphertext.Encrypt(entropy.System(), p.apk, p.params, 2, msg)
	require.NoError(t, err)

	shares, sel := p.sharesFor(t, ct, []int{1, 2})
	_, err = decrypt.Aggregate(ct, shares, sel, p.apk)
	require.Error(t, err)
}

// TestTamperedPartialFailsVerification is spec §8 scenario 3: replacing one
// honest partial with a fresh random G1 element must fail verification, not
// silently recover garbage.
func TestTamperedPartialFailsVerification(t *testing.T) {
	p := setup(t, 5, 2)
	msg := []byte("hello")

	ct, err := ciphertext.Encrypt(entropy.System(), p.apk, p.params, 2, msg)
	require.NoError(t, err)

	shares, sel := p.sharesFor(t, ct, []int{1, 2, 3})

	suite := p.params.Suite
	bad := suite.NewScalar()
	_, err = bad.SetRandom(entropy.System())
	require.NoError(t, err)
	shares[1].D = suite.NewG1().ScalarMul(p.params.G1Gen, bad)

	res, err := decrypt.Aggregate(ct, shares, sel, p.apk)
	require.NoError(t, err)
	require.False(t, res.Verified)
	require.Nil(t, res.Plaintext)
}

// TestLargeThresholdDeployment is spec §8 scenario 4: n=100, t=67, a 1 KiB
// message, decrypting with parties 1..=68 (t+1 of them).
func TestLargeThresholdDeployment(t *testing.T) {
	p := setup(t, 100, 67)
	msg := make([]byte, 1024)

	ct, err := ciphertext.Encrypt(entropy.System(), p.apk, p.params, 67, msg)
	require.NoError(t, err)

	indices := make([]int, 68)
	for i := range indices {
		indices[i] = i + 1
	}
	shares, sel := p.sharesFor(t, ct, indices)

	res, err := decrypt.Aggregate(ct, shares, sel, p.apk)
	require.NoError(t, err)
	require.True(t, res.Verified)
	require.Equal(t, msg, res.Plaintext)
}

// TestDistinctQualifyingSubsetsAgree is spec §8 scenario 5: two different
// qualifying subsets of an n=8, t=5 deployment must recover byte-identical
// plaintext.
func TestDistinctQualifyingSubsetsAgree(t *testing.T) {
	p := setup(t, 8, 5)
	msg := []byte("A")

	ct, err := ciphertext.Encrypt(entropy.System(), p.apk, p.params, 5, msg)
	require.NoError(t, err)

	sharesA, selA := p.sharesFor(t, ct, []int{1, 2, 3, 4, 5, 6})
	resA, err := decrypt.Aggregate(ct, sharesA, selA, p.apk)
	require.NoError(t, err)
	require.True(t, resA.Verified)
	require.Equal(t, msg, resA.Plaintext)

	sharesB, selB := p.sharesFor(t, ct, []int{3, 4, 5, 6, 7, 8})
	resB, err := decrypt.Aggregate(ct, sharesB, selB, p.apk)
	require.NoError(t, err)
	require.True(t, resB.Verified)
	require.Equal(t, msg, resB.Plaintext)

	require.Equal(t, resA.Plaintext, resB.Plaintext)
}

// TestSelectorWithoutMatchingShareFails is spec §8 "selector consistency":
// a selector naming a party with no matching share must fail, not panic or
// silently drop it.
func TestSelectorWithoutMatchingShareFails(t *testing.T) {
	p := setup(t, 5, 2)
	ct, err := ciphertext.Encrypt(entropy.System(), p.apk, p.params, 2, []byte("hi"))
	require.NoError(t, err)

	shares, _ := p.sharesFor(t, ct, []int{1, 2})
	sel, err := selector.FromIndices(5, []int{1, 2, 3})
	require.NoError(t, err)

	_, err = decrypt.Aggregate(ct, shares, sel, p.apk)
	require.Error(t, err)
}

// TestExtraShareNotInSelectorFails covers the other half of selector
// consistency: more shares provided than the selector names.
func TestExtraShareNotInSelectorFails(t *testing.T) {
	p := setup(t, 5, 2)
	ct, err := ciphertext.Encrypt(entropy.System(), p.apk, p.params, 2, []byte("hi"))
	require.NoError(t, err)

	shares, _ := p.sharesFor(t, ct, []int{1, 2, 3})
	sel, err := selector.FromIndices(5, []int{1, 2})
	require.NoError(t, err)

	_, err = decrypt.Aggregate(ct, shares, sel, p.apk)
	require.Error(t, err)
}

// TestTamperedGammaFailsVerification is spec §8 "tamper-evidence": flipping
// a bit in gamma must fail verification rather than decrypting to garbage
// silently succeeding.
func TestTamperedGammaFailsVerification(t *testing.T) {
	p := setup(t, 5, 2)
	ct, err := ciphertext.Encrypt(entropy.System(), p.apk, p.params, 2, []byte("hello"))
	require.NoError(t, err)

	shares, sel := p.sharesFor(t, ct, []int{1, 2, 3})

	tampered := *ct
	tampered.Gamma = p.params.Suite.NewG1().Add(ct.Gamma, p.params.G1Gen)

	res, err := decrypt.Aggregate(&tampered, shares, sel, p.apk)
	require.NoError(t, err)
	require.False(t, res.Verified)
}
