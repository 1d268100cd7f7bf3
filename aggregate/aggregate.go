// Package aggregate assembles the per-party public keys and hint vectors
// produced by keygen into a single aggregate key (spec §4.F): apk = sum of
// pk_i, and per-index aggregated hints H_j = sum of hint_{i,j}. APK and
// Hints are retained for verification and auditing (no function in this
// module reads them; keygen.VerifyHints checks a party's own hints against
// the SRS) and are not load-bearing for mask reconstruction —
// see DESIGN.md's "threshold mask reconstruction" entry for why a
// publicly-computable combiner over these fields cannot be sound, and
// decrypt/aggregate.go for the Shamir-at-0 combiner that replaced it.
//
// Grounded on the summation idiom in the eigenx-kms-go IBE flow test's
// ComputeMasterPublicKey (sum of per-dealer commitments into one master
// public key).
package aggregate

import (
	"fmt"

	"github.com/tesslabs/tess/backend"
	"github.com/tesslabs/tess/internal/telemetry"
	"github.com/tesslabs/tess/keygen"
	"github.com/tesslabs/tess/srs"
	"github.com/tesslabs/tess/terrors"
)

// Key is the aggregate public key: apk is the public key of the virtual
// "sum" party holding Σ sk_i (spec §4.F invariant); Hints is the
// coordinate-wise sum of every party's hint vector. PerParty retains the
// individual public keys indexed 1..n for verification and auditing.
type Key struct {
	Params   *srs.Params
	APK      backend.G1
	Hints    []backend.G1
	PerParty []*keygen.PublicKey
}

// New sums n public keys (one per party, indices 1..n, matching hint
// vector lengths) into an aggregate key.
func New(params *srs.Params, publics []*keygen.PublicKey) (*Key, error) {
	n := params.NumParties()
	if len(publics) != n {
		return nil, fmt.Errorf("%w: expected %d public keys, got %d", terrors.ErrInvalidParameters, n, len(publics))
	}

	suite := params.Suite
	N := int(params.N)

	apk := suite.NewG1()
	hints := make([]backend.G1, N)
	for j := range hints {
		hints[j] = suite.NewG1()
	}

	for _, pk := range publics {
		if len(pk.Hints) != N {
			return nil, fmt.Errorf("%w: party %d has %d hints, want %d", terrors.ErrInvalidParameters, pk.Index, len(pk.Hints), N)
		}
		apk = suite.NewG1().Add(apk, pk.PK)
		for j, h := range pk.Hints {
			hints[j] = suite.NewG1().Add(hints[j], h)
		}
	}

	perParty := make([]*keygen.PublicKey, n)
	copy(perParty, publics)

	telemetry.Log().Debug().Int("n", n).Msg("aggregate key assembled")
	return &Key{Params: params, APK: apk, Hints: hints, PerParty: perParty}, nil
}
