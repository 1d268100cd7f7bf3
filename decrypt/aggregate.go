package decrypt

import (
	"fmt"

	"github.com/tesslabs/tess/aggregate"
	"github.com/tesslabs/tess/backend"
	"github.com/tesslabs/tess/ciphertext"
	"github.com/tesslabs/tess/internal/mask"
	"github.com/tesslabs/tess/internal/telemetry"
	"github.com/tesslabs/tess/internal/zeroize"
	"github.com/tesslabs/tess/kzg"
	"github.com/tesslabs/tess/poly"
	"github.com/tesslabs/tess/selector"
	"github.com/tesslabs/tess/terrors"
)

const maskDomainTag = "tess/v1/mask"

// Result is the outcome of an aggregate decryption attempt. A verification
// failure never surfaces as a Go error (spec §7): it is reported here via
// Verified == false, with Plaintext left nil.
type Result struct {
	Plaintext []byte
	Verified  bool
}

// Aggregate combines shares, selected by sel, into a full decryption of ct
// against apk.
//
// The mask is e([s]*MasterPK, G2Gen), where MasterPK = [f(0)]_1 for the
// degree-t Shamir polynomial f that srs.NewTrusted deals alongside tau; the
// qualifying subset's shares d_i = sk_i*Gamma = [s]*f(omega^i)*G1Gen
// reconstruct [s]*f(0)*G1Gen exactly via the classical Lagrange-at-0
// combiner (poly.LagrangeWeightsAt0), for any qualifying S of size >= t+1 —
// which is what lets two different qualifying subsets recover the identical
// mask (spec §8 scenario 5) without ever publishing a G2 point carrying s
// (see DESIGN.md's "threshold mask reconstruction" entry for why the prior
// ComplementPK-based identity was unsound: it combined only public values).
func Aggregate(ct *ciphertext.Ciphertext, shares []*Share, sel *selector.Selector, apk *aggregate.Key) (*Result, error) {
	t := apk.Params.T
	if sel.Count() < t+1 {
		return nil, fmt.Errorf("%w: have %d, need >= %d", terrors.ErrInsufficientShares, sel.Count(), t+1)
	}

	byIndex := make(map[int]*Share, len(shares))
	for _, sh := range shares {
		byIndex[sh.Index] = sh
	}
	for _, i := range sel.Indices() {
		if _, ok := byIndex[i]; !ok {
			return nil, fmt.Errorf("%w: selector names party %d with no matching share", terrors.ErrMalformedPartial, i)
		}
	}
	if len(shares) != sel.Count() {
		return nil, fmt.Errorf("%w: %d shares provided for a %d-party selector", terrors.ErrMalformedPartial, len(shares), sel.Count())
	}

	suite := apk.Params.Suite
	pkByIndex := make(map[int]backend.G1, len(apk.PerParty))
	for _, pk := range apk.PerParty {
		pkByIndex[pk.Index] = pk.PK
	}

	zt := poly.VanishingPolynomial(suite, uint64(t+1))
	zCommit, err := kzg.Commit(suite, zt, apk.Params.PowersG1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", terrors.ErrBackendError, err)
	}

	// ct's threshold-binding proof ties Gamma and V to the same exponent s
	// without ever pairing against a published G2 point: flipping any bit
	// of Gamma or V must fail this check (spec §8 "tamper-evidence").
	if !ct.VerifyBinding(suite, apk.Params.G1Gen, zCommit) {
		return &Result{Verified: false}, nil
	}

	expectedW, err := suite.Pairing(zCommit, apk.Params.G2Gen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", terrors.ErrBackendError, err)
	}
	if !expectedW.Equal(ct.W) {
		return &Result{Verified: false}, nil
	}

	indices := sel.Indices()
	for _, i := range indices {
		sh := byIndex[i]
		pk, ok := pkByIndex[i]
		if !ok {
			return nil, fmt.Errorf("%w: no public key for party %d", terrors.ErrMalformedPartial, i)
		}
		if !verifyPartial(suite, apk.Params.G1Gen, ct, pk, sh) {
			telemetry.Log().Debug().Int("party", i).Msg("partial share failed verification")
			return &Result{Verified: false}, nil
		}
	}

	weights, err := poly.LagrangeWeightsAt0(suite, apk.Params.Dom, indices)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", terrors.ErrBackendError, err)
	}

	combinedD := suite.NewG1()
	for k, i := range indices {
		term := suite.NewG1().ScalarMul(byIndex[i].D, weights[k])
		combinedD = suite.NewG1().Add(combinedD, term)
	}

	mGT, err := suite.Pairing(combinedD, apk.Params.G2Gen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", terrors.ErrBackendError, err)
	}

	keystream, err := mask.Keystream(maskDomainTag, mGT.Bytes(), len(ct.C))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", terrors.ErrBackendError, err)
	}
	plaintext := mask.XOR(ct.C, keystream)
	zeroize.Bytes(keystream)

	return &Result{Plaintext: plaintext, Verified: true}, nil
}
