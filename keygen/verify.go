package keygen

import (
	"fmt"

	"github.com/tesslabs/tess/kzg"
	"github.com/tesslabs/tess/srs"
	"github.com/tesslabs/tess/terrors"
)

// VerifyHints self-checks that every hint_{i,j} this party just computed is
// a correct KZG opening of sk_i*L_i at omega^j, against the claimed value
// sk_i*delta_{i,j} (spec §3 "verifiable against pk_i via a pairing
// equation"). Requires the secret key, so this runs inside the party's own
// process right after Generate, not by an external verifier — the external
// pairing equation spec §3 alludes to would additionally need [L_i(tau)]_2
// in the SRS, which this repo's srs.Params does not carry;
// this self-check exercises the same kzg.Verify machinery using the
// quantity the party already knows, sk_i*LagrangeG1[i].
func VerifyHints(party *Party, params *srs.Params) (bool, error) {
	suite := params.Suite
	sk := party.Secret.Scalar()
	i := party.Secret.Index

	commitment := suite.NewG1().ScalarMul(params.LagrangeG1[i], sk)

	gen := params.Dom.Generator()
	omegaJ := suite.NewScalar().SetUint64(1)
	for j, h := range party.Public.Hints {
		claimed := suite.NewScalar().SetUint64(0)
		if j == i {
			claimed.Set(sk)
		}
		proof := &kzg.OpeningProof{H: h, Point: omegaJ.Clone(), ClaimedValue: claimed}
		ok, err := kzg.Verify(suite, commitment, proof, params.G1Gen, params.G2Gen, params.PowersG2[1])
		if err != nil {
			return false, fmt.Errorf("%w: %v", terrors.ErrBackendError, err)
		}
		if !ok {
			return false, nil
		}
		omegaJ = suite.NewScalar().Mul(omegaJ, gen)
	}
	return true, nil
}

// Describe is an operator-facing summary for logging (SPEC_FULL §9
// supplemented feature).
func (pk *PublicKey) Describe() string {
	return fmt.Sprintf("publickey{index=%d hints=%d}", pk.Index, len(pk.Hints))
}
