// Package keygen implements per-party silent key generation (spec §4.E):
// each party derives its public key and precomputes the N quotient hints
// that let the aggregate key use its contribution without an online
// polynomial opening. GenerateAll fans the n independent per-party
// computations out in parallel.
//
// A party's secret is now a dealt Shamir share (srs.NewTrusted's shares
// output) rather than an independently sampled scalar — see DESIGN.md's
// "threshold mask reconstruction" entry for why silent per-party sampling
// cannot be made sound here without the unpublished mechanism spec §9
// names. Grounded on the per-dealer share-consumption idiom in the
// eigenx-kms-go IBE flow test (each operator applies its share against a
// shared public structure, no interaction between operators) and on the
// teacher's golang.org/x/sync dependency for the parallel fan-out.
package keygen

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tesslabs/tess/backend"
	"github.com/tesslabs/tess/internal/telemetry"
	"github.com/tesslabs/tess/poly"
	"github.com/tesslabs/tess/srs"
	"github.com/tesslabs/tess/terrors"
)

// SecretKey is party i's secret scalar. Zeroize must be called once the
// party is done using it (spec §5 secret hygiene); Go has no destructors.
type SecretKey struct {
	Suite backend.Suite
	Index int
	sk    backend.Scalar
}

// Scalar returns the underlying secret scalar sk_i.
func (s *SecretKey) Scalar() backend.Scalar { return s.sk }

// Zeroize overwrites sk_i with zero.
func (s *SecretKey) Zeroize() {
	s.sk.Set(s.Suite.NewScalar().SetUint64(0))
}

// PublicKey is party i's public tuple (pk_i, {hint_i,j}).
type PublicKey struct {
	Index int
	PK    backend.G1   // [sk_i]_1
	Hints []backend.G1 // hint_{i,j} for j = 0..N-1
}

// Party bundles one party's secret and public key.
type Party struct {
	Secret *SecretKey
	Public *PublicKey
}

// Result is the output of GenerateAll: one Party per index 1..n, ordered
// deterministically regardless of goroutine completion order.
type Result struct {
	Parties []*Party
}

// Generate derives party index's public key and hint vector from its dealt
// Shamir share. index is 1-indexed; index i is bound to domain point
// omega^i (omega^0 is reserved, spec §3); share must equal f(omega^index)
// for the polynomial srs.NewTrusted dealt.
func Generate(params *srs.Params, index int, share backend.Scalar) (*Party, error) {
	n := params.NumParties()
	if index < 1 || index > n {
		return nil, fmt.Errorf("%w: index %d not in [1,%d]", terrors.ErrInvalidIndex, index, n)
	}

	suite := params.Suite
	sk := share.Clone()

	pk := suite.NewG1().ScalarMul(params.G1Gen, sk)

	li := lagrangeBasisCoeffs(suite, params.Dom, index)
	scaledLi := li.Clone()
	poly.ScaleInPlace(scaledLi, sk)

	hints, err := computeHints(suite, params.Dom, params.PowersG1, scaledLi)
	if err != nil {
		return nil, fmt.Errorf("%w: hints: %v", terrors.ErrKeygenFailure, err)
	}

	return &Party{
		Secret: &SecretKey{Suite: suite, Index: index, sk: sk},
		Public: &PublicKey{Index: index, PK: pk, Hints: hints},
	}, nil
}

// lagrangeBasisCoeffs returns the coefficient-form L_i polynomial for
// domain index i, via interpolation of the Kronecker-delta evaluation
// vector.
func lagrangeBasisCoeffs(suite backend.Suite, dom backend.Domain, i int) poly.Polynomial {
	n := int(dom.Cardinality())
	evals := make([]backend.Scalar, n)
	for j := 0; j < n; j++ {
		v := suite.NewScalar()
		if j == i {
			v.SetUint64(1)
		} else {
			v.SetUint64(0)
		}
		evals[j] = v
	}
	return poly.Interpolate(suite, dom, evals)
}

// GenerateAll derives all n parties' keys from their dealt Shamir shares,
// one goroutine per party via errgroup (spec §4.E "the orchestration MUST
// parallelize across parties"). shares is srs.NewTrusted's 1-indexed,
// length-(n+1) output; output is deterministic given shares, regardless of
// goroutine completion order (spec §8 "Determinism").
func GenerateAll(ctx context.Context, params *srs.Params, shares []backend.Scalar) (*Result, error) {
	n := params.NumParties()
	if len(shares) != n+1 {
		return nil, fmt.Errorf("%w: expected %d dealt shares (index 0 unused), got %d", terrors.ErrInvalidParameters, n+1, len(shares))
	}

	parties := make([]*Party, n)
	g, gctx := errgroup.WithContext(ctx)
	for idx := 1; idx <= n; idx++ {
		idx := idx
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			party, err := Generate(params, idx, shares[idx])
			if err != nil {
				return err
			}
			parties[idx-1] = party
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	telemetry.Log().Debug().Int("n", n).Msg("keygen complete")
	return &Result{Parties: parties}, nil
}
