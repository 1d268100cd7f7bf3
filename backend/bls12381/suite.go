// Package bls12381 implements backend.Suite over gnark-crypto's BLS12-381
// curve, the default (high-performance, or — under the upstream `purego`
// build tag — portable) backend for this module.
package bls12381

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/tesslabs/tess/backend"
)

// Suite implements backend.Suite for BLS12-381.
type Suite struct{}

var _ backend.Suite = Suite{}

// New returns the BLS12-381 backend.
func New() Suite { return Suite{} }

func (Suite) Name() string { return "bls12-381" }

func (Suite) ScalarFieldOrder() *big.Int {
	return new(big.Int).Set(fr.Modulus())
}

func (Suite) NewScalar() backend.Scalar { return new(Scalar) }
func (Suite) NewG1() backend.G1         { return new(G1) }
func (Suite) NewG2() backend.G2         { return new(G2) }
func (Suite) NewGT() backend.GT         { return new(GT) }

func (Suite) G1Generator() backend.G1 {
	_, _, g1Aff, _ := bls12381.Generators()
	g := new(G1)
	g.v.FromAffine(&g1Aff)
	return g
}

func (Suite) G2Generator() backend.G2 {
	_, _, _, g2Aff := bls12381.Generators()
	g := new(G2)
	g.v.FromAffine(&g2Aff)
	return g
}

func (Suite) Pairing(p backend.G1, q backend.G2) (backend.GT, error) {
	pa := asG1(p).affine()
	qa := asG2(q).affine()
	res, err := bls12381.Pair([]bls12381.G1Affine{pa}, []bls12381.G2Affine{qa})
	if err != nil {
		return nil, err
	}
	out := new(GT)
	out.v.Set(&res)
	return out, nil
}

func (Suite) MultiPairing(ps []backend.G1, qs []backend.G2) (backend.GT, error) {
	if len(ps) != len(qs) {
		return nil, fmt.Errorf("backend/bls12381: mismatched multi-pairing slice lengths %d/%d", len(ps), len(qs))
	}
	pa := make([]bls12381.G1Affine, len(ps))
	qa := make([]bls12381.G2Affine, len(qs))
	for i := range ps {
		pa[i] = asG1(ps[i]).affine()
		qa[i] = asG2(qs[i]).affine()
	}
	res, err := bls12381.Pair(pa, qa)
	if err != nil {
		return nil, err
	}
	out := new(GT)
	out.v.Set(&res)
	return out, nil
}

func (Suite) PairingCheck(ps []backend.G1, qs []backend.G2) (bool, error) {
	if len(ps) != len(qs) {
		return false, fmt.Errorf("backend/bls12381: mismatched pairing-check slice lengths %d/%d", len(ps), len(qs))
	}
	pa := make([]bls12381.G1Affine, len(ps))
	qa := make([]bls12381.G2Affine, len(qs))
	for i := range ps {
		pa[i] = asG1(ps[i]).affine()
		qa[i] = asG2(qs[i]).affine()
	}
	return bls12381.PairingCheck(pa, qa)
}

func (Suite) MultiExpG1(bases []backend.G1, scalars []backend.Scalar) (backend.G1, error) {
	if len(bases) != len(scalars) {
		return nil, fmt.Errorf("backend/bls12381: mismatched MSM slice lengths %d/%d", len(bases), len(scalars))
	}
	points := make([]bls12381.G1Affine, len(bases))
	coeffs := make([]fr.Element, len(scalars))
	for i := range bases {
		points[i] = asG1(bases[i]).affine()
		coeffs[i] = asScalar(scalars[i]).v
	}
	var res bls12381.G1Affine
	if _, err := res.MultiExp(points, coeffs, ecc.MultiExpConfig{ScalarsMont: true}); err != nil {
		return nil, err
	}
	out := new(G1)
	out.v.FromAffine(&res)
	return out, nil
}

func (Suite) BatchScalarMulG1(gen backend.G1, scalars []backend.Scalar) ([]backend.G1, error) {
	base := asG1(gen).affine()
	coeffs := make([]fr.Element, len(scalars))
	for i, s := range scalars {
		coeffs[i] = asScalar(s).v
		coeffs[i].FromMont()
	}
	pts := bls12381.BatchScalarMultiplicationG1(&base, coeffs)
	out := make([]backend.G1, len(pts))
	for i := range pts {
		g := new(G1)
		g.v.FromAffine(&pts[i])
		out[i] = g
	}
	return out, nil
}

func (Suite) BatchScalarMulG2(gen backend.G2, scalars []backend.Scalar) ([]backend.G2, error) {
	// gnark-crypto does not ship a BatchScalarMultiplicationG2 helper, so
	// this is a plain loop over ScalarMultiplication. srs.NewTrusted asks for
	// all N+1 powers of tau; of those, only [tau^0]_2 and [tau^1]_2 are read
	// (by KZG verification).
	out := make([]backend.G2, len(scalars))
	for i, s := range scalars {
		g := new(G2)
		g.ScalarMul(gen, s)
		out[i] = g
	}
	return out, nil
}

func (Suite) Domain(n uint64) (backend.Domain, error) {
	return newDomain(n), nil
}
