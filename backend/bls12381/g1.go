package bls12381

import (
	"errors"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/tesslabs/tess/backend"
)

// G1 wraps a BLS12-381 G1 point, held in Jacobian form for cheap adds.
type G1 struct {
	v bls12381.G1Jac
}

var _ backend.G1 = (*G1)(nil)

func asG1(a backend.G1) *G1 { return a.(*G1) }

func (z *G1) Set(a backend.G1) backend.G1 {
	z.v.Set(&asG1(a).v)
	return z
}

func (z *G1) Add(a, b backend.G1) backend.G1 {
	z.v.Set(&asG1(a).v)
	z.v.AddAssign(&asG1(b).v)
	return z
}

func (z *G1) Sub(a, b backend.G1) backend.G1 {
	z.v.Set(&asG1(a).v)
	z.v.SubAssign(&asG1(b).v)
	return z
}

func (z *G1) Neg(a backend.G1) backend.G1 {
	z.v.Neg(&asG1(a).v)
	return z
}

func (z *G1) ScalarMul(p backend.G1, s backend.Scalar) backend.G1 {
	var bi big.Int
	asScalar(s).v.BigInt(&bi)
	z.v.ScalarMultiplication(&asG1(p).v, &bi)
	return z
}

func (z *G1) IsZero() bool {
	return z.v.Z.IsZero()
}

func (z *G1) Equal(b backend.G1) bool {
	var za, zb bls12381.G1Affine
	za.FromJacobian(&z.v)
	zb.FromJacobian(&asG1(b).v)
	return za.Equal(&zb)
}

func (z *G1) Bytes() []byte {
	var aff bls12381.G1Affine
	aff.FromJacobian(&z.v)
	b := aff.Marshal()
	return b
}

func (z *G1) SetBytes(b []byte) (backend.G1, error) {
	var aff bls12381.G1Affine
	if err := aff.Unmarshal(b); err != nil {
		return nil, err
	}
	if !aff.IsInSubGroup() {
		return nil, errors.New("backend/bls12381: G1 element not in correct subgroup")
	}
	z.v.FromAffine(&aff)
	return z, nil
}

func (z *G1) Clone() backend.G1 {
	out := new(G1)
	out.v.Set(&z.v)
	return out
}

func (z *G1) affine() bls12381.G1Affine {
	var aff bls12381.G1Affine
	aff.FromJacobian(&z.v)
	return aff
}
