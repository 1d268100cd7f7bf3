package bls12377

import (
	"errors"
	"math/big"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"

	"github.com/tesslabs/tess/backend"
)

// G2 wraps a BLS12-377 G2 point, held in Jacobian form for cheap adds.
type G2 struct {
	v bls12377.G2Jac
}

var _ backend.G2 = (*G2)(nil)

func asG2(a backend.G2) *G2 { return a.(*G2) }

func (z *G2) Set(a backend.G2) backend.G2 {
	z.v.Set(&asG2(a).v)
	return z
}

func (z *G2) Add(a, b backend.G2) backend.G2 {
	z.v.Set(&asG2(a).v)
	z.v.AddAssign(&asG2(b).v)
	return z
}

func (z *G2) Sub(a, b backend.G2) backend.G2 {
	z.v.Set(&asG2(a).v)
	z.v.SubAssign(&asG2(b).v)
	return z
}

func (z *G2) Neg(a backend.G2) backend.G2 {
	z.v.Neg(&asG2(a).v)
	return z
}

func (z *G2) ScalarMul(p backend.G2, s backend.Scalar) backend.G2 {
	var bi big.Int
	asScalar(s).v.BigInt(&bi)
	z.v.ScalarMultiplication(&asG2(p).v, &bi)
	return z
}

func (z *G2) IsZero() bool {
	return z.v.Z.IsZero()
}

func (z *G2) Equal(b backend.G2) bool {
	var za, zb bls12377.G2Affine
	za.FromJacobian(&z.v)
	zb.FromJacobian(&asG2(b).v)
	return za.Equal(&zb)
}

func (z *G2) Bytes() []byte {
	var aff bls12377.G2Affine
	aff.FromJacobian(&z.v)
	b := aff.Marshal()
	return b
}

func (z *G2) SetBytes(b []byte) (backend.G2, error) {
	var aff bls12377.G2Affine
	if err := aff.Unmarshal(b); err != nil {
		return nil, err
	}
	if !aff.IsInSubGroup() {
		return nil, errors.New("backend/bls12377: G2 element not in correct subgroup")
	}
	z.v.FromAffine(&aff)
	return z, nil
}

func (z *G2) Clone() backend.G2 {
	out := new(G2)
	out.v.Set(&z.v)
	return out
}

func (z *G2) affine() bls12377.G2Affine {
	var aff bls12377.G2Affine
	aff.FromJacobian(&z.v)
	return aff
}
