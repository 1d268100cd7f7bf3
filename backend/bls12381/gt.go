package bls12381

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/tesslabs/tess/backend"
)

// GT wraps a BLS12-381 pairing-target-group element (an Fp12 tower element).
type GT struct {
	v bls12381.GT
}

var _ backend.GT = (*GT)(nil)

func asGT(a backend.GT) *GT { return a.(*GT) }

func (z *GT) Set(a backend.GT) backend.GT {
	z.v.Set(&asGT(a).v)
	return z
}

func (z *GT) Mul(a, b backend.GT) backend.GT {
	z.v.Mul(&asGT(a).v, &asGT(b).v)
	return z
}

func (z *GT) Exp(a backend.GT, e *big.Int) backend.GT {
	z.v.Exp(asGT(a).v, e)
	return z
}

func (z *GT) Inverse(a backend.GT) backend.GT {
	z.v.Inverse(&asGT(a).v)
	return z
}

func (z *GT) IsOne() bool {
	var one bls12381.GT
	one.SetOne()
	return z.v.Equal(&one)
}

func (z *GT) Equal(b backend.GT) bool {
	return z.v.Equal(&asGT(b).v)
}

func (z *GT) Bytes() []byte {
	b := z.v.Marshal()
	return b[:]
}

func (z *GT) SetBytes(b []byte) (backend.GT, error) {
	if err := z.v.Unmarshal(b); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *GT) Clone() backend.GT {
	out := new(GT)
	out.v.Set(&z.v)
	return out
}
