package bls12377

import (
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/tesslabs/tess/backend"
)

// Scalar wraps a BLS12-377 scalar-field element.
type Scalar struct {
	v fr.Element
}

var _ backend.Scalar = (*Scalar)(nil)

func asScalar(s backend.Scalar) *Scalar {
	return s.(*Scalar)
}

func (z *Scalar) Set(a backend.Scalar) backend.Scalar {
	z.v.Set(&asScalar(a).v)
	return z
}

func (z *Scalar) SetUint64(v uint64) backend.Scalar {
	z.v.SetUint64(v)
	return z
}

func (z *Scalar) SetBigInt(v *big.Int) backend.Scalar {
	z.v.SetBigInt(v)
	return z
}

// SetRandom draws byteLen(q)+16 extra random bytes from r and reduces mod q,
// so the injected entropy source (not gnark-crypto's internal crypto/rand
// use) determines the sample, per spec §6 "Rng (consumed)".
func (z *Scalar) SetRandom(r io.Reader) (backend.Scalar, error) {
	order := fr.Modulus()
	buf := make([]byte, (order.BitLen()+7)/8+16)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	bi := new(big.Int).SetBytes(buf)
	bi.Mod(bi, order)
	z.v.SetBigInt(bi)
	return z, nil
}

func (z *Scalar) SetBytes(b []byte) (backend.Scalar, error) {
	if len(b) != fr.Bytes {
		return nil, errors.New("backend/bls12377: invalid scalar encoding length")
	}
	bi := new(big.Int).SetBytes(b)
	if bi.Cmp(fr.Modulus()) >= 0 {
		return nil, errors.New("backend/bls12377: scalar not canonical")
	}
	z.v.SetBigInt(bi)
	return z, nil
}

func (z *Scalar) Bytes() []byte {
	b := z.v.Bytes()
	return b[:]
}

func (z *Scalar) Add(a, b backend.Scalar) backend.Scalar {
	z.v.Add(&asScalar(a).v, &asScalar(b).v)
	return z
}

func (z *Scalar) Sub(a, b backend.Scalar) backend.Scalar {
	z.v.Sub(&asScalar(a).v, &asScalar(b).v)
	return z
}

func (z *Scalar) Mul(a, b backend.Scalar) backend.Scalar {
	z.v.Mul(&asScalar(a).v, &asScalar(b).v)
	return z
}

func (z *Scalar) Square(a backend.Scalar) backend.Scalar {
	z.v.Square(&asScalar(a).v)
	return z
}

func (z *Scalar) Inverse(a backend.Scalar) backend.Scalar {
	z.v.Inverse(&asScalar(a).v)
	return z
}

func (z *Scalar) Neg(a backend.Scalar) backend.Scalar {
	z.v.Neg(&asScalar(a).v)
	return z
}

func (z *Scalar) Exp(a backend.Scalar, e *big.Int) backend.Scalar {
	z.v.Exp(asScalar(a).v, e)
	return z
}

func (z *Scalar) IsZero() bool {
	return z.v.IsZero()
}

func (z *Scalar) Equal(b backend.Scalar) bool {
	return z.v.Equal(&asScalar(b).v)
}

func (z *Scalar) Clone() backend.Scalar {
	out := new(Scalar)
	out.v.Set(&z.v)
	return out
}

// element exposes the underlying fr.Element to sibling files in this
// package (domain.go, suite.go) without widening the exported surface.
func (z *Scalar) element() fr.Element { return z.v }
