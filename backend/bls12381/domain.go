package bls12381

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"

	"github.com/tesslabs/tess/backend"
)

// Domain wraps a gnark-crypto fft.Domain, presenting a natural-order (not
// bit-reversed) forward/inverse FFT to callers.
type Domain struct {
	d *fft.Domain
}

var _ backend.Domain = (*Domain)(nil)

func newDomain(n uint64) *Domain {
	return &Domain{d: fft.NewDomain(n)}
}

func (dm *Domain) Cardinality() uint64 { return dm.d.Cardinality }

func (dm *Domain) Generator() backend.Scalar {
	s := new(Scalar)
	s.v.Set(&dm.d.Generator)
	return s
}

func (dm *Domain) GeneratorInverse() backend.Scalar {
	s := new(Scalar)
	s.v.Set(&dm.d.GeneratorInv)
	return s
}

func (dm *Domain) CardinalityInverse() backend.Scalar {
	s := new(Scalar)
	s.v.Set(&dm.d.CardinalityInv)
	return s
}

// FFT evaluates coeffs (natural coefficient order, length == Cardinality)
// over the domain, in place, leaving evaluations in natural domain order.
// gnark-crypto's DIF decimation produces bit-reversed output; BitReverse
// restores natural order so callers never reason about decimation schemes.
func (dm *Domain) FFT(coeffs []backend.Scalar) {
	v := toElements(coeffs)
	dm.d.FFT(v, fft.DIF)
	fft.BitReverse(v)
	fromElements(v, coeffs)
}

// FFTInverse interpolates evals (natural domain order) into coefficient
// form, in place. DIT decimation expects bit-reversed input and produces
// natural-order output, so evals is bit-reversed first.
func (dm *Domain) FFTInverse(evals []backend.Scalar) {
	v := toElements(evals)
	fft.BitReverse(v)
	dm.d.FFTInverse(v, fft.DIT)
	fromElements(v, evals)
}

func toElements(s []backend.Scalar) []fr.Element {
	out := make([]fr.Element, len(s))
	for i, x := range s {
		out[i] = asScalar(x).v
	}
	return out
}

func fromElements(v []fr.Element, into []backend.Scalar) {
	for i := range into {
		asScalar(into[i]).v.Set(&v[i])
	}
}
