package keygen

import (
	"math/big"

	"github.com/tesslabs/tess/backend"
	"github.com/tesslabs/tess/poly"
)

// computeHints derives hint_{i,j} = Commit((scaledLi(X) - scaledLi(omega^j))
// / (X - omega^j)) for every j = 0..N-1 in O(N log N), replacing N
// independent poly.DivideByLinear + kzg.Commit calls with three FFTs over a
// doubled domain (two forward, one inverse) plus one final forward FFT over
// the original domain
// (spec §4.E "a single O(N log N) pass", DESIGN.md's hint-batching entry).
//
// Derivation: writing c = scaledLi's coefficients (length N), the quotient
// coefficients of synthetic division by (X-omega^j) satisfy
// hint_j = sum over m=0..N-2 of omega^(j*m) * h_m, where
// h_m = sum over i=m+1..N-1 of c_i * powersG1[i-1-m]
// is a length-(N-1) linear cross-correlation of c[1:] against powersG1,
// computed via one FFT-based convolution over a size-2N domain (a power of
// two since N already is), then the final sum over m is itself a forward
// FFT of h (zero-padded to length N) over the original domain.
//
// Grounded on srs.lagrangeCommitmentsG1's technique of running gnark-crypto's
// radix-2 butterfly network directly over G1 group elements instead of
// scalars (see srs/srs.go); g1NTT below generalizes that single
// inverse-only pass to both directions.
func computeHints(suite backend.Suite, dom backend.Domain, powersG1 []backend.G1, scaledLi poly.Polynomial) ([]backend.G1, error) {
	N := int(dom.Cardinality())

	d := make([]backend.Scalar, N-1)
	for i := 0; i < N-1; i++ {
		d[i] = scaledLi[i+1].Clone()
	}
	revB := make([]backend.G1, N-1)
	for k := 0; k < N-1; k++ {
		revB[k] = powersG1[(N-2)-k].Clone()
	}

	M := uint64(2 * N)
	domM, err := suite.Domain(M)
	if err != nil {
		return nil, err
	}

	dPad := make([]backend.Scalar, M)
	for i := range dPad {
		if i < len(d) {
			dPad[i] = d[i]
		} else {
			dPad[i] = suite.NewScalar().SetUint64(0)
		}
	}
	bPad := make([]backend.G1, M)
	for i := range bPad {
		if i < len(revB) {
			bPad[i] = revB[i]
		} else {
			bPad[i] = suite.NewG1()
		}
	}

	domM.FFT(dPad)
	g1NTT(suite, domM, bPad, false)

	prod := make([]backend.G1, M)
	for i := range prod {
		prod[i] = suite.NewG1().ScalarMul(bPad[i], dPad[i])
	}
	g1NTT(suite, domM, prod, true)

	h := make([]backend.G1, N)
	for m := 0; m < N-1; m++ {
		h[m] = prod[m+N-2]
	}
	h[N-1] = suite.NewG1()

	g1NTT(suite, dom, h, false)
	return h, nil
}

// g1NTT applies the size-len(v) radix-2 NTT to v in place, over dom's
// generator (forward, evaluation direction) or its inverse (inverse,
// interpolation direction, with the final 1/len(v) scaling).
func g1NTT(suite backend.Suite, dom backend.Domain, v []backend.G1, inverse bool) {
	n := len(v)
	bitReverseG1(v)

	root := dom.Generator()
	if inverse {
		root = dom.GeneratorInverse()
	}

	for size := 2; size <= n; size *= 2 {
		half := size / 2
		exp := new(big.Int).SetUint64(uint64(n / size))
		w := suite.NewScalar().Exp(root, exp)
		for start := 0; start < n; start += size {
			wPow := suite.NewScalar().SetUint64(1)
			for k := 0; k < half; k++ {
				a := v[start+k]
				b := suite.NewG1().ScalarMul(v[start+k+half], wPow)
				v[start+k] = suite.NewG1().Add(a, b)
				v[start+k+half] = suite.NewG1().Sub(a, b)
				wPow = suite.NewScalar().Mul(wPow, w)
			}
		}
	}

	if inverse {
		nInv := dom.CardinalityInverse()
		for i := range v {
			v[i] = suite.NewG1().ScalarMul(v[i], nInv)
		}
	}
}

func bitReverseG1(v []backend.G1) {
	n := len(v)
	for i, j := 0, 0; i < n; i++ {
		if i < j {
			v[i], v[j] = v[j], v[i]
		}
		bit := n >> 1
		for ; bit > 0 && j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
	}
}
