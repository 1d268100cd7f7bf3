// Package zeroize provides best-effort overwrite-on-done helpers for secret
// byte buffers. Its callers are ciphertext.Encrypt and decrypt.Aggregate,
// which scrub the symmetric keystream right after the XOR (spec §5). τ in
// srs.NewTrusted and sk_i in keygen.SecretKey are opaque backend.Scalar
// values and are zeroed with Scalar.Set instead, not through this package.
package zeroize

// Bytes overwrites every byte of b with zero. Go gives no destructor hook
// (unlike the Rust original this spec is derived from), so callers invoke
// this explicitly once they are done with the buffer rather than relying on
// GC.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Uint64s overwrites every word of w with zero; used for the raw limbs of
// scalar field elements when a backend exposes them.
func Uint64s(w []uint64) {
	for i := range w {
		w[i] = 0
	}
}
