// Package terrors defines the error-kind taxonomy from spec §7. Every
// public operation in this module returns either a success value or one of
// these sentinel kinds, wrapped with context via fmt.Errorf("...: %w", Kind).
// This mirrors gnark-crypto's own house style of plain errors.New sentinels
// (see its ecc/<curve>/kzg package) rather than a custom error framework.
package terrors

import "errors"

var (
	// ErrInvalidParameters reports n, t out of range (spec §4.D precondition
	// 1 <= t < n, n <= N-1).
	ErrInvalidParameters = errors.New("tess: invalid parameters")

	// ErrSetupFailure reports an rng failure during param_gen.
	ErrSetupFailure = errors.New("tess: setup failure")

	// ErrKeygenFailure reports a failure computing a party's hint vector
	// during per-party keygen (keygen draws no randomness).
	ErrKeygenFailure = errors.New("tess: keygen failure")

	// ErrInvalidIndex reports a party index outside 1..=n.
	ErrInvalidIndex = errors.New("tess: invalid party index")

	// ErrEncryptFailure reports an rng or backend failure during encryption
	// (sampling, commitment, pairing, proof, or keystream derivation).
	ErrEncryptFailure = errors.New("tess: encrypt failure")

	// ErrPayloadTooLarge reports a plaintext outside the implementation's
	// payload bound.
	ErrPayloadTooLarge = errors.New("tess: payload too large")

	// ErrMalformedCiphertext reports a ciphertext failing basic
	// well-formedness checks (identity-element / subgroup checks).
	ErrMalformedCiphertext = errors.New("tess: malformed ciphertext")

	// ErrMalformedPartial reports partial decryption shares that do not match
	// the selector at aggregate_decrypt time: a selected party with no share,
	// more shares than selected parties, or a selected party with no public
	// key. Shares are never decoded from bytes, so no encoding check exists.
	ErrMalformedPartial = errors.New("tess: malformed partial decryption")

	// ErrInsufficientShares reports |S| < t+1 at aggregate_decrypt time.
	ErrInsufficientShares = errors.New("tess: insufficient shares")

	// ErrVerificationFailed is never returned as a Go error from
	// decrypt.Aggregate (spec §7: it reports failure via Result.Verified,
	// not by throwing); it exists so other layers (e.g. a batch-decrypt
	// helper processing many ciphertexts) have a sentinel to attach to a
	// non-throwing failure if they choose to surface one.
	ErrVerificationFailed = errors.New("tess: verification failed")

	// ErrBackendError wraps an error surfaced by the pairing backend
	// (malformed curve encoding, pairing computation failure, etc.).
	ErrBackendError = errors.New("tess: backend error")
)
