//go:build !bls12377

package srs

import "github.com/tesslabs/tess/backend/bls12381"

// defaultSuite is the pairing backend srs.NewTrusted builds against. The
// core selects one backend at build time (spec §6); bls12381 is the
// default, matching backend/bls12381's own default-build-tag selection.
var defaultSuite = bls12381.New()
