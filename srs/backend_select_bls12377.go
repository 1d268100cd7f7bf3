//go:build bls12377

package srs

import "github.com/tesslabs/tess/backend/bls12377"

// defaultSuite under the bls12377 build tag stands in for "an alternative
// pairing curve" (spec §6).
var defaultSuite = bls12377.New()
