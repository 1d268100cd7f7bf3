// Package selector implements the boolean length-n vector (spec §3
// "Selector") naming which of n parties contributed a partial decryption.
package selector

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Selector is a fixed-length bitmask over 1-indexed party IDs 1..=n.
type Selector struct {
	n    int
	bits *bitset.BitSet
}

// New returns an all-false selector over n parties.
func New(n int) *Selector {
	return &Selector{n: n, bits: bitset.New(uint(n))}
}

// FromIndices builds a selector over n parties with exactly the given
// 1-indexed party IDs set.
func FromIndices(n int, indices []int) (*Selector, error) {
	s := New(n)
	for _, i := range indices {
		if err := s.Set(i, true); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Set marks party i (1-indexed) present (true) or absent (false).
func (s *Selector) Set(i int, present bool) error {
	if i < 1 || i > s.n {
		return fmt.Errorf("selector: index %d out of range 1..=%d", i, s.n)
	}
	if present {
		s.bits.Set(uint(i - 1))
	} else {
		s.bits.Clear(uint(i - 1))
	}
	return nil
}

// Has reports whether party i (1-indexed) is present.
func (s *Selector) Has(i int) bool {
	if i < 1 || i > s.n {
		return false
	}
	return s.bits.Test(uint(i - 1))
}

// Count returns the number of parties present, k in spec §3.
func (s *Selector) Count() int {
	return int(s.bits.Count())
}

// N returns the total number of parties the selector is defined over.
func (s *Selector) N() int { return s.n }

// Indices returns the sorted, 1-indexed list of present party IDs.
func (s *Selector) Indices() []int {
	out := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i)+1)
	}
	return out
}
