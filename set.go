// Package intset provides an ordered set of 32-bit signed integers backed
// by a probabilistic skip list. Tower heights are drawn from a geometric
// distribution, so lookups and inserts take logarithmic time on average
// without any rebalancing.
package intset

import (
	randv2 "math/rand/v2"
)

// Set is an ordered set of int32 values. A Set must be created with New and
// is not safe for concurrent use.
type Set struct {
	cfg    config
	rng    randv2.Source
	head   *node
	level  int
	length int
}

// New returns an empty Set. Options adjust the maximum tower height, the
// promotion probability, and the random source; New panics when an option
// carries a value outside its documented range.
func New(opts ...Option) *Set {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.maxLevel < 1 || cfg.maxLevel > maxAllowedLevel {
		panic("intset: max level must be in [1, 64]")
	}
	if cfg.p <= 0 || cfg.p >= 1 {
		panic("intset: promotion probability must be in (0, 1)")
	}

	rng := cfg.src
	if rng == nil {
		rng = randv2.NewPCG(randv2.Uint64(), randv2.Uint64())
	}

	return &Set{
		cfg:  cfg,
		rng:  rng,
		head: newSentinel(cfg.maxLevel),
	}
}

// Len returns the number of values currently in the set.
func (s *Set) Len() int {
	return s.length
}

// Clear removes every value, returning the set to its empty state. Nodes
// are unlinked one at a time along level 0 so that no removed node keeps a
// successor reachable.
func (s *Set) Clear() {
	x := s.head.forward[0]
	for x != nil {
		next := x.forward[0]
		x.forward = nil
		x = next
	}
	for i := range s.head.forward {
		s.head.forward[i] = nil
	}
	s.level = 0
	s.length = 0
}
