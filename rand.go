package intset

import (
	"math/bits"
)

const (
	float64Unit = 1.0 / (1 << 53)
)

// randomLevel draws the level for a new tower. The result follows a
// geometric distribution with parameter p, truncated so that it never
// exceeds maxLevel-1.
func (s *Set) randomLevel() int {
	top := s.cfg.maxLevel - 1
	if top == 0 {
		return 0
	}

	if s.cfg.p == 0.5 {
		level := bits.TrailingZeros64(s.rng.Uint64())
		if level > top {
			level = top
		}
		return level
	}

	level := 0
	for level < top {
		randFloat := float64(s.rng.Uint64()>>11) * float64Unit
		if randFloat >= s.cfg.p {
			break
		}
		level++
	}

	return level
}
