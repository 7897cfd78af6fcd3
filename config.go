package intset

import (
	randv2 "math/rand/v2"
)

const (
	// DefaultMaxLevel is the maximum tower height used when no override is
	// given. Sixteen levels keep lookups logarithmic well past a million
	// elements at the default promotion probability.
	DefaultMaxLevel = 16

	// DefaultProbability is the chance that a tower grows by one more level.
	DefaultProbability = 0.5
)

// maxAllowedLevel bounds WithMaxLevel. The level generator draws from a
// 64-bit word, so taller towers could never be produced anyway.
const maxAllowedLevel = 64

type config struct {
	maxLevel int
	p        float64
	src      randv2.Source
}

func defaultConfig() config {
	return config{
		maxLevel: DefaultMaxLevel,
		p:        DefaultProbability,
	}
}

// Option customizes a Set created by New.
type Option func(*config)

// WithMaxLevel sets the maximum tower height. New panics unless level is in
// [1, 64].
func WithMaxLevel(level int) Option {
	return func(c *config) { c.maxLevel = level }
}

// WithProbability sets the promotion probability used when drawing tower
// heights. New panics unless p is in (0, 1).
func WithProbability(p float64) Option {
	return func(c *config) { c.p = p }
}

// WithSource sets the random source consulted by inserts. Supplying a fixed
// source makes the list shape reproducible.
func WithSource(src randv2.Source) Option {
	return func(c *config) { c.src = src }
}
