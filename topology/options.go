// SPDX-License-Identifier: MIT
// Package: distmst/topology
//
// options.go — functional options for the stochastic generators.
//
// Contract (strict):
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic.
//   • Determinism is explicit: every stochastic generator draws from a
//     seeded RNG. Without WithSeed the fixed defaultSeed is used, so the
//     zero-option call is still reproducible.

package topology

import (
	"math/rand"
)

// defaultSeed seeds stochastic generators when the caller supplies none.
const defaultSeed int64 = 1

// Option customizes generator behavior by mutating a genConfig before
// construction begins.
type Option func(*genConfig)

// genConfig is the resolved generator configuration. Immutable after
// newGenConfig returns.
type genConfig struct {
	rng *rand.Rand
}

// newGenConfig resolves opts over the deterministic defaults.
// Complexity: O(len(opts)).
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{rng: rand.New(rand.NewSource(defaultSeed))}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("topology: WithRand(nil)")
	}

	return func(c *genConfig) {
		c.rng = r
	}
}
