// SPDX-License-Identifier: MIT
// Package measure: functional options.
// Same shape as the operator package: Default* constants, WithX
// constructors that panic on nonsense values (programmer errors, not
// runtime conditions), and a private gatherOptions resolver.

package measure

import (
	"math/rand"
	"time"
)

const (
	// DefaultTolerance bounds completeness and projector checks.
	DefaultTolerance = 1e-10

	// CollapseFloor is the probability below which an outcome's
	// post-measurement state is left as the INPUT state rather than
	// normalized: normalize(P|ψ⟩) is numerically meaningless when
	// ‖P|ψ⟩‖² ~ 0. Policy, not an error.
	CollapseFloor = 1e-15
)

// Panic messages for option misuse.
const (
	panicBadTol  = "measure: WithTolerance requires tol > 0"
	panicNilRand = "measure: WithRand requires a non-nil source"
)

// options is the resolved configuration of one apparatus.
type options struct {
	tol float64
	rng *rand.Rand
}

// Option mutates the measurement configuration.
type Option func(*options)

// WithTolerance overrides DefaultTolerance. Panics if tol <= 0.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic(panicBadTol)
	}

	return func(o *options) { o.tol = tol }
}

// WithRand injects the random source used by every sampler of the
// apparatus. Inject a seeded source for reproducible runs. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicNilRand)
	}

	return func(o *options) { o.rng = rng }
}

// gatherOptions folds opts over the defaults. A fresh time-seeded source
// is created when none was injected.
func gatherOptions(opts ...Option) options {
	cfg := options{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
