// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the multiplication facade and
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by approximate
	// equality checks (EqualApprox) when callers have no better bound.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion and Set. Padding, Unpad and the multiplication kernels write
	// through the flat buffer and are unaffected; the guard protects the
	// public mutation surface only.
	DefaultValidateNaNInf = true
)

// Multiplication facade defaults.
const (
	// DefaultTileSize is the tile dimension used by Multiply when the caller
	// does not override it. Three 32×32 float64 tiles occupy 24 KiB, which
	// fits a typical 32 KiB L1 data cache with room for the result stripe.
	DefaultTileSize = 32

	// DefaultWorkers selects the worker count for the parallel tiled
	// strategy; 0 means "one worker per logical CPU" at call time.
	DefaultWorkers = 0
)

// Strategy selects which multiplication kernel the Multiply facade runs.
// All strategies share one contract: validate shapes first, then produce a
// fresh a.Rows()×b.Cols() Dense without mutating the operands.
type Strategy uint8

const (
	// StrategyNaive is the triple-loop reference kernel (MultiplyNaive).
	StrategyNaive Strategy = iota

	// StrategyBLAS delegates to the gonum blas64 GEMM kernel (MultiplyBLAS).
	StrategyBLAS

	// StrategyTiled is the cache-aware tiled kernel (MultiplyTiled).
	StrategyTiled

	// StrategyTiledParallel runs the tiled kernel with the outer tile grid
	// partitioned across workers (MultiplyTiledParallel).
	StrategyTiledParallel

	// strategySentinel bounds the valid Strategy range for validation.
	strategySentinel
)

// DefaultStrategy is what Multiply runs when no WithStrategy option is given.
const DefaultStrategy = StrategyTiled

// Options carries the gathered configuration for the Multiply facade.
// Fields are unexported; construct via the WithX option constructors.
type Options struct {
	strategy Strategy // which kernel to dispatch
	tileSize int      // tile dimension for tiled strategies (>0)
	workers  int      // worker count for the parallel strategy (0 => NumCPU)
}

// Option mutates Options during gathering. Options are applied in order;
// the last writer wins, matching the usual functional-options contract.
type Option func(*Options)

// WithStrategy selects the multiplication kernel.
// Panics on an out-of-range Strategy value (programmer error).
func WithStrategy(s Strategy) Option {
	if s >= strategySentinel {
		panic("matrix: WithStrategy: unknown strategy")
	}
	return func(o *Options) { o.strategy = s }
}

// WithTileSize overrides the tile dimension used by the tiled strategies.
// Panics on t <= 0 (programmer error); runtime callers that cannot guarantee
// positivity should call MultiplyTiled directly and handle ErrInvalidTileSize.
func WithTileSize(t int) Option {
	if t <= 0 {
		panic("matrix: WithTileSize: tile size must be > 0")
	}
	return func(o *Options) { o.tileSize = t }
}

// WithWorkers sets the worker count for StrategyTiledParallel.
// Panics on n < 0; n == 0 keeps the "one per logical CPU" default.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("matrix: WithWorkers: negative worker count")
	}
	return func(o *Options) { o.workers = n }
}

// defaultOptions returns the documented zero-configuration state.
// MUST stay in sync with the Default* constants above.
func defaultOptions() Options {
	return Options{
		strategy: DefaultStrategy,
		tileSize: DefaultTileSize,
		workers:  DefaultWorkers,
	}
}

// gatherOptions folds the given options over the defaults.
// Deterministic: application order is the argument order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
