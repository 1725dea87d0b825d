// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on integer-indexed graphs.
//
// Options:
//
//	– Source:     index of the starting vertex (default 0).
//	– Strategy:   StrategyLinear (O(V² + E) scan) or StrategyHeap (O((V+E) log V)).
//	– Context:    cooperative cancellation, checked once per settled vertex.
//	– OnSettle:   hook called when a vertex joins the known set.
//	– OnRelax:    hook called when a relaxation lowers a tentative distance.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrNegativeWeight  if an edge reachable from the source has a negative weight.
//	– ErrBadStrategy     if an unknown Strategy is requested.
//	– ErrBrokenChain     if a predecessor walk does not terminate at the source.
//	– graph.ErrInvalidVertex / graph.ErrInvalidOrder for out-of-range indices and empty graphs.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight is reachable from the source.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadStrategy indicates an unknown Strategy value or name.
	ErrBadStrategy = errors.New("dijkstra: unknown strategy")

	// ErrBrokenChain indicates a predecessor chain that cycles or ends away from the source.
	ErrBrokenChain = errors.New("dijkstra: predecessor chain does not reach source")
)

const (
	// Infinity is the distance of a vertex not reached from the source.
	Infinity int64 = math.MaxInt64

	// NoVertex is the predecessor of the source and of unreached vertices.
	NoVertex = -1
)

// Strategy selects how the next vertex to settle is found.
type Strategy int

const (
	// StrategyLinear scans every unknown vertex for the minimum: O(V² + E).
	StrategyLinear Strategy = iota

	// StrategyHeap keeps a lazy-decrease-key binary heap: O((V + E) log V).
	StrategyHeap
)

// String returns the strategy's configuration name.
func (s Strategy) String() string {
	switch s {
	case StrategyLinear:
		return "linear"
	case StrategyHeap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy resolves a configuration name ("linear", "heap"; case-insensitive).
// An empty name selects StrategyLinear.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return StrategyLinear, nil
	case "heap":
		return StrategyHeap, nil
	default:
		return StrategyLinear, fmt.Errorf("%w: %q", ErrBadStrategy, name)
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source   – starting vertex index; validated against [0, V) by Dijkstra.
// Strategy – minimum-selection strategy; both produce identical tables.
// Ctx      – cancellation context, never nil after DefaultOptions.
// OnSettle – called with (v, dist) when v is marked known.
// OnRelax  – called with (from, to, dist) after dist[to] is lowered.
type Options struct {
	Source   int
	Strategy Strategy
	Ctx      context.Context
	OnSettle func(v int, dist int64)
	OnRelax  func(from, to int, dist int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithStrategy selects the minimum-selection strategy.
// Unknown values surface as ErrBadStrategy when Dijkstra is invoked.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyLinear && s != StrategyHeap {
			o.err = fmt.Errorf("%w: %d", ErrBadStrategy, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithContext sets a context checked once per settled vertex.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnSettle registers a hook run each time a vertex becomes known.
func WithOnSettle(fn func(v int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a hook run after each successful relaxation.
func WithOnRelax(fn func(from, to int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:   0.
//   - Strategy: StrategyLinear.
//   - Ctx:      context.Background().
//   - hooks:    no-ops.
func DefaultOptions() Options {
	return Options{
		Source:   0,
		Strategy: StrategyLinear,
		Ctx:      context.Background(),
		OnSettle: func(int, int64) {},
		OnRelax:  func(int, int, int64) {},
	}
}
