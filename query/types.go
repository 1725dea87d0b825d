// Package query publishes shortest-path snapshots for readers.
//
// A Facade owns one graph.Reader. Compute runs the engine and atomically
// replaces the current Snapshot; all read methods load exactly one snapshot,
// so a reader never sees tables from two different runs.
package query

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/sptree/dijkstra"
)

// Sentinel errors returned by the facade.
var (
	// ErrNotInitialized indicates a read before the first successful Compute.
	ErrNotInitialized = errors.New("query: no snapshot computed yet")

	// ErrInvalidKey indicates a selection key that does not name a vertex.
	ErrInvalidKey = errors.New("query: key does not select a vertex")

	// ErrNilGraph indicates New was given a nil graph.
	ErrNilGraph = errors.New("query: graph is nil")
)

// Snapshot is one published result. It is immutable once returned.
type Snapshot struct {
	ID         uuid.UUID
	Tables     *dijkstra.Tables
	ComputedAt time.Time
}

// Option configures a Facade.
type Option func(*Facade)

// WithLogger sets the logger used for compute events. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(f *Facade) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithEngineOptions appends options passed to every engine run. Source and
// Context are always set by Compute and override anything given here.
func WithEngineOptions(opts ...dijkstra.Option) Option {
	return func(f *Facade) {
		f.engine = append(f.engine, opts...)
	}
}

// withClock replaces time.Now; tests only.
func withClock(now func() time.Time) Option {
	return func(f *Facade) {
		f.now = now
	}
}
