package query

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/sptree/dijkstra"
	"github.com/katalvlaran/sptree/graph"
)

// Facade serves distance and path queries from the latest published snapshot.
// Compute calls are serialised; reads never block on a running Compute.
type Facade struct {
	g      graph.Reader
	engine []dijkstra.Option
	logger *log.Logger
	now    func() time.Time

	mu      sync.Mutex // serialises Compute
	current atomic.Pointer[Snapshot]
}

// New returns a Facade over g with no snapshot published yet.
// It panics if g is nil.
func New(g graph.Reader, opts ...Option) *Facade {
	if g == nil {
		panic(ErrNilGraph)
	}
	f := &Facade{
		g:      g,
		logger: log.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Compute runs the engine from source and publishes the result as the current
// snapshot. On error the previously published snapshot, if any, stays current.
func (f *Facade) Compute(ctx context.Context, source int) (*Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	opts := make([]dijkstra.Option, 0, len(f.engine)+2)
	opts = append(opts, f.engine...)
	opts = append(opts, dijkstra.Source(source), dijkstra.WithContext(ctx))

	start := f.now()
	tables, err := dijkstra.Dijkstra(f.g, opts...)
	if err != nil {
		f.logger.Warn("compute failed", "source", source, "err", err)
		return nil, err
	}

	snap := &Snapshot{
		ID:         uuid.New(),
		Tables:     tables,
		ComputedAt: f.now(),
	}
	f.current.Store(snap)

	f.logger.Debug("snapshot published",
		"id", snap.ID,
		"source", source,
		"strategy", tables.Strategy,
		"reached", reached(tables),
		"elapsed", snap.ComputedAt.Sub(start),
	)

	return snap, nil
}

// Snapshot returns the current snapshot.
func (f *Facade) Snapshot() (*Snapshot, error) {
	s := f.current.Load()
	if s == nil {
		return nil, ErrNotInitialized
	}

	return s, nil
}

// Distance returns the shortest distance to v, dijkstra.Infinity if unreached.
func (f *Facade) Distance(v int) (int64, error) {
	s, err := f.Snapshot()
	if err != nil {
		return dijkstra.Infinity, err
	}

	return s.Tables.Distance(v)
}

// Predecessor returns v's predecessor in the current tree.
func (f *Facade) Predecessor(v int) (int, error) {
	s, err := f.Snapshot()
	if err != nil {
		return dijkstra.NoVertex, err
	}

	return s.Tables.Predecessor(v)
}

// IsKnown reports whether v was settled in the current run.
func (f *Facade) IsKnown(v int) (bool, error) {
	s, err := f.Snapshot()
	if err != nil {
		return false, err
	}

	return s.Tables.IsKnown(v)
}

// Path reconstructs the path from the current source to target.
// ok is false when target is unreachable.
func (f *Facade) Path(target int) (dijkstra.Path, bool, error) {
	s, err := f.Snapshot()
	if err != nil {
		return nil, false, err
	}

	return s.Tables.PathTo(target)
}

// Dump writes the diagnostic table of the current snapshot to w.
func (f *Facade) Dump(w io.Writer) error {
	s, err := f.Snapshot()
	if err != nil {
		return err
	}
	_, err = s.Tables.WriteTo(w)

	return err
}

// TargetForKey maps a digit key to a vertex. The bound is the vertex count of
// the current snapshot; before the first Compute it is the graph's order.
// Keys outside '0'..'9' yield ErrInvalidKey; digits >= V yield
// graph.ErrInvalidVertex.
func (f *Facade) TargetForKey(key rune) (int, error) {
	if s := f.current.Load(); s != nil {
		return KeyToVertex(key, s.Tables.Len())
	}

	return KeyToVertex(key, f.g.Adjacency().Order())
}

func reached(t *dijkstra.Tables) int {
	n := 0
	for v := range t.Dist {
		if t.Reachable(v) {
			n++
		}
	}

	return n
}
