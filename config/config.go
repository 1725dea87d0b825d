// Package config loads graph and engine settings from TOML or YAML files.
//
// The file format is chosen by extension: ".toml" uses BurntSushi/toml,
// ".yaml" and ".yml" use gopkg.in/yaml.v3. Validate runs before Build, and
// Build inserts every edge through the graph store so its own checks apply.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sptree/dijkstra"
	"github.com/katalvlaran/sptree/graph"
)

var (
	// ErrUnsupportedFormat indicates a file extension other than .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalidConfig indicates a configuration that fails validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Edge is one configured edge.
type Edge struct {
	From   int   `toml:"from" yaml:"from"`
	To     int   `toml:"to" yaml:"to"`
	Weight int64 `toml:"weight" yaml:"weight"`
}

// Config describes a graph and how to run the engine over it.
type Config struct {
	Vertices   int    `toml:"vertices" yaml:"vertices"`
	Source     int    `toml:"source" yaml:"source"`
	Undirected bool   `toml:"undirected" yaml:"undirected"`
	Strategy   string `toml:"strategy" yaml:"strategy"`
	Edges      []Edge `toml:"edges,omitempty" yaml:"edges,omitempty"`

	// Matrix is an alternative to Edges: Matrix[i][j] is the weight of i→j,
	// 0 for no edge. When set, Vertices may be left 0 and is taken from it.
	Matrix [][]int64 `toml:"matrix,omitempty" yaml:"matrix,omitempty"`
}

// Default returns the six-vertex directed reference graph, source 0.
func Default() *Config {
	return &Config{
		Vertices: 6,
		Source:   0,
		Strategy: dijkstra.StrategyLinear.String(),
		Edges: []Edge{
			{From: 0, To: 1, Weight: 2},
			{From: 0, To: 2, Weight: 8},
			{From: 1, To: 2, Weight: 5},
			{From: 1, To: 3, Weight: 6},
			{From: 2, To: 3, Weight: 3},
			{From: 2, To: 4, Weight: 2},
			{From: 3, To: 4, Weight: 1},
			{From: 3, To: 5, Weight: 9},
			{From: 4, To: 5, Weight: 3},
		},
	}
}

type format int

const (
	formatTOML format = iota
	formatYAML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch f {
	case formatTOML:
		err = toml.Unmarshal(data, &cfg)
	case formatYAML:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes c to path in the format selected by its extension.
func (c *Config) Save(path string) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}

	var data []byte
	switch f {
	case formatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return fmt.Errorf("config: encode: %w", err)
		}
		data = buf.Bytes()
	case formatYAML:
		if data, err = yaml.Marshal(c); err != nil {
			return fmt.Errorf("config: encode: %w", err)
		}
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks vertex count, source, strategy name and every edge.
func (c *Config) Validate() error {
	if c.Matrix != nil {
		if len(c.Edges) > 0 {
			return fmt.Errorf("%w: edges and matrix are mutually exclusive", ErrInvalidConfig)
		}
		if c.Vertices == 0 {
			c.Vertices = len(c.Matrix)
		}
		if err := graph.AdjacencyMatrix(c.Matrix).Validate(); err != nil {
			return fmt.Errorf("%w: matrix: %v", ErrInvalidConfig, err)
		}
		if c.Vertices != len(c.Matrix) {
			return fmt.Errorf("%w: vertices=%d but matrix is %d×%d", ErrInvalidConfig, c.Vertices, len(c.Matrix), len(c.Matrix))
		}
	}
	if c.Vertices < 1 {
		return fmt.Errorf("%w: vertices=%d, need at least 1", ErrInvalidConfig, c.Vertices)
	}
	if c.Source < 0 || c.Source >= c.Vertices {
		return fmt.Errorf("%w: source %d not in [0, %d)", ErrInvalidConfig, c.Source, c.Vertices)
	}
	if _, err := dijkstra.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for i, e := range c.edges() {
		if e.From < 0 || e.From >= c.Vertices || e.To < 0 || e.To >= c.Vertices {
			return fmt.Errorf("%w: edge #%d %d→%d out of range", ErrInvalidConfig, i, e.From, e.To)
		}
		if e.Weight <= 0 {
			return fmt.Errorf("%w: edge #%d %d→%d weight=%d must be positive", ErrInvalidConfig, i, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// Build validates c and returns a populated graph. A repeated edge keeps the
// last weight given; with Undirected set, a matrix entry also overwrites its
// mirror.
func (c *Config) Build() (*graph.Graph, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	g, err := graph.New(c.Vertices)
	if err != nil {
		return nil, err
	}
	for _, e := range c.edges() {
		if c.Undirected {
			err = g.SetUndirectedEdge(e.From, e.To, e.Weight)
		} else {
			err = g.SetEdge(e.From, e.To, e.Weight)
		}
		if err != nil {
			return nil, fmt.Errorf("config: edge %d→%d: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// edges returns Edges, or the non-zero entries of Matrix in row-major order.
func (c *Config) edges() []Edge {
	if c.Matrix == nil {
		return c.Edges
	}
	var out []Edge
	for i, row := range c.Matrix {
		for j, w := range row {
			if w != graph.NoEdge {
				out = append(out, Edge{From: i, To: j, Weight: w})
			}
		}
	}

	return out
}

// EngineOptions returns the engine options implied by c.
func (c *Config) EngineOptions() ([]dijkstra.Option, error) {
	s, err := dijkstra.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}

	return []dijkstra.Option{dijkstra.Source(c.Source), dijkstra.WithStrategy(s)}, nil
}
