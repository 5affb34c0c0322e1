// Package world loads tile maps and search settings from TOML or YAML files.
package world

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpath/agent"
	"github.com/katalvlaran/lvpath/dfs"
	"github.com/katalvlaran/lvpath/gridgraph"
)

var (
	// ErrUnsupportedFormat is returned for a file extension other than
	// .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("world: unsupported file format")

	// ErrNoStart is returned when neither a start coordinate nor an 'S' tile
	// is present.
	ErrNoStart = errors.New("world: no start cell")

	// ErrInvalidConfig is returned for settings that fail validation.
	ErrInvalidConfig = errors.New("world: invalid config")
)

// SearchConfig holds the search settings of a world file.
type SearchConfig struct {
	Strategy string `toml:"strategy" yaml:"strategy"`
	Bound    int    `toml:"bound" yaml:"bound"`
	Ceiling  int    `toml:"ceiling" yaml:"ceiling"`
}

// AgentConfig holds the episode settings of a world file.
type AgentConfig struct {
	MaxTicks int `toml:"max_ticks" yaml:"max_ticks"`
}

// Config is a parsed world file.
type Config struct {
	Name         string       `toml:"name" yaml:"name"`
	Rows         []string     `toml:"rows" yaml:"rows"`
	Connectivity int          `toml:"connectivity" yaml:"connectivity"`
	Start        []int        `toml:"start" yaml:"start"`
	Search       SearchConfig `toml:"search" yaml:"search"`
	Agent        AgentConfig  `toml:"agent" yaml:"agent"`
}

// DefaultConfig returns the settings used for keys a world file omits:
// 4-connectivity, DFS without a bound, the default IDDFS ceiling and the
// default tick budget.
func DefaultConfig() Config {
	return Config{
		Connectivity: 4,
		Search: SearchConfig{
			Strategy: dfs.StrategyDFS.String(),
			Bound:    dfs.Unbounded,
			Ceiling:  dfs.DefaultCeiling,
		},
		Agent: AgentConfig{MaxTicks: agent.DefaultMaxTicks},
	}
}

// Load reads the world file at path, choosing the decoder by extension, and
// validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load world: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		cfg, err = DecodeTOML(data)
	case ".yaml", ".yml":
		cfg, err = DecodeYAML(data)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return Config{}, fmt.Errorf("load world %s: %w", path, err)
	}

	return cfg, nil
}

// DecodeTOML parses a TOML world. Keys that are absent keep their defaults.
func DecodeTOML(data []byte) (Config, error) {
	cfg := DefaultConfig()

	var raw Config
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undec[0].String())
	}

	if meta.IsDefined("name") {
		cfg.Name = strings.TrimSpace(raw.Name)
	}
	if meta.IsDefined("rows") {
		cfg.Rows = raw.Rows
	}
	if meta.IsDefined("connectivity") {
		cfg.Connectivity = raw.Connectivity
	}
	if meta.IsDefined("start") {
		cfg.Start = raw.Start
	}
	if meta.IsDefined("search", "strategy") {
		cfg.Search.Strategy = strings.TrimSpace(raw.Search.Strategy)
	}
	if meta.IsDefined("search", "bound") {
		cfg.Search.Bound = raw.Search.Bound
	}
	if meta.IsDefined("search", "ceiling") {
		cfg.Search.Ceiling = raw.Search.Ceiling
	}
	if meta.IsDefined("agent", "max_ticks") {
		cfg.Agent.MaxTicks = raw.Agent.MaxTicks
	}

	return cfg, cfg.Validate()
}

// DecodeYAML parses a YAML world. Unknown keys are rejected; absent keys keep
// their defaults.
func DecodeYAML(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	cfg.Name = strings.TrimSpace(cfg.Name)
	cfg.Search.Strategy = strings.TrimSpace(cfg.Search.Strategy)

	return cfg, cfg.Validate()
}

// Validate checks the settings that do not need the grid to be built.
func (c Config) Validate() error {
	if len(c.Rows) == 0 {
		return fmt.Errorf("%w: rows are required", ErrInvalidConfig)
	}
	if c.Connectivity != 4 && c.Connectivity != 8 {
		return fmt.Errorf("%w: connectivity must be 4 or 8, got %d", ErrInvalidConfig, c.Connectivity)
	}
	if c.Start != nil && len(c.Start) != 2 {
		return fmt.Errorf("%w: start must be [x, y]", ErrInvalidConfig)
	}
	if _, err := dfs.ParseStrategy(c.Search.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Search.Bound < dfs.Unbounded {
		return fmt.Errorf("%w: bound must be >= %d", ErrInvalidConfig, dfs.Unbounded)
	}
	if c.Search.Ceiling < 0 {
		return fmt.Errorf("%w: ceiling must be >= 0", ErrInvalidConfig)
	}
	if c.Agent.MaxTicks <= 0 {
		return fmt.Errorf("%w: max_ticks must be positive", ErrInvalidConfig)
	}

	return nil
}

// Grid builds the tile map.
func (c Config) Grid() (*gridgraph.GridGraph, error) {
	opts := gridgraph.DefaultGridOptions()
	if c.Connectivity == 8 {
		opts.Conn = gridgraph.Conn8
	}

	return gridgraph.ParseRows(c.Rows, opts)
}

// StartIndex resolves the start cell: the explicit start coordinate if set,
// otherwise the first 'S' tile.
func (c Config) StartIndex(gg *gridgraph.GridGraph) (int, error) {
	if len(c.Start) == 2 {
		x, y := c.Start[0], c.Start[1]
		if !gg.InBounds(x, y) {
			return 0, fmt.Errorf("%w: start (%d,%d)", gridgraph.ErrOutOfBounds, x, y)
		}
		return gg.Index(x, y), nil
	}
	starts := gg.Find(gridgraph.TileStart)
	if len(starts) == 0 {
		return 0, ErrNoStart
	}

	return starts[0], nil
}

// Strategy returns the configured search strategy.
func (c Config) Strategy() (dfs.Strategy, error) {
	return dfs.ParseStrategy(c.Search.Strategy)
}

// SearchOptions turns the search settings into dfs options.
func (c Config) SearchOptions() []dfs.Option {
	return []dfs.Option{
		dfs.WithBound(c.Search.Bound),
		dfs.WithCeiling(c.Search.Ceiling),
	}
}
