// Package config loads graphstream scene configuration from TOML files.
//
// A configuration describes one scene: the random seed, the chunk size of the
// spatial index, the streaming parameters and an ordered list of generators
// that populate the graph.
//
//	seed = 42
//
//	[index]
//	chunk_size = 400.0
//
//	[[generators]]
//	kind = "web"
//	total_nodes = 2000
//	cell_margin = 200.0
//
// Zero values select the package defaults, so a file only needs the keys it
// changes. [Load] validates after decoding; [Encode] writes the effective
// configuration back out.
package config

import (
	"io"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphstream/pkg/errors"
	"github.com/matzehuels/graphstream/pkg/generator"
	"github.com/matzehuels/graphstream/pkg/stream"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSeed seeds every generator of a scene.
	DefaultSeed = uint64(42)

	// DefaultChunkSize is the side of a spatial index chunk in world units.
	DefaultChunkSize = 400.0
)

// Generator kinds.
const (
	KindCircle = "circle"
	KindSpiral = "spiral"
	KindWeb    = "web"
)

// =============================================================================
// Types
// =============================================================================

// Config is a complete scene configuration.
type Config struct {
	Seed       uint64          `toml:"seed"`
	Index      Index           `toml:"index"`
	Stream     Stream          `toml:"stream"`
	Generators []GeneratorSpec `toml:"generators"`
}

// Index configures the spatial index.
type Index struct {
	ChunkSize float64 `toml:"chunk_size"`
}

// Stream mirrors stream.Config.
type Stream struct {
	RenderDistance   float64 `toml:"render_distance"`
	BatchSize        int     `toml:"batch_size"`
	MaxLive          int     `toml:"max_live"`
	EvictEvery       int     `toml:"evict_every"`
	EnqueueEvery     int     `toml:"enqueue_every"`
	MaterializeEvery int     `toml:"materialize_every"`
}

// GeneratorSpec describes one generator run. Fields that do not apply to
// Kind are ignored.
type GeneratorSpec struct {
	Kind         string     `toml:"kind"`
	TotalNodes   int        `toml:"total_nodes"`
	Center       [2]float64 `toml:"center"`
	Repeated     bool       `toml:"repeated,omitempty"`
	EdgeStrategy string     `toml:"edge_strategy,omitempty"`

	// circle and spiral
	AverageDistance float64 `toml:"average_distance,omitempty"`
	Children        int     `toml:"children,omitempty"`

	// circle
	MaxDepth          int     `toml:"max_depth,omitempty"`
	RandomProbability float64 `toml:"random_probability,omitempty"`

	// spiral
	AngleIncrement float64 `toml:"angle_increment,omitempty"`

	// web
	CellMargin float64 `toml:"cell_margin,omitempty"`

	// Proximity overrides the generator's proximity passes.
	Proximity *Proximity `toml:"proximity,omitempty"`
}

// Proximity mirrors generator.Proximity.
type Proximity struct {
	CellSize float64         `toml:"cell_size"`
	Passes   []ProximityPass `toml:"passes"`
}

// ProximityPass mirrors generator.ProximityPass.
type ProximityPass struct {
	MaxDistance float64 `toml:"max_distance"`
	Probability float64 `toml:"probability"`
}

// =============================================================================
// Defaults
// =============================================================================

// Default returns the configuration used when no file is given: one repeated
// circle pattern meshed with the nearest strategy.
func Default() Config {
	return Config{
		Seed:  DefaultSeed,
		Index: Index{ChunkSize: DefaultChunkSize},
		Stream: Stream{
			RenderDistance:   stream.DefaultRenderDistance,
			BatchSize:        stream.DefaultBatchSize,
			EvictEvery:       stream.DefaultEvictEvery,
			EnqueueEvery:     stream.DefaultEnqueueEvery,
			MaterializeEvery: stream.DefaultMaterializeEvery,
		},
		Generators: []GeneratorSpec{{
			Kind:            KindCircle,
			TotalNodes:      5000,
			Children:        10,
			AverageDistance: 1000,
			MaxDepth:        10,
			EdgeStrategy:    string(generator.StrategyNearest),
			Repeated:        true,
		}},
	}
}

// SetDefaults fills zero-valued top-level fields. Seed is left alone since
// zero is a valid seed; Parse defaults it only when the key is absent.
func (c *Config) SetDefaults() {
	if c.Index.ChunkSize == 0 {
		c.Index.ChunkSize = DefaultChunkSize
	}
	for i := range c.Generators {
		c.Generators[i].setDefaults()
	}
}

func (g *GeneratorSpec) setDefaults() {
	if g.EdgeStrategy != "" {
		return
	}
	switch g.Kind {
	case KindCircle, KindSpiral:
		g.EdgeStrategy = string(generator.StrategyTree)
	}
}

// StreamConfig converts the stream section for stream.New.
func (c Config) StreamConfig() stream.Config {
	return stream.Config{
		RenderDistance:   c.Stream.RenderDistance,
		BatchSize:        c.Stream.BatchSize,
		MaxLive:          c.Stream.MaxLive,
		EvictEvery:       c.Stream.EvictEvery,
		EnqueueEvery:     c.Stream.EnqueueEvery,
		MaterializeEvery: c.Stream.MaterializeEvery,
	}
}

// ProximityOverride converts the proximity table, or returns nil when the
// generator keeps its own passes.
func (g GeneratorSpec) ProximityOverride() *generator.Proximity {
	if g.Proximity == nil {
		return nil
	}
	p := generator.Proximity{CellSize: g.Proximity.CellSize}
	for _, pass := range g.Proximity.Passes {
		p.Passes = append(p.Passes, generator.ProximityPass{
			MaxDistance: pass.MaxDistance,
			Probability: pass.Probability,
		})
	}
	return &p
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks the configuration after defaults are applied. Generator
// specific options are checked again by the generator constructors.
func (c Config) Validate() error {
	c.Generators = slices.Clone(c.Generators)
	c.SetDefaults()
	if err := errors.ValidatePositive("index.chunk_size", c.Index.ChunkSize); err != nil {
		return err
	}
	if err := c.StreamConfig().Validate(); err != nil {
		return err
	}
	for i, g := range c.Generators {
		if err := g.validate(); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "generators[%d]", i)
		}
	}
	return nil
}

func (g GeneratorSpec) validate() error {
	switch g.Kind {
	case KindCircle, KindSpiral, KindWeb:
	default:
		return errors.New(errors.ErrCodeInvalidGenerator,
			"unknown generator kind %q (must be one of: circle, spiral, web)", g.Kind)
	}
	if err := errors.ValidateCount("total_nodes", g.TotalNodes, 0); err != nil {
		return err
	}
	if g.EdgeStrategy != "" {
		if _, err := generator.ParseEdgeStrategy(g.EdgeStrategy); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// I/O
// =============================================================================

// Load reads, defaults and validates the configuration at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}
	return Parse(string(data))
}

// Parse decodes a TOML document, applies defaults and validates it.
// Unknown keys are rejected.
func Parse(doc string) (Config, error) {
	var cfg Config
	md, err := toml.Decode(doc, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if !md.IsDefined("seed") {
		cfg.Seed = DefaultSeed
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return nil
}
