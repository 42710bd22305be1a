package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphstream/pkg/config"
)

// sceneFlags are the scene options shared by every command that builds a
// scene. Flags override the config file only when set explicitly.
type sceneFlags struct {
	configPath string

	seed           uint64
	chunkSize      float64
	renderDistance float64
	batchSize      int
	maxLive        int

	// A set --kind replaces the configured generators with a single one.
	kind     string
	nodes    int
	children int
	distance float64
	depth    int
	strategy string
	repeated bool
	angle    float64
	margin   float64
	centerX  float64
	centerY  float64
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "scene config file (TOML)")

	fs.Uint64Var(&f.seed, "seed", config.DefaultSeed, "random seed")
	fs.Float64Var(&f.chunkSize, "chunk-size", config.DefaultChunkSize, "spatial index chunk size")
	fs.Float64Var(&f.renderDistance, "render-distance", 0, "query radius in chunks")
	fs.IntVar(&f.batchSize, "batch-size", 0, "entities materialized per batch")
	fs.IntVar(&f.maxLive, "max-live", 0, "cap on live nodes plus edges (0: unlimited)")

	fs.StringVarP(&f.kind, "kind", "k", "", "single generator: circle, spiral or web")
	fs.IntVarP(&f.nodes, "nodes", "n", 5000, "node budget of the single generator")
	fs.IntVar(&f.children, "children", 10, "children per parent (circle, spiral)")
	fs.Float64Var(&f.distance, "distance", 1000, "average parent-child distance (circle, spiral)")
	fs.IntVar(&f.depth, "depth", 10, "maximum depth (circle)")
	fs.StringVar(&f.strategy, "strategy", "", "edge strategy: tree, chain, nearest or random")
	fs.BoolVar(&f.repeated, "repeated", false, "repeat closed patterns until the budget is spent")
	fs.Float64Var(&f.angle, "angle", 1, "angle increment in radians (spiral)")
	fs.Float64Var(&f.margin, "margin", 200, "cell margin (web)")
	fs.Float64Var(&f.centerX, "center-x", 0, "pattern center x")
	fs.Float64Var(&f.centerY, "center-y", 0, "pattern center y")
}

// load returns the configuration file (or the defaults) with explicitly set
// flags applied. The result is validated.
func (f *sceneFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("chunk-size") {
		cfg.Index.ChunkSize = f.chunkSize
	}
	if changed("render-distance") {
		cfg.Stream.RenderDistance = f.renderDistance
	}
	if changed("batch-size") {
		cfg.Stream.BatchSize = f.batchSize
	}
	if changed("max-live") {
		cfg.Stream.MaxLive = f.maxLive
	}
	if changed("kind") {
		cfg.Generators = []config.GeneratorSpec{{
			Kind:            f.kind,
			TotalNodes:      f.nodes,
			Center:          [2]float64{f.centerX, f.centerY},
			Repeated:        f.repeated,
			EdgeStrategy:    f.strategy,
			AverageDistance: f.distance,
			Children:        f.children,
			MaxDepth:        f.depth,
			AngleIncrement:  f.angle,
			CellMargin:      f.margin,
		}}
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
