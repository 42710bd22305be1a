package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/graphstream/pkg/config"
	"github.com/matzehuels/graphstream/pkg/errors"
	"github.com/matzehuels/graphstream/pkg/generator"
	"github.com/matzehuels/graphstream/pkg/geom"
	"github.com/matzehuels/graphstream/pkg/graph"
	"github.com/matzehuels/graphstream/pkg/spatial"
	"github.com/matzehuels/graphstream/pkg/stream"
	"github.com/matzehuels/graphstream/pkg/surface"
	"github.com/matzehuels/graphstream/pkg/viewport"
)

// Runner builds scenes. It holds no scene state, so one Runner may build
// any number of scenes.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger selects log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Build runs the generate → index → wire stages for cfg.
func (r *Runner) Build(ctx context.Context, cfg config.Config, opts Options) (*Scene, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts.SetDefaults()
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	g := graph.New()
	idx, err := spatial.New(g, cfg.Index.ChunkSize)
	if err != nil {
		return nil, err
	}

	// Stage 1: Generate
	stats := BuildStats{}
	rng := generator.NewRand(cfg.Seed)
	genStart := time.Now()
	for i, spec := range cfg.Generators {
		if err := ctx.Err(); err != nil {
			return nil, errors.FromContext(err)
		}
		gen, err := NewGenerator(spec, generator.Base{
			Index:      idx,
			TotalNodes: spec.TotalNodes,
			Center:     geom.Pt(spec.Center[0], spec.Center[1]),
			Repeated:   spec.Repeated,
			Rand:       rng,
		})
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "generators[%d]", i)
		}
		start := time.Now()
		res := gen.Fill()
		gs := GeneratorStats{
			Kind:     gen.Name(),
			Nodes:    len(res.Nodes),
			Edges:    len(res.Edges),
			Duration: time.Since(start),
		}
		stats.Generators = append(stats.Generators, gs)
		logger.Info("generated",
			"generator", gs.Kind,
			"nodes", gs.Nodes,
			"edges", gs.Edges,
			"duration", gs.Duration)
	}
	stats.GenerateTime = time.Since(genStart)

	// Stage 2: Index
	indexStart := time.Now()
	idx.BuildChunks()
	stats.IndexTime = time.Since(indexStart)
	is := idx.Stats()
	stats.NodeCount, stats.EdgeCount = is.Nodes, is.Edges
	stats.NodeChunks, stats.EdgeChunks = is.NodeChunks, is.EdgeChunks
	logger.Info("built chunks",
		"nodes", is.Nodes,
		"edges", is.Edges,
		"chunks", is.NodeChunks,
		"duration", stats.IndexTime)

	// Stage 3: Wire
	cam := viewport.New(opts.ScreenWidth, opts.ScreenHeight)
	if len(cfg.Generators) > 0 {
		c := cfg.Generators[0].Center
		cam.MoveTo(geom.Pt(c[0], c[1]))
	}
	surf := surface.NewScene()
	factory := surface.NewFactory()
	culler := surface.NewCuller()
	mgr, err := stream.New(stream.Scene{
		Index:    idx,
		Viewport: cam,
		Surface:  surf,
		Factory:  factory,
		Culler:   culler,
	}, cfg.StreamConfig(), logger)
	if err != nil {
		return nil, err
	}
	cam.OnMoved(mgr.Moved)

	s := &Scene{
		ID:         uuid.New(),
		Config:     cfg,
		Graph:      g,
		Index:      idx,
		Camera:     cam,
		Surface:    surf,
		Factory:    factory,
		Culler:     culler,
		Manager:    mgr,
		BuildStats: stats,
		logger:     logger,
	}
	logger.Debug("scene ready", "id", s.ID)
	return s, nil
}

// NewGenerator creates the generator described by spec. The budget, center
// and random source come from base.
func NewGenerator(spec config.GeneratorSpec, base generator.Base) (generator.Generator, error) {
	var strategy generator.EdgeStrategy
	if spec.EdgeStrategy != "" {
		s, err := generator.ParseEdgeStrategy(spec.EdgeStrategy)
		if err != nil {
			return nil, err
		}
		strategy = s
	}
	prox := spec.ProximityOverride()

	switch spec.Kind {
	case config.KindCircle:
		return generator.NewCircular(base, generator.CircularOptions{
			AverageDistance:   spec.AverageDistance,
			ChildrenCount:     spec.Children,
			MaxDepth:          spec.MaxDepth,
			EdgeStrategy:      strategy,
			RandomProbability: spec.RandomProbability,
			Proximity:         prox,
		})
	case config.KindSpiral:
		return generator.NewSpiral(base, generator.SpiralOptions{
			AverageDistance: spec.AverageDistance,
			ChildrenCount:   spec.Children,
			AngleIncrement:  spec.AngleIncrement,
			EdgeStrategy:    strategy,
			Proximity:       prox,
		})
	case config.KindWeb:
		return generator.NewWeb(base, generator.WebOptions{
			CellMargin: spec.CellMargin,
			Proximity:  prox,
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidGenerator, "unknown generator kind %q", spec.Kind)
	}
}
