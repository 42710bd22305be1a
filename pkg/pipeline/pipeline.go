// Package pipeline assembles and drives a streaming scene.
//
// This package is the composition root shared by every CLI command: it turns
// a [config.Config] into a populated graph, a spatial index, a headless
// camera and surface, and a stream manager wired to all of them.
//
// # Architecture
//
// Building a scene runs three stages:
//
//  1. Generate: run each configured generator against one seeded source
//  2. Index: bucket the generated entities into chunks
//  3. Wire: create camera, surface, factory and culler, then the manager
//
// The resulting [Scene] is single-threaded. [Scene.Run] drives it frame by
// frame along a camera [Path] and serves [Request] values submitted from
// other goroutines between frames.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	scene, err := runner.Build(ctx, cfg, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	path, _ := pipeline.NewPath(pipeline.PathCircle, geom.Point{}, 2000)
//	err = scene.Run(ctx, pipeline.RunOptions{Frames: 600, Path: path})
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphstream/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultScreenWidth is the headless screen width in pixels.
	DefaultScreenWidth = 1280.0

	// DefaultScreenHeight is the headless screen height in pixels.
	DefaultScreenHeight = 720.0

	// DefaultFrames is the number of frames a scripted run lasts.
	DefaultFrames = 600

	// DefaultPathExtent is the radius of the circle path and the length of
	// the line path, in world units.
	DefaultPathExtent = 4000.0

	// DefaultHoverDistance is how far from the pointer a node may be and
	// still be hovered, in world units.
	DefaultHoverDistance = 200.0
)

// Camera path kinds.
const (
	PathCircle = "circle"
	PathLine   = "line"
	PathStill  = "still"
)

// ValidPaths is the set of supported camera path kinds.
var ValidPaths = map[string]bool{
	PathCircle: true,
	PathLine:   true,
	PathStill:  true,
}

// ValidatePath checks that a camera path kind is supported.
func ValidatePath(kind string) error {
	if !ValidPaths[kind] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid path: %q (must be one of: circle, line, still)", kind)
	}
	return nil
}

// =============================================================================
// Options
// =============================================================================

// Options configures the headless parts of a scene that are not part of the
// scene file.
type Options struct {
	ScreenWidth  float64
	ScreenHeight float64

	// Logger defaults to the runner's logger.
	Logger *log.Logger
}

// SetDefaults fills zero-valued fields.
func (o *Options) SetDefaults() {
	if o.ScreenWidth <= 0 {
		o.ScreenWidth = DefaultScreenWidth
	}
	if o.ScreenHeight <= 0 {
		o.ScreenHeight = DefaultScreenHeight
	}
}

// =============================================================================
// Statistics
// =============================================================================

// GeneratorStats describes one generator run.
type GeneratorStats struct {
	Kind     string
	Nodes    int
	Edges    int
	Duration time.Duration
}

// BuildStats contains scene construction statistics.
type BuildStats struct {
	Generators   []GeneratorStats
	NodeCount    int
	EdgeCount    int
	NodeChunks   int
	EdgeChunks   int
	GenerateTime time.Duration
	IndexTime    time.Duration
}
