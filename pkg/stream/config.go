package stream

import (
	"github.com/matzehuels/graphstream/pkg/errors"
)

// Default streaming parameters.
const (
	// DefaultRenderDistance is the query radius in chunks.
	DefaultRenderDistance = 8.0

	// DefaultBatchSize is the number of nodes and of edges materialized per
	// batch.
	DefaultBatchSize = 100

	// DefaultEvictEvery is the eviction period in frames.
	DefaultEvictEvery = 120

	// DefaultEnqueueEvery is the enqueue period in frames.
	DefaultEnqueueEvery = 60

	// DefaultMaterializeEvery is the materialization period in frames.
	DefaultMaterializeEvery = 20
)

// Config holds the streaming parameters. Zero values select the defaults.
type Config struct {
	// RenderDistance is the index query radius in chunks. It also scales the
	// eviction distance.
	RenderDistance float64
	// BatchSize caps nodes and edges materialized per batch.
	BatchSize int
	// MaxLive caps live nodes plus edges. Zero means unlimited.
	MaxLive int

	EvictEvery       int
	EnqueueEvery     int
	MaterializeEvery int
}

func (c Config) withDefaults() Config {
	if c.RenderDistance == 0 {
		c.RenderDistance = DefaultRenderDistance
	}
	if c.BatchSize == 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.EvictEvery == 0 {
		c.EvictEvery = DefaultEvictEvery
	}
	if c.EnqueueEvery == 0 {
		c.EnqueueEvery = DefaultEnqueueEvery
	}
	if c.MaterializeEvery == 0 {
		c.MaterializeEvery = DefaultMaterializeEvery
	}
	return c
}

// Validate checks the configuration after defaults are applied.
func (c Config) Validate() error {
	c = c.withDefaults()
	if err := errors.ValidatePositive("stream.render_distance", c.RenderDistance); err != nil {
		return err
	}
	checks := []struct {
		field string
		v     int
		least int
	}{
		{"stream.batch_size", c.BatchSize, 1},
		{"stream.max_live", c.MaxLive, 0},
		{"stream.evict_every", c.EvictEvery, 1},
		{"stream.enqueue_every", c.EnqueueEvery, 1},
		{"stream.materialize_every", c.MaterializeEvery, 1},
	}
	for _, chk := range checks {
		if err := errors.ValidateCount(chk.field, chk.v, chk.least); err != nil {
			return err
		}
	}
	return nil
}
