// Package metrics implements the observability hooks with Prometheus
// collectors.
//
// All collectors are registered on the registerer passed to [New], so tests
// and embedded uses can keep them off the global default registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/graphstream/pkg/observability"
)

const namespace = "graphstream"

var passBuckets = []float64{0.00001, 0.0001, 0.001, 0.01, 0.1}

// Recorder holds the Prometheus collectors for generation, indexing and
// streaming. It implements observability.GeneratorHooks, IndexHooks and
// StreamHooks.
type Recorder struct {
	Generated        *prometheus.CounterVec
	GenerateDuration *prometheus.HistogramVec

	IndexBuilds   prometheus.Counter
	IndexChunks   prometheus.Gauge
	QueryChunks   prometheus.Histogram
	BuildDuration prometheus.Histogram

	Evicted      *prometheus.CounterVec
	Enqueued     *prometheus.CounterVec
	Materialized *prometheus.CounterVec
	PassDuration *prometheus.HistogramVec
	Live         *prometheus.GaugeVec
	Pending      *prometheus.GaugeVec
	Frames       prometheus.Counter
}

var (
	_ observability.GeneratorHooks = (*Recorder)(nil)
	_ observability.IndexHooks     = (*Recorder)(nil)
	_ observability.StreamHooks    = (*Recorder)(nil)
)

// New creates a Recorder and registers its collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		Generated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_entities_total",
			Help:      "Entities created by procedural generators",
		}, []string{"generator", "kind"}),
		GenerateDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generate_duration_seconds",
			Help:      "Time spent filling the graph per generator",
			Buckets:   prometheus.DefBuckets,
		}, []string{"generator"}),

		IndexBuilds: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_builds_total",
			Help:      "Spatial index chunk builds",
		}),
		IndexChunks: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "index_chunks",
			Help:      "Non-empty chunks in the spatial index",
		}),
		QueryChunks: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "index_query_chunks",
			Help:      "Chunks visited per proximity query",
			Buckets:   []float64{1, 4, 16, 64, 256, 1024},
		}),
		BuildDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "index_build_duration_seconds",
			Help:      "Time to bucket entities into chunks",
			Buckets:   passBuckets,
		}),

		Evicted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_evicted_total",
			Help:      "Visuals removed by eviction passes",
		}, []string{"kind"}),
		Enqueued: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_enqueued_total",
			Help:      "Entities queued for materialization",
		}, []string{"kind"}),
		Materialized: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_materialized_total",
			Help:      "Visuals created by batch materialization",
		}, []string{"kind"}),
		PassDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stream_pass_duration_seconds",
			Help:      "Time to execute a streaming pass",
			Buckets:   passBuckets,
		}, []string{"pass"}),
		Live: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stream_live",
			Help:      "Visuals currently on the surface",
		}, []string{"kind"}),
		Pending: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stream_pending",
			Help:      "Entities waiting in the materialization queues",
		}, []string{"kind"}),
		Frames: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_frames_total",
			Help:      "Frames ticked by the streaming manager",
		}),
	}
}

// Register installs r as the generator, index and stream hooks.
func (r *Recorder) Register() {
	observability.SetGeneratorHooks(r)
	observability.SetIndexHooks(r)
	observability.SetStreamHooks(r)
}

func (r *Recorder) OnGenerate(kind string, nodes, edges int, d time.Duration) {
	r.Generated.WithLabelValues(kind, "node").Add(float64(nodes))
	r.Generated.WithLabelValues(kind, "edge").Add(float64(edges))
	r.GenerateDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (r *Recorder) OnBuild(_, _, chunks int, d time.Duration) {
	r.IndexBuilds.Inc()
	r.IndexChunks.Set(float64(chunks))
	r.BuildDuration.Observe(d.Seconds())
}

func (r *Recorder) OnQuery(chunks, _, _ int) {
	r.QueryChunks.Observe(float64(chunks))
}

func (r *Recorder) OnEvict(nodes, edges int, d time.Duration) {
	r.pass(r.Evicted, "evict", nodes, edges, d)
}

func (r *Recorder) OnEnqueue(nodes, edges int, d time.Duration) {
	r.pass(r.Enqueued, "enqueue", nodes, edges, d)
}

func (r *Recorder) OnMaterialize(nodes, edges int, d time.Duration) {
	r.pass(r.Materialized, "materialize", nodes, edges, d)
}

func (r *Recorder) OnFrame(liveNodes, liveEdges, pendingNodes, pendingEdges int) {
	r.Frames.Inc()
	r.Live.WithLabelValues("node").Set(float64(liveNodes))
	r.Live.WithLabelValues("edge").Set(float64(liveEdges))
	r.Pending.WithLabelValues("node").Set(float64(pendingNodes))
	r.Pending.WithLabelValues("edge").Set(float64(pendingEdges))
}

func (r *Recorder) pass(c *prometheus.CounterVec, name string, nodes, edges int, d time.Duration) {
	c.WithLabelValues("node").Add(float64(nodes))
	c.WithLabelValues("edge").Add(float64(edges))
	r.PassDuration.WithLabelValues(name).Observe(d.Seconds())
}
