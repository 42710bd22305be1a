package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/matzehuels/graphstream/pkg/observability"
)

func TestRecorder_Stream(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.OnMaterialize(100, 40, time.Millisecond)
	r.OnMaterialize(5, 0, time.Millisecond)
	r.OnEvict(3, 7, time.Millisecond)
	r.OnFrame(102, 33, 8, 9)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"materialized nodes", testutil.ToFloat64(r.Materialized.WithLabelValues("node")), 105},
		{"materialized edges", testutil.ToFloat64(r.Materialized.WithLabelValues("edge")), 40},
		{"evicted edges", testutil.ToFloat64(r.Evicted.WithLabelValues("edge")), 7},
		{"live nodes", testutil.ToFloat64(r.Live.WithLabelValues("node")), 102},
		{"pending edges", testutil.ToFloat64(r.Pending.WithLabelValues("edge")), 9},
		{"frames", testutil.ToFloat64(r.Frames), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRecorder_GeneratorAndIndex(t *testing.T) {
	r := New(prometheus.NewRegistry())
	r.OnGenerate("web", 25, 60, time.Second)
	r.OnBuild(25, 60, 9, time.Millisecond)

	if got := testutil.ToFloat64(r.Generated.WithLabelValues("web", "edge")); got != 60 {
		t.Errorf("generated edges = %v, want 60", got)
	}
	if got := testutil.ToFloat64(r.IndexChunks); got != 9 {
		t.Errorf("chunks = %v, want 9", got)
	}
	if got := testutil.ToFloat64(r.IndexBuilds); got != 1 {
		t.Errorf("builds = %v, want 1", got)
	}
}

func TestRecorder_Register(t *testing.T) {
	t.Cleanup(observability.Reset)
	r := New(prometheus.NewRegistry())
	r.Register()
	if observability.Stream() != observability.StreamHooks(r) {
		t.Error("stream hooks not registered")
	}
	observability.Stream().OnEnqueue(4, 2, 0)
	if got := testutil.ToFloat64(r.Enqueued.WithLabelValues("node")); got != 4 {
		t.Errorf("enqueued nodes = %v, want 4", got)
	}
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	New(reg)
}
