package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/graphstream/pkg/buildinfo"
	"github.com/matzehuels/graphstream/pkg/config"
	"github.com/matzehuels/graphstream/pkg/errors"
	"github.com/matzehuels/graphstream/pkg/observability/metrics"
	"github.com/matzehuels/graphstream/pkg/pipeline"
)

func startScene(t *testing.T, srv *Server) *pipeline.Scene {
	t.Helper()
	cfg := config.Default()
	cfg.Generators = []config.GeneratorSpec{{Kind: config.KindWeb, TotalNodes: 36, CellMargin: 40}}

	logger := log.New(io.Discard)
	sc, err := pipeline.NewRunner(logger).Build(context.Background(), cfg, pipeline.Options{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = sc.Run(ctx, pipeline.RunOptions{Interval: time.Millisecond, Requests: srv.Requests()})
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return sc
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return resp, string(body)
}

func TestServer_Stats(t *testing.T) {
	srv := New(prometheus.NewRegistry(), log.New(io.Discard))
	sc := startScene(t, srv)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, body := get(t, ts, "/stats")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	var snap pipeline.Snapshot
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		t.Fatalf("decode: %v\n%s", err, body)
	}
	if snap.ID != sc.ID.String() || snap.Nodes != 36 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestServer_Snapshot(t *testing.T) {
	srv := New(prometheus.NewRegistry(), log.New(io.Discard))
	startScene(t, srv)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, body := get(t, ts, "/snapshot.svg")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(body, "<svg") {
		t.Errorf("body does not start with <svg: %.40q", body)
	}
}

func TestServer_MetricsAndVersion(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	rec.OnFrame(3, 2, 1, 0)

	srv := New(reg, log.New(io.Discard))
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	_, body := get(t, ts, "/metrics")
	if !strings.Contains(body, "graphstream_stream_frames_total 1") {
		t.Errorf("metrics missing frame counter:\n%s", body)
	}

	_, body = get(t, ts, "/version")
	var info buildinfo.Info
	if err := json.Unmarshal([]byte(body), &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info != buildinfo.Get() {
		t.Errorf("version = %+v, want %+v", info, buildinfo.Get())
	}
}

func TestServer_NoFrameLoop(t *testing.T) {
	srv := New(prometheus.NewRegistry(), log.New(io.Discard))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/stats", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if body := rec.Body.String(); !strings.Contains(body, string(errors.ErrCodeTimeout)) {
		t.Errorf("body = %q, want the TIMEOUT code", body)
	}
}

func TestServer_ListenAndServeStops(t *testing.T) {
	srv := New(prometheus.NewRegistry(), log.New(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe(ctx, "127.0.0.1:0") }()
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("ListenAndServe() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not return after cancel")
	}
}
