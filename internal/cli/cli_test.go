package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/graphstream/pkg/config"
	"github.com/matzehuels/graphstream/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestConfigCommand_FlagsOverride(t *testing.T) {
	out, err := execute(t, "config", "--kind", "spiral", "--nodes", "40", "--children", "4", "--seed", "9", "--max-live", "300")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg, err := config.Parse(out)
	if err != nil {
		t.Fatalf("output is not a valid config: %v\n%s", err, out)
	}
	if cfg.Seed != 9 || cfg.Stream.MaxLive != 300 {
		t.Errorf("seed/max_live = %d/%d", cfg.Seed, cfg.Stream.MaxLive)
	}
	if len(cfg.Generators) != 1 {
		t.Fatalf("got %d generators, want 1", len(cfg.Generators))
	}
	g := cfg.Generators[0]
	if g.Kind != config.KindSpiral || g.TotalNodes != 40 || g.Children != 4 || g.EdgeStrategy != "tree" {
		t.Errorf("generator = %+v", g)
	}
}

func TestConfigCommand_SeedZero(t *testing.T) {
	out, err := execute(t, "config", "--seed", "0")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg, err := config.Parse(out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Seed != 0 {
		t.Errorf("seed = %d, want 0", cfg.Seed)
	}
}

func TestConfigCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	doc := "seed = 5\n\n[[generators]]\nkind = \"web\"\ntotal_nodes = 10\ncell_margin = 30.0\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "config", "--config", path, "--chunk-size", "123")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg, err := config.Parse(out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Seed != 5 || cfg.Index.ChunkSize != 123 || cfg.Generators[0].Kind != config.KindWeb {
		t.Errorf("config = %+v", cfg)
	}
}

func TestConfigCommand_Invalid(t *testing.T) {
	_, err := execute(t, "config", "--kind", "torus")
	if !errors.Is(err, errors.ErrCodeInvalidGenerator) {
		t.Errorf("err = %v, want INVALID_GENERATOR", err)
	}
}

func TestGenerateCommand(t *testing.T) {
	out, err := execute(t, "generate", "--kind", "web", "--nodes", "30", "--margin", "40")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, want := range []string{"Scene ", "web", "30", "30 nodes"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimulateCommand_WritesSVG(t *testing.T) {
	svg := filepath.Join(t.TempDir(), "live.svg")
	out, err := execute(t, "simulate", "--kind", "web", "--nodes", "30", "--margin", "40",
		"--frames", "61", "--path", "still", "--svg", svg)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if !strings.Contains(out, "frames") || !strings.Contains(out, "61") {
		t.Errorf("summary missing frame count:\n%s", out)
	}
	data, err := os.ReadFile(svg)
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("<svg")) {
		t.Errorf("svg = %.40q", data)
	}
}

func TestSimulateCommand_InvalidPath(t *testing.T) {
	_, err := execute(t, "simulate", "--path", "zigzag")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "graphstream") {
		t.Error("bash completion does not mention graphstream")
	}
}
