package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/graphstream/internal/server"
	"github.com/matzehuels/graphstream/pkg/errors"
	"github.com/matzehuels/graphstream/pkg/geom"
	"github.com/matzehuels/graphstream/pkg/observability"
	"github.com/matzehuels/graphstream/pkg/observability/metrics"
	"github.com/matzehuels/graphstream/pkg/pipeline"
)

// listenInterval paces frames while serving HTTP, roughly 60 per second.
const listenInterval = 16 * time.Millisecond

type simulateOptions struct {
	scene       sceneFlags
	frames      int
	path        string
	extent      float64
	interval    time.Duration
	svg         string
	listen      string
	reportEvery int
}

// simulateCommand creates the simulate command for driving a scene along a
// scripted camera path.
func (c *CLI) simulateCommand() *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Stream a scene headlessly along a camera path",
		Long: `Simulate builds a scene and ticks the streaming manager while the camera
follows a scripted path. With --listen it also serves /stats, /snapshot.svg
and /metrics and keeps running until interrupted unless --frames is set.

Examples:
  graphstream simulate --frames 1200 --path circle --extent 5000
  graphstream simulate --kind web --nodes 20000 --svg live.svg
  graphstream simulate --listen :8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidatePath(opts.path); err != nil {
				return err
			}
			if opts.svg != "" {
				if err := errors.ValidateOutputPath(opts.svg); err != nil {
					return err
				}
			}
			if opts.listen != "" && !cmd.Flags().Changed("frames") {
				opts.frames = 0
			}
			if opts.listen != "" && !cmd.Flags().Changed("interval") {
				opts.interval = listenInterval
			}
			return c.runSimulate(cmd.Context(), cmd, opts)
		},
	}

	opts.scene.register(cmd)
	cmd.Flags().IntVar(&opts.frames, "frames", pipeline.DefaultFrames, "frames to simulate (0: until interrupted)")
	cmd.Flags().StringVar(&opts.path, "path", pipeline.PathCircle, "camera path: circle, line or still")
	cmd.Flags().Float64Var(&opts.extent, "extent", pipeline.DefaultPathExtent, "circle radius or line length")
	cmd.Flags().DurationVar(&opts.interval, "interval", 0, "time between frames (0: as fast as possible)")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "write an SVG snapshot of the live set to this file")
	cmd.Flags().StringVar(&opts.listen, "listen", "", "serve stats and metrics on this address")
	cmd.Flags().IntVar(&opts.reportEvery, "report-every", 120, "log streaming stats every n frames (debug level)")

	return cmd
}

func (c *CLI) runSimulate(ctx context.Context, cmd *cobra.Command, opts simulateOptions) error {
	cfg, err := opts.scene.load(cmd)
	if err != nil {
		return err
	}

	var srv *server.Server
	if opts.listen != "" {
		reg := prometheus.NewRegistry()
		metrics.New(reg).Register()
		defer observability.Reset()
		srv = server.New(reg, c.Logger)
	}

	prog := newProgress(c.Logger)
	scene, err := c.newRunner().Build(ctx, cfg, pipeline.Options{})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Built scene with %d nodes", scene.Graph.NodeCount()))

	path, err := pipeline.NewPath(opts.path, scene.Camera.Center(), opts.extent)
	if err != nil {
		return err
	}
	runOpts := pipeline.RunOptions{
		Frames:   opts.frames,
		Path:     path,
		Interval: opts.interval,
	}
	if opts.reportEvery > 0 {
		runOpts.OnFrame = func(frame int, snap pipeline.Snapshot) {
			if frame%opts.reportEvery == 0 {
				c.Logger.Debug("frame",
					"frame", snap.Frame,
					"live_nodes", snap.LiveNodes,
					"live_edges", snap.LiveEdges,
					"pending_nodes", snap.PendingNodes,
					"pending_edges", snap.PendingEdges,
					"visible", snap.Visible)
			}
		}
	}

	prog = newProgress(c.Logger)
	if srv == nil {
		err = scene.Run(ctx, runOpts)
	} else {
		runOpts.Requests = srv.Requests()
		printInfo(cmd.OutOrStdout(), "Serving stats and metrics on %s", opts.listen)
		err = runWithServer(ctx, scene, runOpts, srv, opts.listen)
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Simulated %d frames", scene.Manager.Frame()))

	out := cmd.OutOrStdout()
	printSimulateSummary(out, scene.Snapshot())
	if opts.svg != "" {
		if err := os.WriteFile(opts.svg, scene.SVG(), 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", opts.svg)
		}
		printFile(out, opts.svg)
	}
	return nil
}

// runWithServer runs the frame loop and the HTTP server side by side. The
// server stops when the frame loop finishes.
func runWithServer(ctx context.Context, scene *pipeline.Scene, opts pipeline.RunOptions, srv *server.Server, addr string) error {
	g, gctx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(gctx)
	defer stop()

	g.Go(func() error {
		defer stop()
		return scene.Run(runCtx, opts)
	})
	g.Go(func() error {
		return srv.ListenAndServe(runCtx, addr)
	})
	return g.Wait()
}

func printSimulateSummary(w io.Writer, snap pipeline.Snapshot) {
	printSuccess(w, "Scene %s", snap.ID)
	printKeyValue(w, "frames", strconv.FormatUint(snap.Frame, 10))
	printKeyValue(w, "live nodes", fmt.Sprintf("%d / %d", snap.LiveNodes, snap.Nodes))
	printKeyValue(w, "live edges", fmt.Sprintf("%d / %d", snap.LiveEdges, snap.Edges))
	printKeyValue(w, "pending", fmt.Sprintf("%d nodes, %d edges", snap.PendingNodes, snap.PendingEdges))
	printKeyValue(w, "visible", strconv.Itoa(snap.Visible))
	dist := "unbounded"
	if snap.MaxDistance != nil {
		dist = strconv.FormatFloat(*snap.MaxDistance, 'f', 0, 64)
	}
	printKeyValue(w, "evict beyond", dist)
	printKeyValue(w, "camera", formatPoint(snap.Center))
}

func formatPoint(p geom.Point) string {
	return fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y)
}
