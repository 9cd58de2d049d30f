// forceviz is an interactive force-directed graph visualizer. It lays an
// undirected graph out with a charge-and-spring simulation and lets the
// user pan, zoom, rotate, and drag vertices, either in a native window or
// from a browser in serve mode.
package main

import (
	"errors"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/forceviz/forceviz/config"
	"github.com/forceviz/forceviz/host"
	"github.com/forceviz/forceviz/ingest"
	"github.com/forceviz/forceviz/input"
	"github.com/forceviz/forceviz/logging"
	"github.com/forceviz/forceviz/physics"
	"github.com/forceviz/forceviz/render"
	"github.com/forceviz/forceviz/server"
)

func main() {
	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	cfg, err := config.Load(flags)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Verbose)

	edges, err := loadEdges(cfg.DataFile)
	if err != nil {
		slog.Error("failed to load edge list", "error", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	switch {
	case cfg.Serve:
		err = serve(cfg, edges)
	case cfg.OutputFile != "":
		err = snapshot(cfg, edges, seed)
	default:
		err = window(cfg, edges, seed)
	}
	if err != nil {
		slog.Error("session failed", "error", err)
		os.Exit(1)
	}
}

// loadEdges reads the construction edge list, falling back to the
// built-in sample when no data file is given.
func loadEdges(path string) (ingest.EdgeList, error) {
	if path == "" {
		return ingest.Sample(), nil
	}
	processor, err := ingest.ForExtension(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("loading edge list", "file", path, "format", processor.Name())
	return processor.Process(data)
}

func buildLayout(cfg *config.Config, seed int64) physics.Layout {
	var layout physics.Layout = &physics.ForceDirected{
		Charge:    cfg.Charge,
		Stiffness: cfg.Stiffness,
	}
	if cfg.Noise > 0 {
		layout = physics.NewNoise(layout, seed, cfg.Noise)
	}
	return layout
}

// window runs the native ebiten host.
func window(cfg *config.Config, edges ingest.EdgeList, seed int64) error {
	sc, err := ingest.Build(edges, cfg.Width, cfg.Height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	slog.Info("scene constructed",
		"vertices", sc.Graph.Order(), "edges", len(sc.Graph.Edges()), "seed", seed)

	game := host.New(sc,
		&input.Controller{VertexRadius: cfg.VertexRadius},
		buildLayout(cfg, seed),
		host.Options{
			Width:        int(cfg.Width),
			Height:       int(cfg.Height),
			TPS:          cfg.TPS,
			Title:        cfg.Title,
			VertexRadius: cfg.VertexRadius,
		})
	return game.Run()
}

// serve runs the browser canvas host.
func serve(cfg *config.Config, edges ingest.EdgeList) error {
	return server.New(server.Options{
		Port:         cfg.Port,
		TPS:          cfg.TPS,
		Width:        cfg.Width,
		Height:       cfg.Height,
		VertexRadius: cfg.VertexRadius,
		Charge:       cfg.Charge,
		Stiffness:    cfg.Stiffness,
		Noise:        cfg.Noise,
		Seed:         cfg.Seed,
		Edges:        edges,
	}).Start()
}

// settleTicks is how many simulation steps a snapshot run performs
// before exporting.
const settleTicks = 300

// snapshot runs the layout headless for a fixed settle period, exports
// the resulting frame, and exits.
func snapshot(cfg *config.Config, edges ingest.EdgeList, seed int64) error {
	sc, err := ingest.Build(edges, cfg.Width, cfg.Height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	layout := buildLayout(cfg, seed)
	dt := 1.0 / float64(cfg.TPS)
	for i := 0; i < settleTicks; i++ {
		layout.Tick(sc, dt)
	}

	frame, err := render.Compose(sc, cfg.VertexRadius)
	if err != nil {
		return err
	}

	format := strings.TrimPrefix(filepath.Ext(cfg.OutputFile), ".")
	exporter, err := render.GetExporter(format)
	if err != nil {
		return err
	}
	if svg, ok := exporter.(*render.SVGExporter); ok {
		svg.Width, svg.Height = cfg.Width, cfg.Height
	}
	out, err := exporter.Export(frame)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.OutputFile, out, 0o644); err != nil {
		return err
	}
	slog.Info("snapshot written", "file", cfg.OutputFile, "format", exporter.Name())
	return nil
}
