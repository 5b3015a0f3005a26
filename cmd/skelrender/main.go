// Command skelrender renders pen trajectory files into skeleton masks and
// blurred visualizations.
//
// Usage:
//
//	skelrender [flags] file...
//
// For every input it writes <name>_mask.<ext> and <name>_blur.<ext>.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/skeleton"
	"github.com/gogpu/skeleton/internal/config"
	"github.com/gogpu/skeleton/internal/imageio"
	"github.com/gogpu/skeleton/internal/penio"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("skelrender", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML config file")
		width      = fs.Int("width", 0, "canvas width (0 derives it)")
		height     = fs.Int("height", 0, "canvas height (0 derives it)")
		padding    = fs.Int("padding", skeleton.DefaultPadding, "margin around a fitted drawing")
		radius     = fs.Float64("radius", skeleton.DefaultBlurRadius, "blur radius")
		scale      = fs.Float64("scale", 1, "output scale factor")
		format     = fs.String("format", "png", "output format: png, bmp or tiff")
		workers    = fs.Int("workers", 0, "files rendered in parallel (0 uses the config)")
		verbose    = fs.Bool("v", false, "debug logging")
		outDir     = fs.String("out", "", "output directory (default: next to each input)")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: skelrender [flags] file...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err == nil {
		err = cfg.ApplyEnv()
	}
	if err != nil {
		fmt.Fprintf(stderr, "skelrender: %v\n", err)
		return 1
	}

	// Explicit flags win over the file and the environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "padding":
			cfg.Padding = *padding
		case "radius":
			cfg.BlurRadius = *radius
		case "scale":
			cfg.Scale = *scale
		case "format":
			cfg.Format = *format
		case "workers":
			if *workers > 0 {
				cfg.Workers = *workers
			}
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "skelrender: %v\n", err)
		return 1
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	skeleton.SetLogger(logger)
	defer skeleton.SetLogger(nil)

	if err := renderAll(context.Background(), cfg, fs.Args(), *outDir, logger); err != nil {
		logger.Error("render failed", "err", err)
		return 1
	}
	return 0
}

func renderAll(ctx context.Context, cfg *config.Config, inputs []string, outDir string, logger *slog.Logger) error {
	if err := checkOutputs(inputs, outDir, cfg.OutputFormat()); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for _, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return renderFile(cfg, in, outDir, logger)
		})
	}
	return g.Wait()
}

func renderFile(cfg *config.Config, in, outDir string, logger *slog.Logger) error {
	traj, err := penio.ReadFile(in)
	if err != nil {
		return err
	}

	res, err := skeleton.Render(traj, cfg.Options()...)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	maskPath, blurPath := outputPaths(in, outDir, cfg.OutputFormat())
	outputs := []struct {
		path string
		img  image.Image
	}{
		{maskPath, res.Mask},
		{blurPath, res.Blurred},
	}
	for _, out := range outputs {
		if err := imageio.WriteFile(out.path, imageio.Scale(out.img, cfg.Scale)); err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
	}

	logger.Info("rendered",
		"input", in,
		"positions", len(traj),
		"size", fmt.Sprintf("%dx%d", res.Size.X, res.Size.Y),
		"mask", maskPath,
		"blur", blurPath)
	return nil
}

// checkOutputs fails when two inputs would write the same output file,
// such as x.json and x.csv, or a/x.json and b/x.json with one -out.
func checkOutputs(inputs []string, outDir string, f imageio.Format) error {
	owner := make(map[string]string, 2*len(inputs))
	for _, in := range inputs {
		mask, blur := outputPaths(in, outDir, f)
		for _, out := range []string{mask, blur} {
			out = filepath.Clean(out)
			if prev, ok := owner[out]; ok {
				return fmt.Errorf("%s and %s both write %s", prev, in, out)
			}
			owner[out] = in
		}
	}
	return nil
}

func outputPaths(in, outDir string, f imageio.Format) (mask, blur string) {
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(in)
	}
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	return filepath.Join(dir, base+"_mask"+f.Ext()), filepath.Join(dir, base+"_blur"+f.Ext())
}
