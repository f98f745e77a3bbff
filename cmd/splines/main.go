// Command splines draws a sheet of random splines and writes it to a PNG file.
//
// Every tile of the sheet shows one curve through a handful of random control
// points. The same seed always produces the same image.
//
// Usage:
//
//	splines [flags]
//
// For example, a 6×4 sheet of centripetal Catmull-Rom splines:
//
//	splines -alpha 0.5 -tension 0 -points 10 -cols 6 -rows 4 -o sheet.png
//
// Colours are given as SVG colour names, such as "teal", or as hex triplets.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"honnef.co/go/spline/internal/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cfg := render.DefaultConfig()

	fs := flag.NewFlagSet("splines", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&cfg.Algorithm, "algo", "curve `algorithm`: catmull-rom or bspline")
	fs.Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "Catmull-Rom parameterization, 0 (uniform) to 1 (chordal)")
	fs.Float64Var(&cfg.Tension, "tension", cfg.Tension, "Catmull-Rom tension, 0 to 1")
	fs.IntVar(&cfg.Degree, "degree", cfg.Degree, "B-spline degree")
	fs.BoolVar(&cfg.Smooth, "smooth", cfg.Smooth, "stroke Catmull-Rom splines as Bézier curves instead of polylines")
	fs.IntVar(&cfg.Points, "points", cfg.Points, "control points per tile")
	fs.Var(&cfg.Distribution, "dist", "control point `distribution`: uniform or gaussian")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "tiles per row")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "tiles per column")
	fs.IntVar(&cfg.TileSize, "tile", cfg.TileSize, "tile size in `pixels`")
	fs.IntVar(&cfg.Slices, "slices", cfg.Slices, "samples per curve segment")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "tiles evaluated in parallel")
	fs.Var(colorValue{&cfg.Background}, "bg", "background `color`")
	fs.Var(colorValue{&cfg.Curve}, "fg", "curve `color`")
	fs.Var(colorValue{&cfg.Dots}, "dots", "control point `color`")
	out := fs.String("o", "splines.png", "output `file`")
	verbose := fs.Bool("v", false, "log every tile")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dc, err := render.Render(ctx, cfg)
	if err != nil {
		logger.Error("rendering failed", "err", err)
		return 1
	}
	defer dc.Close()

	if err := dc.SavePNG(*out); err != nil {
		logger.Error("writing image failed", "path", *out, "err", err)
		return 1
	}
	logger.Info("wrote image", "path", *out)
	return 0
}

// colorValue is a flag.Value for colours, accepting SVG colour names and hex
// triplets.
type colorValue struct {
	c *gg.RGBA
}

func (v colorValue) String() string {
	if v.c == nil {
		return ""
	}
	n := color8(v.c)
	return fmt.Sprintf("#%02x%02x%02x", n[0], n[1], n[2])
}

func (v colorValue) Set(s string) error {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		*v.c = gg.FromColor(c)
		return nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok && (len(hex) == 3 || len(hex) == 6) && isHex(hex) {
		*v.c = gg.Hex(hex)
		return nil
	}
	return fmt.Errorf("unknown color %q", s)
}

func color8(c *gg.RGBA) [3]uint8 {
	to8 := func(f float64) uint8 { return uint8(min(max(f, 0), 1)*255 + 0.5) }
	return [3]uint8{to8(c.R), to8(c.G), to8(c.B)}
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
