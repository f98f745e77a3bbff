package render

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gogpu/gg"
)

// ErrInvalidConfig is wrapped by every error returned from [Config.Validate].
var ErrInvalidConfig = errors.New("render: invalid configuration")

// Algorithm selects the curve evaluated for each tile. It implements
// flag.Value.
type Algorithm int

const (
	CatmullRom Algorithm = iota
	BSpline
)

func (a Algorithm) String() string {
	switch a {
	case CatmullRom:
		return "catmull-rom"
	case BSpline:
		return "bspline"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

func (a *Algorithm) Set(s string) error {
	switch s {
	case "catmull-rom", "catmullrom", "cr":
		*a = CatmullRom
	case "bspline", "b-spline", "deboor":
		*a = BSpline
	default:
		return fmt.Errorf("unknown algorithm %q", s)
	}
	return nil
}

// Distribution selects how control points are sampled. It implements
// flag.Value.
type Distribution int

const (
	// Uniform draws points from the unit square.
	Uniform Distribution = iota
	// Gaussian draws points around the centre of the unit square.
	Gaussian
)

func (d Distribution) String() string {
	switch d {
	case Uniform:
		return "uniform"
	case Gaussian:
		return "gaussian"
	default:
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
}

func (d *Distribution) Set(s string) error {
	switch s {
	case "uniform":
		*d = Uniform
	case "gaussian", "normal":
		*d = Gaussian
	default:
		return fmt.Errorf("unknown distribution %q", s)
	}
	return nil
}

// Config describes an image made of Cols×Rows tiles, each showing one random
// spline and its control points.
//
// Curves are computed in the unit square and mapped onto a tile of TileSize
// pixels, shrunk by Scale and centred. LineWidth and DotRadius are in the same
// unit-square coordinates.
type Config struct {
	Algorithm Algorithm
	// Alpha and Tension control Catmull-Rom splines, both in [0, 1].
	Alpha   float64
	Tension float64
	// Degree is the degree of B-splines.
	Degree int
	// Smooth strokes Catmull-Rom splines as cubic Béziers instead of
	// polylines.
	Smooth bool

	// Points is the number of control points per tile.
	Points       int
	Distribution Distribution
	Seed         uint64

	Cols, Rows int
	TileSize   int
	// Slices is the number of samples per curve segment.
	Slices int

	Scale      float64
	LineWidth  float64
	DotRadius  float64
	Background gg.RGBA
	Curve      gg.RGBA
	Dots       gg.RGBA

	// Workers bounds the number of tiles evaluated concurrently.
	Workers int
}

// DefaultConfig returns the configuration of a 4×4 sheet of centripetal
// Catmull-Rom splines, light gray on dark gray with teal control points.
func DefaultConfig() Config {
	return Config{
		Algorithm:    CatmullRom,
		Alpha:        0.5,
		Tension:      0.5,
		Degree:       3,
		Points:       8,
		Distribution: Uniform,
		Cols:         4,
		Rows:         4,
		TileSize:     256,
		Slices:       100,
		Scale:        0.65,
		LineWidth:    0.01,
		DotRadius:    0.025,
		Background:   gg.RGB(0.15, 0.15, 0.15),
		Curve:        gg.RGB(0.95, 0.95, 0.95),
		Dots:         gg.RGB(0.17, 0.82, 0.76),
		Workers:      runtime.GOMAXPROCS(0),
	}
}

// Validate reports the first problem with cfg, if any.
func (cfg Config) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
	}
	switch {
	case !(cfg.Alpha >= 0 && cfg.Alpha <= 1):
		return bad("alpha %v outside of [0, 1]", cfg.Alpha)
	case !(cfg.Tension >= 0 && cfg.Tension <= 1):
		return bad("tension %v outside of [0, 1]", cfg.Tension)
	case cfg.Algorithm != CatmullRom && cfg.Algorithm != BSpline:
		return bad("unknown algorithm %v", cfg.Algorithm)
	case cfg.Distribution != Uniform && cfg.Distribution != Gaussian:
		return bad("unknown distribution %v", cfg.Distribution)
	case cfg.Degree < 0:
		return bad("negative degree %d", cfg.Degree)
	case cfg.Algorithm == CatmullRom && cfg.Points < 4:
		return bad("Catmull-Rom splines need at least 4 points, have %d", cfg.Points)
	case cfg.Algorithm == BSpline && cfg.Points < cfg.Degree+1:
		return bad("B-splines of degree %d need at least %d points, have %d", cfg.Degree, cfg.Degree+1, cfg.Points)
	case cfg.Slices <= 0:
		return bad("resolution %d isn't positive", cfg.Slices)
	case cfg.Cols <= 0 || cfg.Rows <= 0:
		return bad("%d×%d tiles", cfg.Cols, cfg.Rows)
	case cfg.TileSize <= 0:
		return bad("tile size %d isn't positive", cfg.TileSize)
	case !(cfg.Scale > 0):
		return bad("scale %v isn't positive", cfg.Scale)
	case cfg.LineWidth < 0 || cfg.DotRadius < 0:
		return bad("negative line width or dot radius")
	case cfg.Workers <= 0:
		return bad("%d workers", cfg.Workers)
	}
	return nil
}

// bsplineResolution returns the number of intervals a B-spline tile is
// sampled at, Slices for every knot span in the spline's domain.
func (cfg Config) bsplineResolution() int {
	return cfg.Slices * (cfg.Points - cfg.Degree)
}
