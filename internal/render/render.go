// Package render draws sheets of random splines with gogpu/gg.
//
// Rendering happens in two phases. First, every tile gets its control points
// from a single seeded source and its curve is evaluated on a pool of
// workers; the tiles are independent and share nothing but read-only
// parameter tables. Then the tiles are drawn one after another onto a single
// canvas.
package render

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/gogpu/gg"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/spline"
	"honnef.co/go/spline/internal/sample"
)

// Tile is one cell of the sheet.
type Tile struct {
	Col, Row int
	// Points are the control points, in unit-square coordinates.
	Points []spline.Point
	// Curve is the sampled curve. It is empty if Segments is used instead.
	Curve []spline.Point
	// Segments holds the curve as cubic Béziers when Config.Smooth is set.
	Segments []spline.CubicBez
}

// Path returns the tile's curve as a path in unit-square coordinates.
func (t Tile) Path() spline.BezPath {
	if len(t.Segments) > 0 {
		return spline.CubicPath(slices.Values(t.Segments))
	}
	return spline.PolylinePath(t.Curve)
}

// Render validates cfg, computes all tiles and draws them onto a new canvas of
// Cols×TileSize by Rows×TileSize pixels.
func Render(ctx context.Context, cfg Config) (*gg.Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	tiles, err := Tiles(ctx, cfg)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(cfg.Cols*cfg.TileSize, cfg.Rows*cfg.TileSize)
	if err := Draw(dc, cfg, tiles); err != nil {
		_ = dc.Close()
		return nil, err
	}
	Logger().Info("rendered",
		"algorithm", cfg.Algorithm,
		"tiles", len(tiles),
		"width", dc.Width(),
		"height", dc.Height(),
		"elapsed", time.Since(start))
	return dc, nil
}

// Tiles samples the control points of every tile and evaluates their curves.
// Tiles are ordered column by column. For a given configuration the result
// doesn't depend on the number of workers.
func Tiles(ctx context.Context, cfg Config) ([]Tile, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := sample.New(cfg.Seed)
	tiles := make([]Tile, 0, cfg.Cols*cfg.Rows)
	for col := range cfg.Cols {
		for row := range cfg.Rows {
			var points []spline.Point
			switch cfg.Distribution {
			case Uniform:
				points = sample.Uniform(r, cfg.Points)
			case Gaussian:
				points = sample.Gaussian(r, cfg.Points, spline.Pt(0.5, 0.5), 0.2)
			}
			tiles = append(tiles, Tile{Col: col, Row: row, Points: points})
		}
	}

	var (
		table  spline.ParameterTable
		params []float64
	)
	switch cfg.Algorithm {
	case CatmullRom:
		table = spline.NewParameterTable(cfg.Slices)
	case BSpline:
		params = spline.Parameters[float64](cfg.bsplineResolution())
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range tiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tile := &tiles[i]
			if err := evaluate(cfg, tile, table, params); err != nil {
				return fmt.Errorf("tile (%d, %d): %w", tile.Col, tile.Row, err)
			}
			Logger().Debug("evaluated tile",
				"col", tile.Col,
				"row", tile.Row,
				"points", len(tile.Curve),
				"segments", len(tile.Segments))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tiles, nil
}

func evaluate(cfg Config, tile *Tile, table spline.ParameterTable, params []float64) error {
	switch cfg.Algorithm {
	case CatmullRom:
		if cfg.Smooth {
			tile.Segments = slices.Collect(spline.CatmullRomSegments(tile.Points, cfg.Alpha, cfg.Tension))
			return nil
		}
		curve, err := spline.CatmullRom(tile.Points, table, cfg.Alpha, cfg.Tension)
		if err != nil {
			return err
		}
		tile.Curve = curve
	case BSpline:
		flat, err := spline.EvalBSpline(sample.Flatten(tile.Points), len(tile.Points), 2, cfg.Degree, params)
		if err != nil {
			return err
		}
		tile.Curve = sample.Unflatten(flat)
	default:
		return fmt.Errorf("unknown algorithm %v", cfg.Algorithm)
	}
	return nil
}

// Draw paints the background of dc and then every tile: filled dots for the
// control points, and the stroked curve on top.
func Draw(dc *gg.Context, cfg Config, tiles []Tile) error {
	dc.ClearWithColor(cfg.Background)
	dc.SetLineCap(gg.LineCapRound)
	for _, tile := range tiles {
		aff := tileTransform(cfg, tile)
		k := aff.ScaleFactor()

		setColor(dc, cfg.Dots)
		for _, p := range tile.Points {
			p = p.Transform(aff)
			dc.DrawCircle(p.X, p.Y, cfg.DotRadius*k)
		}
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("tile (%d, %d): %w", tile.Col, tile.Row, err)
		}

		path := tile.Path().Transform(aff)
		if len(path) == 0 {
			continue
		}
		tracePath(dc, path)
		setColor(dc, cfg.Curve)
		dc.SetLineWidth(cfg.LineWidth * k)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("tile (%d, %d): %w", tile.Col, tile.Row, err)
		}
		if box, ok := path.ControlBox(); ok {
			Logger().Debug("drew tile",
				"col", tile.Col,
				"row", tile.Row,
				"bounds", box.Inflate(cfg.LineWidth*k/2, cfg.LineWidth*k/2))
		}
	}
	return nil
}

// tileTransform maps the unit square onto the centred, scaled-down area of a
// tile in device space.
func tileTransform(cfg Config, tile Tile) spline.Affine {
	size := float64(cfg.TileSize)
	offset := (1 - cfg.Scale) / 2
	origin := spline.Vec((float64(tile.Col)+offset)*size, (float64(tile.Row)+offset)*size)
	return spline.Scale(size*cfg.Scale, size*cfg.Scale).ThenTranslate(origin)
}

// tracePath adds path to the current path of dc.
func tracePath(dc *gg.Context, path spline.BezPath) {
	for el := range path.Elements() {
		switch el.Kind {
		case spline.MoveToKind:
			dc.MoveTo(el.P0.X, el.P0.Y)
		case spline.LineToKind:
			dc.LineTo(el.P0.X, el.P0.Y)
		case spline.CubicToKind:
			dc.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		}
	}
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}
