package graph

import (
	"fmt"
	"math"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/spatial/r2"
)

// RenderOptions configures graph rasterization.
type RenderOptions struct {
	Width  int    // canvas width in pixels, default 800
	Height int    // canvas height in pixels, default 800
	Seed   uint64 // layout seed, 0 means time-based
	Title  string // title drawn at the top, default DefaultTitle
}

// DefaultTitle is drawn above the graph unless overridden.
const DefaultTitle = "Knowledge Representation Graph"

const (
	nodeRadius = 36
	margin     = 90
)

// Render computes a force-directed layout for the graph and writes it as a
// PNG to path. Node positions depend on the seed; a fixed seed yields a
// reproducible image.
func (kg *KnowledgeGraph) Render(path string, opts RenderOptions) error {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	positions := kg.layoutPositions(opts)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for _, rel := range kg.relations() {
		from := positions[rel.From().ID()]
		to := positions[rel.To().ID()]
		drawEdge(dc, from, to, rel.Predicate)
	}

	for _, e := range kg.entities() {
		pos := positions[e.id]
		dc.SetHexColor("#ADD8E6")
		dc.DrawCircle(pos.X, pos.Y, nodeRadius)
		dc.FillPreserve()
		dc.SetRGB(0.25, 0.35, 0.45)
		dc.SetLineWidth(1.5)
		dc.Stroke()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(e.Name, pos.X, pos.Y, 0.5, 0.5)
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(opts.Title, float64(opts.Width)/2, margin/3, 0.5, 0.5)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write graph image to %q: %w", path, err)
	}
	return nil
}

// layoutPositions runs the Eades spring layout and maps the resulting
// coordinates onto the canvas, leaving room for node circles at the edges.
func (kg *KnowledgeGraph) layoutPositions(opts RenderOptions) map[int64]r2.Vec {
	positions := make(map[int64]r2.Vec, kg.NodeCount())
	if kg.NodeCount() == 0 {
		return positions
	}

	eades := layout.EadesR2{
		Repulsion: 1,
		Rate:      0.05,
		Updates:   100,
		Theta:     0.2,
		Src:       rand.NewSource(opts.Seed),
	}
	optimizer := layout.NewOptimizerR2(kg.dg, eades.Update)
	for optimizer.Update() {
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, e := range kg.entities() {
		v := optimizer.Coord2(e.id)
		positions[e.id] = v
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}

	spanX := maxX - minX
	spanY := maxY - minY
	cx := float64(opts.Width) / 2
	cy := float64(opts.Height) / 2
	for id, v := range positions {
		x, y := cx, cy
		if spanX > 0 {
			x = margin + (v.X-minX)/spanX*(float64(opts.Width)-2*margin)
		}
		if spanY > 0 {
			y = margin + (v.Y-minY)/spanY*(float64(opts.Height)-2*margin)
		}
		positions[id] = r2.Vec{X: x, Y: y}
	}
	return positions
}

// drawEdge draws a directed edge between two node circles with an
// arrowhead at the target and the predicate label at the midpoint.
func drawEdge(dc *gg.Context, from, to r2.Vec, predicate string) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	ux, uy := dx/dist, dy/dist

	// Trim the segment so it starts and ends at the circle boundaries.
	sx := from.X + ux*nodeRadius
	sy := from.Y + uy*nodeRadius
	ex := to.X - ux*nodeRadius
	ey := to.Y - uy*nodeRadius

	dc.SetRGB(0.4, 0.4, 0.4)
	dc.SetLineWidth(1.5)
	dc.DrawLine(sx, sy, ex, ey)
	dc.Stroke()

	const arrowSize = 10
	angle := math.Atan2(dy, dx)
	dc.MoveTo(ex, ey)
	dc.LineTo(
		ex-arrowSize*math.Cos(angle-math.Pi/7),
		ey-arrowSize*math.Sin(angle-math.Pi/7),
	)
	dc.LineTo(
		ex-arrowSize*math.Cos(angle+math.Pi/7),
		ey-arrowSize*math.Sin(angle+math.Pi/7),
	)
	dc.ClosePath()
	dc.Fill()

	mx := (sx + ex) / 2
	my := (sy + ey) / 2
	w, h := dc.MeasureString(predicate)
	dc.SetRGBA(1, 1, 1, 0.8)
	dc.DrawRectangle(mx-w/2-2, my-h/2-2, w+4, h+4)
	dc.Fill()
	dc.SetRGB(0.55, 0.1, 0.1)
	dc.DrawStringAnchored(predicate, mx, my, 0.5, 0.5)
}
