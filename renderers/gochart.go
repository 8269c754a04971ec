// Package renderers adapts mark paths to third-party chart backends.
package renderers

import (
	"image/color"
	"math"

	g2 "github.com/Mu-L/G2"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DrawPath replays a visual-space path onto a github.com/wcharczuk/go-chart
// renderer and fills and strokes it with the given style. Cubic Béziers are
// approximated by a single quadratic, which is exact for the paths emitted
// by this module since mark outlines contain only lines and arcs.
func DrawPath(r chart.Renderer, p *g2.Path, style g2.Style) {
	r.SetFillColor(toDrawingColor(style.Fill))
	r.SetStrokeColor(toDrawingColor(style.Stroke))
	r.SetStrokeWidth(style.StrokeWidth)

	for scanner := p.Scanner(); scanner.Scan(); {
		end := scanner.End()
		switch scanner.Cmd() {
		case g2.MoveToCmd:
			r.MoveTo(pos(end.X), pos(end.Y))
		case g2.LineToCmd:
			r.LineTo(pos(end.X), pos(end.Y))
		case g2.QuadToCmd:
			cp := scanner.CP1()
			r.QuadCurveTo(pos(cp.X), pos(cp.Y), pos(end.X), pos(end.Y))
		case g2.CubeToCmd:
			start, cp1, cp2 := scanner.Start(), scanner.CP1(), scanner.CP2()
			cp := cp1.Add(cp2).Mul(0.75).Add(start.Add(end).Mul(-0.25))
			r.QuadCurveTo(pos(cp.X), pos(cp.Y), pos(end.X), pos(end.Y))
		case g2.ArcToCmd:
			rx, ry, rot, large, sweep := scanner.Arc()
			center, theta0, theta1 := g2.ArcToCenter(scanner.Start(), rx, ry, rot, large, sweep, end)
			r.ArcTo(pos(center.X), pos(center.Y), rx, ry, theta0*math.Pi/180.0, (theta1-theta0)*math.Pi/180.0)
		case g2.CloseCmd:
			r.Close()
		}
	}
	r.FillStroke()
}

func pos(f float64) int {
	return int(math.Round(f))
}

func toDrawingColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
