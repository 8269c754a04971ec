package renderers

import (
	"image/color"
	"math"

	g2 "github.com/Mu-L/G2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Marks is a gonum.org/v1/plot plotter that fills a set of data-space mark
// paths, so that bars and funnel bands produced by this module can be laid
// out by gonum/plot's axes and scales. Arcs and Béziers are flattened into
// line segments before the plot transform is applied, since the transform is
// generally non-uniform.
type Marks struct {
	Paths []*g2.Path
	Color color.Color
}

// NewMarks returns a Marks plotter for the given data-space paths.
func NewMarks(paths []*g2.Path, fill color.Color) *Marks {
	return &Marks{Paths: paths, Color: fill}
}

// Plot implements the plot.Plotter interface.
func (m *Marks) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, p := range m.Paths {
		var path vg.Path
		for _, point := range flatten(p) {
			pt := vg.Point{X: trX(point.X), Y: trY(point.Y)}
			if len(path) == 0 {
				path.Move(pt)
			} else {
				path.Line(pt)
			}
		}
		if len(path) == 0 {
			continue
		}
		path.Close()
		c.SetColor(m.Color)
		c.Fill(path)
	}
}

// DataRange implements the plot.DataRanger interface.
func (m *Marks) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, p := range m.Paths {
		for _, point := range flatten(p) {
			xmin = math.Min(xmin, point.X)
			xmax = math.Max(xmax, point.X)
			ymin = math.Min(ymin, point.Y)
			ymax = math.Max(ymax, point.Y)
		}
	}
	return xmin, xmax, ymin, ymax
}

// flatten approximates a path by a polygon through its command end points,
// sampling arcs and Béziers at a fixed rate.
func flatten(p *g2.Path) []g2.Point {
	const n = 32
	points := []g2.Point{}
	for scanner := p.Scanner(); scanner.Scan(); {
		start, end := scanner.Start(), scanner.End()
		switch scanner.Cmd() {
		case g2.MoveToCmd, g2.LineToCmd:
			points = append(points, end)
		case g2.QuadToCmd:
			cp := scanner.CP1()
			for i := 1; i <= n; i++ {
				t := float64(i) / n
				points = append(points, start.Interpolate(cp, t).Interpolate(cp.Interpolate(end, t), t))
			}
		case g2.CubeToCmd:
			cp1, cp2 := scanner.CP1(), scanner.CP2()
			for i := 1; i <= n; i++ {
				t := float64(i) / n
				a := start.Interpolate(cp1, t)
				b := cp1.Interpolate(cp2, t)
				c := cp2.Interpolate(end, t)
				points = append(points, a.Interpolate(b, t).Interpolate(b.Interpolate(c, t), t))
			}
		case g2.ArcToCmd:
			rx, ry, rot, large, sweep := scanner.Arc()
			center, theta0, theta1 := g2.ArcToCenter(start, rx, ry, rot, large, sweep, end)
			sinphi, cosphi := math.Sincos(rot * math.Pi / 180.0)
			for i := 1; i <= n; i++ {
				theta := (theta0 + (theta1-theta0)*float64(i)/n) * math.Pi / 180.0
				sintheta, costheta := math.Sincos(theta)
				dx, dy := rx*costheta, ry*sintheta
				points = append(points, g2.Point{X: center.X + cosphi*dx - sinphi*dy, Y: center.Y + sinphi*dx + cosphi*dy})
			}
		}
	}
	return points
}
