package renderers

import (
	"image/color"
	"testing"

	g2 "github.com/Mu-L/G2"
	"github.com/tdewolff/test"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestMarksDataRange(t *testing.T) {
	level := g2.ShapePoint{X: g2.Span(0.0, 1.0), Y: g2.Span(-4.0, 4.0)}
	next := g2.ShapePoint{X: g2.Span(1.0, 2.0), Y: g2.Span(-3.0, 3.0)}
	band := g2.FunnelPath(level.KeyPoints(false), next.KeyPoints(false), false)
	m := NewMarks([]*g2.Path{band}, color.RGBA{255, 0, 0, 255})

	xmin, xmax, ymin, ymax := m.DataRange()
	test.Float(t, xmin, 0.0)
	test.Float(t, xmax, 1.0)
	test.Float(t, ymin, -4.0)
	test.Float(t, ymax, 4.0)
}

func TestMarksDataRangeArc(t *testing.T) {
	// arcs are sampled, so the range covers the bulge and not just the end points
	m := NewMarks([]*g2.Path{g2.MustParseSVGPath("M0 0A1 1 0 0 1 2 0")}, color.RGBA{255, 0, 0, 255})

	_, _, ymin, ymax := m.DataRange()
	test.Float(t, ymin, -1.0)
	test.Float(t, ymax, 0.0)
}

func TestMarksDataRangeRotatedArc(t *testing.T) {
	// a 90 degree rotation swaps the ellipse axes: the semi-major axis of 2
	// runs along y and the bulge reaches one semi-minor axis along x
	m := NewMarks([]*g2.Path{g2.MustParseSVGPath("M0 2A2 1 90 0 1 0 -2")}, color.RGBA{255, 0, 0, 255})

	xmin, xmax, ymin, ymax := m.DataRange()
	test.Float(t, xmin, -1.0)
	test.Float(t, xmax, 0.0)
	test.Float(t, ymin, -2.0)
	test.Float(t, ymax, 2.0)
}

func TestMarksPlot(t *testing.T) {
	bar := g2.MustParseSVGPath("M0 0L0 4L1 4L1 0z")
	m := NewMarks([]*g2.Path{bar}, color.RGBA{255, 0, 0, 255})

	plt := plot.New()
	plt.Add(m)

	c := vgimg.New(vg.Points(100), vg.Points(100))
	plt.Draw(draw.New(c))
}
