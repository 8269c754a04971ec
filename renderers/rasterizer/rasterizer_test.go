package rasterizer

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	g2 "github.com/Mu-L/G2"
	"github.com/tdewolff/test"
)

func TestRasterizer(t *testing.T) {
	r := New(10, 10)
	w, h := r.Size()
	test.Float(t, w, 10.0)
	test.Float(t, h, 10.0)

	red := color.RGBA{255, 0, 0, 255}
	r.RenderPath(g2.MustParseSVGPath("M2 2L2 8L8 8L8 2z"), g2.Style{Fill: red})

	img := r.Image()
	test.T(t, img.RGBAAt(5, 5), red)
	test.T(t, img.RGBAAt(0, 0), color.RGBA{})
	test.T(t, img.RGBAAt(9, 9), color.RGBA{})
}

func TestRasterizerOpenPath(t *testing.T) {
	// an open path is closed implicitly before filling
	r := New(10, 10)
	red := color.RGBA{255, 0, 0, 255}
	r.RenderPath(g2.MustParseSVGPath("M0 0L10 0L10 10L0 10"), g2.Style{Fill: red})
	test.T(t, r.Image().RGBAAt(5, 5), red)
}

func TestRasterizerArc(t *testing.T) {
	// a bar with a round top cap: the upper corners stay blank
	r := New(20, 20)
	blue := color.RGBA{0, 0, 255, 255}
	r.RenderPath(g2.MustParseSVGPath("M2 10A8 8 0 0 1 18 10L18 18L2 18z"), g2.Style{Fill: blue})

	img := r.Image()
	test.T(t, img.RGBAAt(10, 10), blue)
	test.T(t, img.RGBAAt(10, 4), blue)
	test.T(t, img.RGBAAt(0, 0), color.RGBA{})
	test.T(t, img.RGBAAt(19, 0), color.RGBA{})
}

func TestRasterizerRotatedArc(t *testing.T) {
	// a 90 degree rotation swaps the ellipse axes: the half ellipse bulges
	// one semi-minor axis to the right of the chord
	r := New(20, 20)
	green := color.RGBA{0, 255, 0, 255}
	r.RenderPath(g2.MustParseSVGPath("M10 2A8 4 90 0 1 10 18z"), g2.Style{Fill: green})

	img := r.Image()
	test.T(t, img.RGBAAt(12, 10), green)
	test.T(t, img.RGBAAt(17, 10), color.RGBA{})
	test.T(t, img.RGBAAt(5, 10), color.RGBA{})
}

func TestRasterizerWritePNG(t *testing.T) {
	r := New(10, 10)
	r.RenderPath(g2.MustParseSVGPath("M2 2L2 8L8 8L8 2z"), g2.Style{Fill: color.RGBA{0, 255, 0, 255}})

	buf := &bytes.Buffer{}
	test.That(t, r.WritePNG(buf) == nil)

	img, err := png.Decode(buf)
	test.That(t, err == nil)
	test.T(t, img.Bounds().Dx(), 10)
	test.T(t, img.Bounds().Dy(), 10)
}
