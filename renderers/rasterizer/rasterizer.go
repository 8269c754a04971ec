// Package rasterizer renders mark paths to a raster image.
package rasterizer

import (
	"image"
	"image/png"
	"io"
	"math"

	g2 "github.com/Mu-L/G2"
	"golang.org/x/image/vector"
)

// Rasterizer is a rasterizing renderer. Paths given to RenderPath must be in
// visual space with the origin at the top-left of the image.
type Rasterizer struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

// New returns a renderer that draws to a new RGBA image of the given size in pixels.
func New(width, height int) *Rasterizer {
	return &Rasterizer{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: vector.NewRasterizer(width, height),
	}
}

// Size returns the size of the image in pixels.
func (r *Rasterizer) Size() (float64, float64) {
	size := r.img.Bounds().Size()
	return float64(size.X), float64(size.Y)
}

// Image returns the image drawn so far.
func (r *Rasterizer) Image() *image.RGBA {
	return r.img
}

// RenderPath fills a path onto the image using the style's fill color.
func (r *Rasterizer) RenderPath(path *g2.Path, style g2.Style) {
	if path.Empty() || style.Fill.A == 0 {
		return
	}

	closed := false
	for scanner := path.Scanner(); scanner.Scan(); {
		end := scanner.End()
		closed = false
		switch scanner.Cmd() {
		case g2.MoveToCmd:
			r.ras.MoveTo(float32(end.X), float32(end.Y))
		case g2.LineToCmd:
			r.ras.LineTo(float32(end.X), float32(end.Y))
		case g2.QuadToCmd:
			cp := scanner.CP1()
			r.ras.QuadTo(float32(cp.X), float32(cp.Y), float32(end.X), float32(end.Y))
		case g2.CubeToCmd:
			cp1, cp2 := scanner.CP1(), scanner.CP2()
			r.ras.CubeTo(float32(cp1.X), float32(cp1.Y), float32(cp2.X), float32(cp2.Y), float32(end.X), float32(end.Y))
		case g2.ArcToCmd:
			rx, ry, rot, large, sweep := scanner.Arc()
			r.arcTo(scanner.Start(), rx, ry, rot, large, sweep, end)
		case g2.CloseCmd:
			r.ras.ClosePath()
			closed = true
		}
	}
	if !closed {
		// the rasterizer can only fill closed paths
		r.ras.ClosePath()
	}

	size := r.ras.Size()
	r.ras.Draw(r.img, image.Rect(0, 0, size.X, size.Y), image.NewUniform(style.Fill), image.Point{})
	r.ras.Reset(size.X, size.Y)
}

// arcTo approximates an elliptical arc by a fixed number of quadratic Bézier
// segments through points sampled on the (possibly rotated) ellipse.
func (r *Rasterizer) arcTo(start g2.Point, rx, ry, rot float64, large, sweep bool, end g2.Point) {
	center, angle1, angle2 := g2.ArcToCenter(start, rx, ry, rot, large, sweep, end)
	angle1 *= math.Pi / 180.0
	angle2 *= math.Pi / 180.0
	sinphi, cosphi := math.Sincos(rot * math.Pi / 180.0)
	at := func(theta float64) (float64, float64) {
		sintheta, costheta := math.Sincos(theta)
		dx, dy := rx*costheta, ry*sintheta
		return center.X + cosphi*dx - sinphi*dy, center.Y + sinphi*dx + cosphi*dy
	}

	const n = 16
	for i := 0; i < n; i++ {
		a1 := angle1 + (angle2-angle1)*float64(i)/n
		a2 := angle1 + (angle2-angle1)*float64(i+1)/n
		x0, y0 := at(a1)
		xm, ym := at((a1 + a2) / 2.0)
		x2, y2 := at(a2)
		cpx := 2.0*xm - x0/2.0 - x2/2.0
		cpy := 2.0*ym - y0/2.0 - y2/2.0
		r.ras.QuadTo(float32(cpx), float32(cpy), float32(x2), float32(y2))
	}
}

// WritePNG encodes the image drawn so far as PNG.
func (r *Rasterizer) WritePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}
