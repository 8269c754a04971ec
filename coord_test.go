package g2

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestCartesian(t *testing.T) {
	coord := NewCartesian(0.0, 10.0, 0.0, 20.0, 100.0, 200.0)
	test.Float(t, coord.Width(), 100.0)
	test.Float(t, coord.Height(), 200.0)
	test.T(t, coord.Type(), CoordTypeCartesian)
	test.That(t, !coord.IsTransposed())

	// the vertical axis is flipped: the data origin is the bottom-left
	p := coord.Convert(Point{0.0, 0.0})
	test.Float(t, p.X, 0.0)
	test.Float(t, p.Y, 200.0)

	p = coord.Convert(Point{10.0, 20.0})
	test.Float(t, p.X, 100.0)
	test.Float(t, p.Y, 0.0)

	p = coord.Convert(Point{5.0, 5.0})
	test.Float(t, p.X, 50.0)
	test.Float(t, p.Y, 150.0)
}

func TestCartesianInvert(t *testing.T) {
	coord := NewCartesian(-3.0, 7.0, 2.0, 22.0, 640.0, 480.0)
	for _, p := range []Point{{-3.0, 2.0}, {7.0, 22.0}, {0.0, 10.0}, {1.5, 3.25}} {
		q := coord.Invert(coord.Convert(p))
		test.Float(t, q.X, p.X)
		test.Float(t, q.Y, p.Y)
	}
}

func TestCartesianTransposed(t *testing.T) {
	coord := NewCartesian(0.0, 10.0, 0.0, 10.0, 100.0, 50.0).Transpose()
	test.That(t, coord.IsTransposed())

	// the data x axis runs along the vertical device axis
	p := coord.Convert(Point{10.0, 0.0})
	test.Float(t, p.X, 0.0)
	test.Float(t, p.Y, 0.0)

	for _, p := range []Point{{0.0, 0.0}, {10.0, 10.0}, {2.5, 7.5}} {
		q := coord.Invert(coord.Convert(p))
		test.Float(t, q.X, p.X)
		test.Float(t, q.Y, p.Y)
	}
}

func TestPolar(t *testing.T) {
	coord := NewPolar(0.0, 1.0, 0.0, 1.0, 200.0, 200.0, 0.0)
	test.Float(t, coord.Width(), 200.0)
	test.Float(t, coord.Height(), 200.0)
	test.T(t, coord.Type(), CoordTypePolar)

	// x=0 maps to 12 o'clock at the outer radius for y=1
	p := coord.Convert(Point{0.0, 1.0})
	test.Float(t, p.X, 100.0)
	test.Float(t, p.Y, 0.0)

	// y=0 collapses onto the center
	p = coord.Convert(Point{0.5, 0.0})
	test.Float(t, p.X, 100.0)
	test.Float(t, p.Y, 100.0)
}

func TestPolarInvert(t *testing.T) {
	coord := NewPolar(0.0, 1.0, 0.0, 1.0, 200.0, 200.0, 0.2)
	for _, p := range []Point{{0.1, 0.5}, {0.25, 1.0}, {0.6, 0.3}} {
		q := coord.Invert(coord.Convert(p))
		test.Float(t, q.X, p.X)
		test.Float(t, q.Y, p.Y)
	}

	transposed := NewPolar(0.0, 1.0, 0.0, 1.0, 200.0, 200.0, 0.2).Transpose()
	test.That(t, transposed.IsTransposed())
	for _, p := range []Point{{0.5, 0.1}, {1.0, 0.25}, {0.3, 0.6}} {
		q := transposed.Invert(transposed.Convert(p))
		test.Float(t, q.X, p.X)
		test.Float(t, q.Y, p.Y)
	}
}
