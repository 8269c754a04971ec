package g2

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestEqual(t *testing.T) {
	test.That(t, Equal(1.0, 1.0+Epsilon/2.0))
	test.That(t, !Equal(1.0, 1.0+2.0*Epsilon))
}

func TestPoint(t *testing.T) {
	p := Point{3.0, 4.0}
	test.T(t, p.Neg(), Point{-3.0, -4.0})
	test.T(t, p.Add(Point{1.0, 1.0}), Point{4.0, 5.0})
	test.T(t, p.Sub(Point{1.0, 1.0}), Point{2.0, 3.0})
	test.T(t, p.Mul(2.0), Point{6.0, 8.0})
	test.Float(t, p.Length(), 5.0)
	test.T(t, p.Norm(10.0), Point{6.0, 8.0})
	test.T(t, Point{}.Norm(1.0), Point{})
	test.T(t, Point{0.0, 0.0}.Interpolate(Point{4.0, 8.0}, 0.25), Point{1.0, 2.0})
	test.That(t, p.Equals(Point{3.0, 4.0}))
	test.String(t, p.String(), "(3,4)")
}

func TestMatrix(t *testing.T) {
	m := Identity.Translate(3.0, 2.0).Scale(2.0, 4.0)
	test.T(t, m.Dot(Point{1.0, 1.0}), Point{5.0, 6.0})

	inv := m.Inv()
	p := Point{7.0, 11.0}
	q := inv.Dot(m.Dot(p))
	test.Float(t, q.X, p.X)
	test.Float(t, q.Y, p.Y)

	// composition applies the right-hand matrix first
	a := Identity.Translate(1.0, 0.0)
	b := Identity.Scale(2.0, 2.0)
	test.T(t, a.Mul(b).Dot(Point{1.0, 1.0}), Point{3.0, 2.0})
	test.T(t, b.Mul(a).Dot(Point{1.0, 1.0}), Point{4.0, 2.0})
}
