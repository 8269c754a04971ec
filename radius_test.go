package g2

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestRadius(t *testing.T) {
	var tests = []struct {
		vals []float64
		r    Radius
	}{
		{[]float64{}, Radius{}},
		{[]float64{5.0}, Radius{5.0, 5.0, 5.0, 5.0}},
		{[]float64{1.0, 2.0}, Radius{1.0, 2.0, 1.0, 2.0}},
		{[]float64{1.0, 2.0, 3.0}, Radius{1.0, 2.0, 3.0, 2.0}},
		{[]float64{1.0, 2.0, 3.0, 4.0}, Radius{1.0, 2.0, 3.0, 4.0}},
	}
	for _, tt := range tests {
		r, err := NewRadius(tt.vals...)
		test.That(t, err == nil)
		test.T(t, r, tt.r)
	}
}

func TestRadiusOpposites(t *testing.T) {
	r := MustRadius(1.0, 2.0)
	test.That(t, r.BottomLeft == r.TopRight)
	test.That(t, r.TopLeft == r.BottomRight)

	r = MustRadius(1.0, 2.0, 3.0)
	test.That(t, r.TopLeft == r.BottomRight)
}

func TestRadiusErrors(t *testing.T) {
	_, err := NewRadius(1.0, 2.0, 3.0, 4.0, 5.0)
	test.That(t, err != nil)

	_, err = NewRadius(-1.0)
	test.That(t, err != nil)

	_, err = NewRadius(1.0, -2.0, 3.0, 4.0)
	test.That(t, err != nil)
}

func TestRadiusIsZero(t *testing.T) {
	test.That(t, Radius{}.IsZero())
	test.That(t, MustRadius().IsZero())
	test.That(t, !MustRadius(0.0, 1.0).IsZero())
}
