package g2

import (
	"fmt"
)

// Radius holds a rounding radius for each corner of a rectangular mark, in
// the traversal order of its key points: bottom-left, top-left, top-right,
// bottom-right.
type Radius struct {
	BottomLeft  float64
	TopLeft     float64
	TopRight    float64
	BottomRight float64
}

// NewRadius expands 0 to 4 corner radius values into a Radius, following the
// CSS border-radius shorthand:
//
//	0 values: all corners zero
//	1 value:  all corners equal
//	2 values [a,b]: bottom-left and top-right get a, top-left and bottom-right get b
//	3 values [a,b,c]: bottom-left gets a, top-left and bottom-right get b, top-right gets c
//	4 values: assigned in traversal order
//
// More than four values or a negative value is an error.
func NewRadius(vals ...float64) (Radius, error) {
	if 4 < len(vals) {
		return Radius{}, fmt.Errorf("radius: expected 0 to 4 values, got %d", len(vals))
	}
	for _, v := range vals {
		if v < 0.0 {
			return Radius{}, fmt.Errorf("radius: negative value %g", v)
		}
	}

	r := Radius{}
	switch len(vals) {
	case 1:
		r.BottomLeft = vals[0]
		r.TopLeft = vals[0]
		r.TopRight = vals[0]
		r.BottomRight = vals[0]
	case 2:
		r.BottomLeft = vals[0]
		r.TopLeft = vals[1]
		r.TopRight = vals[0]
		r.BottomRight = vals[1]
	case 3:
		r.BottomLeft = vals[0]
		r.TopLeft = vals[1]
		r.TopRight = vals[2]
		r.BottomRight = vals[1]
	case 4:
		r.BottomLeft = vals[0]
		r.TopLeft = vals[1]
		r.TopRight = vals[2]
		r.BottomRight = vals[3]
	}
	return r, nil
}

// MustRadius is like NewRadius but panics on error. It is intended for
// radius literals in tests and examples.
func MustRadius(vals ...float64) Radius {
	r, err := NewRadius(vals...)
	if err != nil {
		panic(err)
	}
	return r
}

// IsZero returns true if all corners have a zero radius.
func (r Radius) IsZero() bool {
	return r.BottomLeft == 0.0 && r.TopLeft == 0.0 && r.TopRight == 0.0 && r.BottomRight == 0.0
}
