package g2

import (
	"math"
)

// Extent is the extent of a mark along one axis in data space, replacing the
// scalar-or-range duality of the inputs by one explicit representation
// resolved at the boundary.
type Extent struct {
	Min, Max float64
}

// Span returns the extent covering [min,max].
func Span(min, max float64) Extent {
	return Extent{min, max}
}

// Centered returns the extent of size around center, for marks positioned by
// a scalar coordinate plus a width.
func Centered(center, size float64) Extent {
	return Extent{center - size/2.0, center + size/2.0}
}

// Stacked returns the extent from a baseline up to value, for marks
// positioned by a scalar value over a baseline.
func Stacked(baseline, value float64) Extent {
	return Extent{baseline, value}
}

// Mid returns the midpoint of the extent.
func (e Extent) Mid() float64 {
	return (e.Min + e.Max) / 2.0
}

// ShapePoint describes a single mark's outline in data space: its horizontal
// and vertical extent.
type ShapePoint struct {
	X, Y Extent
}

// KeyPoints returns the ordered corner points of the mark's outline in data
// space: bottom-left, top-left, top-right, bottom-right. When pyramid is
// true the two right corners collapse into a single apex at mid height,
// yielding three points. The first two points always share the minimum x.
func (s ShapePoint) KeyPoints(pyramid bool) []Point {
	points := []Point{
		{s.X.Min, s.Y.Min},
		{s.X.Min, s.Y.Max},
	}
	if pyramid {
		return append(points, Point{s.X.Max, s.Y.Mid()})
	}
	return append(points,
		Point{s.X.Max, s.Y.Max},
		Point{s.X.Max, s.Y.Min},
	)
}

////////////////////////////////////////////////////////////////

// StraightPath returns the path visiting the given points in order with
// straight edges. When closed, the path returns to the first point with an
// explicit closing edge; left open it renders with visible line caps, which
// line-style marks rely on.
func StraightPath(points []Point, closed bool) *Path {
	p := &Path{}
	if len(points) == 0 {
		return p
	}
	p.MoveTo(points[0].X, points[0].Y)
	for _, point := range points[1:] {
		p.LineTo(point.X, point.Y)
	}
	if closed {
		p.LineTo(points[0].X, points[0].Y)
		p.Close()
	}
	return p
}

// IntervalPath returns the outline of a rectangular interval mark (a bar)
// given its four key points in traversal order. A round line cap draws the
// bar as a pill with semicircular ends; otherwise a corner radius in the
// style rounds each corner individually; otherwise the outline is the
// straight closed quadrilateral.
func IntervalPath(points []Point, style Style, coord Coord) *Path {
	if style.LineCap == LineCapRound {
		return roundCapPath(points, coord)
	}
	if style.Radius != nil && !style.Radius.IsZero() {
		return roundedCornerPath(points, *style.Radius, coord)
	}
	return StraightPath(points, true)
}

// roundCapPath draws the pill shape: straight edges on the category-axis
// sides and a semicircular arc of radius r on each value-axis side, swept
// clockwise. r is half the top edge in data space; ry is r corrected for the
// aspect ratio between the axes so the arc stays circular on screen. For
// rectangular coordinate systems the end points are inset by ry along the
// value axis so the arcs do not overshoot the mark's extent; polar geometry
// absorbs the transform by itself and needs no inset.
func roundCapPath(points []Point, coord Coord) *Path {
	r := (points[2].X - points[1].X) / 2.0
	ry := r * coord.Width() / coord.Height()
	if coord.IsTransposed() {
		ry = r * coord.Height() / coord.Width()
	}

	p := &Path{}
	if coord.Type() == CoordTypeCartesian {
		p.MoveTo(points[0].X, points[0].Y+ry)
		p.LineTo(points[1].X, points[1].Y-ry)
		p.ArcTo(r, r, 0.0, false, true, points[2].X, points[2].Y-ry)
		p.LineTo(points[3].X, points[3].Y+ry)
		p.ArcTo(r, r, 0.0, false, true, points[0].X, points[0].Y+ry)
	} else {
		p.MoveTo(points[0].X, points[0].Y)
		p.LineTo(points[1].X, points[1].Y)
		p.ArcTo(r, r, 0.0, false, true, points[2].X, points[2].Y)
		p.LineTo(points[3].X, points[3].Y)
		p.ArcTo(r, r, 0.0, false, true, points[0].X, points[0].Y)
	}
	p.Close()
	return p
}

// roundedCornerPath rounds each corner of the quadrilateral by its own
// radius. The rounding happens in visual space: the corners are projected
// forward, each straight edge is shortened by the adjacent radii and
// followed by a circular quarter arc (skipped entirely for a zero radius),
// and the finished path is mapped back to data space point by point. The
// round trip keeps the rounding visually circular regardless of the
// data-space aspect ratio. Radii are clamped to half the shorter adjacent
// edge so the shortened edges cannot overshoot.
func roundedCornerPath(points []Point, radius Radius, coord Coord) *Path {
	var corner [4]Point
	for i := 0; i < 4; i++ {
		corner[i] = coord.Convert(points[i])
	}
	r := [4]float64{radius.BottomLeft, radius.TopLeft, radius.TopRight, radius.BottomRight}

	// unit direction and length of each edge corner[i] -> corner[i+1]
	var dir [4]Point
	var edge [4]float64
	for i := 0; i < 4; i++ {
		dir[i] = corner[(i+1)%4].Sub(corner[i]).Norm(1.0)
		edge[i] = corner[(i+1)%4].Sub(corner[i]).Length()
	}
	for i := 0; i < 4; i++ {
		prev := (i + 3) % 4
		r[i] = math.Min(r[i], math.Min(edge[prev], edge[i])/2.0)
	}

	p := &Path{}
	start := corner[0].Add(dir[0].Mul(r[0]))
	p.MoveTo(start.X, start.Y)
	for i := 0; i < 4; i++ {
		next := (i + 1) % 4
		entry := corner[next].Sub(dir[i].Mul(r[next]))
		p.LineTo(entry.X, entry.Y)
		if 0.0 < r[next] {
			exit := corner[next].Add(dir[next].Mul(r[next]))
			p.ArcTo(r[next], r[next], 0.0, false, true, exit.X, exit.Y)
		}
	}
	p.Close()
	return p.Map(coord.Invert)
}

// FunnelPath returns the closed band of a funnel mark. With the next level's
// key points it is the trapezoid between the top edges of this level and the
// next; without them it closes the funnel with the mark's own corners, or
// with the apex repeated for the tip of a pyramid so that every band has
// four vertices.
func FunnelPath(points, next []Point, pyramid bool) *Path {
	var quad [4]Point
	switch {
	case next != nil:
		quad = [4]Point{points[0], points[1], next[1], next[0]}
	case pyramid:
		quad = [4]Point{points[0], points[1], points[2], points[2]}
	default:
		quad = [4]Point{points[0], points[1], points[2], points[3]}
	}

	p := &Path{}
	p.MoveTo(quad[0].X, quad[0].Y)
	p.LineTo(quad[1].X, quad[1].Y)
	p.LineTo(quad[2].X, quad[2].Y)
	p.LineTo(quad[3].X, quad[3].Y)
	p.Close()
	return p
}
