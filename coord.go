package g2

import (
	"math"
)

// CoordType discriminates between coordinate system geometries.
type CoordType int

const (
	CoordTypeCartesian CoordType = iota
	CoordTypePolar
)

func (t CoordType) String() string {
	if t == CoordTypePolar {
		return "polar"
	}
	return "rect"
}

// Coord projects points between data space and visual space. Implementations
// must be pure: Convert and Invert are exact inverses and neither mutates the
// coordinate system, so a Coord is safe for concurrent use as long as it is
// not reconfigured while in use.
type Coord interface {
	// Width returns the width of the plot area in visual units.
	Width() float64
	// Height returns the height of the plot area in visual units.
	Height() float64
	// IsTransposed returns true if the horizontal and vertical axis roles are swapped.
	IsTransposed() bool
	// Type returns the geometry of the coordinate system.
	Type() CoordType
	// Convert projects a data space point to visual space.
	Convert(Point) Point
	// Invert projects a visual space point back to data space.
	Invert(Point) Point
}

////////////////////////////////////////////////////////////////

// Cartesian maps a rectangular data domain onto a pixel viewport. The data
// domain has the vertical axis growing upwards while the viewport has it
// growing downwards, so the projection flips y. When transposed, the data
// point's x and y swap roles before projecting (horizontal bar charts).
type Cartesian struct {
	width, height float64
	transposed    bool
	m, inv        Matrix
}

// NewCartesian returns a Cartesian coordinate system that maps the data
// domain [x0,x1]×[y0,y1] onto the viewport [0,width]×[0,height].
func NewCartesian(x0, x1, y0, y1, width, height float64) *Cartesian {
	m := Identity.Translate(0.0, height).Scale(width/(x1-x0), -height/(y1-y0)).Translate(-x0, -y0)
	return &Cartesian{
		width:  width,
		height: height,
		m:      m,
		inv:    m.Inv(),
	}
}

// Transpose swaps the horizontal and vertical axis roles and returns the
// coordinate system itself.
func (c *Cartesian) Transpose() *Cartesian {
	c.transposed = !c.transposed
	return c
}

// Width returns the width of the plot area in visual units.
func (c *Cartesian) Width() float64 {
	return c.width
}

// Height returns the height of the plot area in visual units.
func (c *Cartesian) Height() float64 {
	return c.height
}

// IsTransposed returns true if the horizontal and vertical axis roles are swapped.
func (c *Cartesian) IsTransposed() bool {
	return c.transposed
}

// Type returns CoordTypeCartesian.
func (c *Cartesian) Type() CoordType {
	return CoordTypeCartesian
}

// Convert projects a data space point to visual space.
func (c *Cartesian) Convert(p Point) Point {
	if c.transposed {
		p.X, p.Y = p.Y, p.X
	}
	return c.m.Dot(p)
}

// Invert projects a visual space point back to data space.
func (c *Cartesian) Invert(p Point) Point {
	p = c.inv.Dot(p)
	if c.transposed {
		p.X, p.Y = p.Y, p.X
	}
	return p
}

////////////////////////////////////////////////////////////////

// Polar maps the horizontal data extent onto an angular range and the
// vertical data extent onto a radial range around the viewport center. When
// transposed the extents swap roles, turning bar marks into radial bars.
type Polar struct {
	width, height            float64
	transposed               bool
	x0, x1, y0, y1           float64
	startAngle, endAngle     float64
	innerRadius, outerRadius float64
}

// NewPolar returns a Polar coordinate system mapping the data domain
// [x0,x1]×[y0,y1] onto a full circle from innerRadius to the largest radius
// that fits the viewport [0,width]×[0,height]. Angles start at 12 o'clock
// and run clockwise, the chart convention.
func NewPolar(x0, x1, y0, y1, width, height, innerRadius float64) *Polar {
	outer := math.Min(width, height) / 2.0
	return &Polar{
		width:       width,
		height:      height,
		x0:          x0,
		x1:          x1,
		y0:          y0,
		y1:          y1,
		startAngle:  -math.Pi / 2.0,
		endAngle:    3.0 * math.Pi / 2.0,
		innerRadius: innerRadius * outer,
		outerRadius: outer,
	}
}

// Transpose swaps the horizontal and vertical axis roles and returns the
// coordinate system itself.
func (c *Polar) Transpose() *Polar {
	c.transposed = !c.transposed
	return c
}

// Width returns the width of the plot area in visual units.
func (c *Polar) Width() float64 {
	return c.width
}

// Height returns the height of the plot area in visual units.
func (c *Polar) Height() float64 {
	return c.height
}

// IsTransposed returns true if the horizontal and vertical axis roles are swapped.
func (c *Polar) IsTransposed() bool {
	return c.transposed
}

// Type returns CoordTypePolar.
func (c *Polar) Type() CoordType {
	return CoordTypePolar
}

// Convert projects a data space point to visual space.
func (c *Polar) Convert(p Point) Point {
	if c.transposed {
		p.X, p.Y = p.Y, p.X
	}
	theta := c.startAngle + (c.endAngle-c.startAngle)*(p.X-c.x0)/(c.x1-c.x0)
	radius := c.innerRadius + (c.outerRadius-c.innerRadius)*(p.Y-c.y0)/(c.y1-c.y0)
	sintheta, costheta := math.Sincos(theta)
	return Point{c.width/2.0 + radius*costheta, c.height/2.0 + radius*sintheta}
}

// Invert projects a visual space point back to data space.
func (c *Polar) Invert(p Point) Point {
	dx, dy := p.X-c.width/2.0, p.Y-c.height/2.0
	radius := math.Sqrt(dx*dx + dy*dy)
	theta := math.Atan2(dy, dx)
	for theta < c.startAngle {
		theta += 2.0 * math.Pi
	}
	for c.endAngle < theta {
		theta -= 2.0 * math.Pi
	}
	q := Point{
		c.x0 + (c.x1-c.x0)*(theta-c.startAngle)/(c.endAngle-c.startAngle),
		c.y0 + (c.y1-c.y0)*(radius-c.innerRadius)/(c.outerRadius-c.innerRadius),
	}
	if c.transposed {
		q.X, q.Y = q.Y, q.X
	}
	return q
}
