package g2

import (
	"math"
	"strconv"
	"strings"
)

// Path commands, stored as the first and last value of every command in
// Path.d so that the path can be scanned forwards and backwards.
const (
	MoveToCmd = 1.0 << iota
	LineToCmd
	QuadToCmd
	CubeToCmd
	ArcToCmd
	CloseCmd
)

// cmdLen returns the number of values (including the command itself at the
// start and end) for the given command.
func cmdLen(cmd float64) int {
	switch cmd {
	case MoveToCmd, LineToCmd, CloseCmd:
		return 4
	case QuadToCmd:
		return 6
	case CubeToCmd, ArcToCmd:
		return 8
	}
	panic("unknown path command")
}

// fromArcFlags packs the large-arc and sweep flags into one value.
func fromArcFlags(large, sweep bool) float64 {
	f := 0.0
	if large {
		f += 1.0
	}
	if sweep {
		f += 2.0
	}
	return f
}

// toArcFlags unpacks the large-arc and sweep flags.
func toArcFlags(f float64) (bool, bool) {
	large := (f == 1.0 || f == 3.0)
	sweep := (f == 2.0 || f == 3.0)
	return large, sweep
}

// Path defines a vector path as a sequence of commands: MoveTo, LineTo,
// QuadTo, CubeTo, ArcTo and Close. Each command consumes the current pen
// position as its start point. Coordinates are in whichever space the path
// was built in; a path never records which space that is.
type Path struct {
	d []float64
}

// Empty returns true if the path contains no command that draws anything.
func (p *Path) Empty() bool {
	return p == nil || len(p.d) <= cmdLen(MoveToCmd)
}

// Closed returns true if the last subpath of p is a closed path.
func (p *Path) Closed() bool {
	return 0 < len(p.d) && p.d[len(p.d)-1] == CloseCmd
}

// Pos returns the current pen position, ie. the end point of the last command.
func (p *Path) Pos() Point {
	if 0 < len(p.d) {
		return Point{p.d[len(p.d)-3], p.d[len(p.d)-2]}
	}
	return Point{}
}

// StartPos returns the start point of the current subpath, ie. the position of the last MoveTo command.
func (p *Path) StartPos() Point {
	for i := len(p.d); 0 < i; {
		cmd := p.d[i-1]
		if cmd == MoveToCmd {
			return Point{p.d[i-3], p.d[i-2]}
		}
		i -= cmdLen(cmd)
	}
	return Point{}
}

// Coords returns the end point coordinates of all commands.
func (p *Path) Coords() []Point {
	coords := []Point{}
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		n := cmdLen(cmd)
		coords = append(coords, Point{p.d[i+n-3], p.d[i+n-2]})
		i += n
	}
	return coords
}

// Copy returns a deep copy of p.
func (p *Path) Copy() *Path {
	q := &Path{d: make([]float64, len(p.d))}
	copy(q.d, p.d)
	return q
}

// Equals returns true if p and q are equal within tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	if len(p.d) != len(q.d) {
		return false
	}
	for i := 0; i < len(p.d); i++ {
		if !Equal(p.d[i], q.d[i]) {
			return false
		}
	}
	return true
}

// Append appends path q to p and returns the extended path p.
func (p *Path) Append(q *Path) *Path {
	if q == nil || q.Empty() {
		return p
	}
	p.d = append(p.d, q.d...)
	return p
}

// MoveTo moves the pen to (x,y) without drawing, starting a new subpath.
func (p *Path) MoveTo(x, y float64) {
	p.d = append(p.d, MoveToCmd, x, y, MoveToCmd)
}

// LineTo draws a straight line from the pen to (x,y).
func (p *Path) LineTo(x, y float64) {
	p.d = append(p.d, LineToCmd, x, y, LineToCmd)
}

// QuadTo draws a quadratic Bézier from the pen towards (x,y) with control point (cpx,cpy).
func (p *Path) QuadTo(cpx, cpy, x, y float64) {
	p.d = append(p.d, QuadToCmd, cpx, cpy, x, y, QuadToCmd)
}

// CubeTo draws a cubic Bézier from the pen towards (x,y) with control points (cpx1,cpy1) and (cpx2,cpy2).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	p.d = append(p.d, CubeToCmd, cpx1, cpy1, cpx2, cpy2, x, y, CubeToCmd)
}

// ArcTo draws an elliptical arc from the pen to (x,y), with radii rx and ry
// and rot the counter clockwise rotation of the ellipse in degrees. The
// large and sweep flags select between the four possible arcs, as in SVG.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) {
	p.d = append(p.d, ArcToCmd, rx, ry, rot, fromArcFlags(large, sweep), x, y, ArcToCmd)
}

// Close closes the current subpath with a straight line back to its start point.
func (p *Path) Close() {
	start := p.StartPos()
	p.d = append(p.d, CloseCmd, start.X, start.Y, CloseCmd)
}

// Translate translates the path by (x,y) and returns a new path.
func (p *Path) Translate(x, y float64) *Path {
	q := p.Copy()
	for i := 0; i < len(q.d); {
		cmd := q.d[i]
		n := cmdLen(cmd)
		switch cmd {
		case QuadToCmd:
			q.d[i+1] += x
			q.d[i+2] += y
		case CubeToCmd:
			q.d[i+1] += x
			q.d[i+2] += y
			q.d[i+3] += x
			q.d[i+4] += y
		}
		q.d[i+n-3] += x
		q.d[i+n-2] += y
		i += n
	}
	return q
}

// Transform transforms the path by the affine transformation matrix and
// returns a new path. Arc radii are scaled by the axis scale factors and the
// ellipse rotation follows the rotation of the matrix; the sweep direction
// flips when the matrix mirrors.
func (p *Path) Transform(m Matrix) *Path {
	sx := math.Sqrt(m[0][0]*m[0][0] + m[1][0]*m[1][0])
	sy := math.Sqrt(m[0][1]*m[0][1] + m[1][1]*m[1][1])
	phi := math.Atan2(m[1][0], m[0][0]) * 180.0 / math.Pi
	mirrored := m.Det() < 0.0

	q := p.Copy()
	for i := 0; i < len(q.d); {
		cmd := q.d[i]
		n := cmdLen(cmd)
		switch cmd {
		case QuadToCmd:
			cp := m.Dot(Point{q.d[i+1], q.d[i+2]})
			q.d[i+1], q.d[i+2] = cp.X, cp.Y
		case CubeToCmd:
			cp1 := m.Dot(Point{q.d[i+1], q.d[i+2]})
			cp2 := m.Dot(Point{q.d[i+3], q.d[i+4]})
			q.d[i+1], q.d[i+2] = cp1.X, cp1.Y
			q.d[i+3], q.d[i+4] = cp2.X, cp2.Y
		case ArcToCmd:
			q.d[i+1] *= sx
			q.d[i+2] *= sy
			q.d[i+3] += phi
			if mirrored {
				large, sweep := toArcFlags(q.d[i+4])
				q.d[i+4] = fromArcFlags(large, !sweep)
			}
		}
		end := m.Dot(Point{q.d[i+n-3], q.d[i+n-2]})
		q.d[i+n-3], q.d[i+n-2] = end.X, end.Y
		i += n
	}
	return q
}

// Map applies f to the end point of every command and returns a new path,
// leaving control points, radii and flags unchanged. It is used to move a
// path built in one coordinate space into another.
func (p *Path) Map(f func(Point) Point) *Path {
	q := &Path{d: make([]float64, len(p.d))}
	copy(q.d, p.d)
	for i := 0; i < len(q.d); {
		cmd := q.d[i]
		n := cmdLen(cmd)
		end := f(Point{q.d[i+n-3], q.d[i+n-2]})
		q.d[i+n-3] = end.X
		q.d[i+n-2] = end.Y
		i += n
	}
	return q
}

// String returns the path as an SVG path data string.
func (p *Path) String() string {
	sb := strings.Builder{}
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		switch cmd {
		case MoveToCmd:
			sb.WriteString("M")
			sb.WriteString(ftos(p.d[i+1]))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+2]))
		case LineToCmd:
			sb.WriteString("L")
			sb.WriteString(ftos(p.d[i+1]))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+2]))
		case QuadToCmd:
			sb.WriteString("Q")
			sb.WriteString(ftos(p.d[i+1]))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+2]))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+3]))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+4]))
		case CubeToCmd:
			sb.WriteString("C")
			sb.WriteString(ftos(p.d[i+1]))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+2]))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+3]))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+4]))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+5]))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+6]))
		case ArcToCmd:
			sb.WriteString("A")
			sb.WriteString(ftos(p.d[i+1]))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+2]))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+3]))
			sb.WriteString(" ")
			large, sweep := toArcFlags(p.d[i+4])
			sb.WriteString(ftos(boolFloat(large)))
			sb.WriteString(" ")
			sb.WriteString(ftos(boolFloat(sweep)))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+5]))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+6]))
		case CloseCmd:
			sb.WriteString("z")
		}
		i += cmdLen(cmd)
	}
	return sb.String()
}

func boolFloat(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

func ftos(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

////////////////////////////////////////////////////////////////

// ArcToCenter converts an arc from endpoint notation, as stored in a Path,
// to center notation as consumed by most renderer backends. It returns the
// ellipse center and the start and end angles in degrees; the arc runs from
// the start angle towards the end angle.
func ArcToCenter(start Point, rx, ry, rot float64, large, sweep bool, end Point) (Point, float64, float64) {
	cx, cy, theta0, theta1 := arcToCenter(start.X, start.Y, rx, ry, rot, large, sweep, end.X, end.Y)
	return Point{cx, cy}, theta0, theta1
}

// arcToCenter converts an arc in SVG endpoint notation to center notation,
// returning the center, the start angle and the end angle in degrees.
// See https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64) {
	if x1 == x2 && y1 == y2 {
		return x1, y1, 0.0, 0.0
	}

	rot *= math.Pi / 180.0
	x1p := math.Cos(rot)*(x1-x2)/2.0 + math.Sin(rot)*(y1-y2)/2.0
	y1p := -math.Sin(rot)*(x1-x2)/2.0 + math.Cos(rot)*(y1-y2)/2.0

	// reduce rounding errors
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if 1.0 < radiiCheck {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := math.Cos(rot)*cxp - math.Sin(rot)*cyp + (x1+x2)/2.0
	cy := math.Sin(rot)*cxp + math.Cos(rot)*cyp + (y1+y2)/2.0

	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(ux / math.Sqrt(ux*ux+uy*uy))
	if uy < 0.0 {
		theta = -theta
	}
	theta *= 180.0 / math.Pi

	delta := math.Acos((ux*vx + uy*vy) / math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	delta *= 180.0 / math.Pi
	if !sweep && 0.0 < delta {
		delta -= 360.0
	} else if sweep && delta < 0.0 {
		delta += 360.0
	}

	return cx, cy, theta, theta + delta
}
