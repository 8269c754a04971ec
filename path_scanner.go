package g2

// PathScanner scans the commands of a path in order. Use Scan to advance to
// the next command and the accessors to read its arguments.
type PathScanner struct {
	p *Path
	i int
}

// Scanner returns a scanner positioned before the first command.
func (p *Path) Scanner() *PathScanner {
	return &PathScanner{p, -1}
}

// Scan advances to the next command and returns true if there is one.
func (s *PathScanner) Scan() bool {
	if s.i+1 < len(s.p.d) {
		s.i += cmdLen(s.p.d[s.i+1])
		return true
	}
	return false
}

// Cmd returns the current command.
func (s *PathScanner) Cmd() float64 {
	return s.p.d[s.i]
}

// Start returns the start point of the current command, ie. the end point of the previous command.
func (s *PathScanner) Start() Point {
	i := s.i - cmdLen(s.p.d[s.i])
	if i == -1 {
		return Point{}
	}
	return Point{s.p.d[i-2], s.p.d[i-1]}
}

// End returns the end point of the current command.
func (s *PathScanner) End() Point {
	return Point{s.p.d[s.i-2], s.p.d[s.i-1]}
}

// CP1 returns the first control point for quadratic and cubic Béziers.
func (s *PathScanner) CP1() Point {
	if s.p.d[s.i] != QuadToCmd && s.p.d[s.i] != CubeToCmd {
		panic("must be quadratic or cubic Bézier")
	}
	i := s.i - cmdLen(s.p.d[s.i]) + 1
	return Point{s.p.d[i+1], s.p.d[i+2]}
}

// CP2 returns the second control point for cubic Béziers.
func (s *PathScanner) CP2() Point {
	if s.p.d[s.i] != CubeToCmd {
		panic("must be cubic Bézier")
	}
	i := s.i - cmdLen(s.p.d[s.i]) + 1
	return Point{s.p.d[i+3], s.p.d[i+4]}
}

// Arc returns the arguments for arcs: rx, ry, rot in degrees, and the
// large-arc and sweep flags.
func (s *PathScanner) Arc() (float64, float64, float64, bool, bool) {
	if s.p.d[s.i] != ArcToCmd {
		panic("must be arc")
	}
	i := s.i - cmdLen(s.p.d[s.i]) + 1
	large, sweep := toArcFlags(s.p.d[i+4])
	return s.p.d[i+1], s.p.d[i+2], s.p.d[i+3], large, sweep
}
