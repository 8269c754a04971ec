package g2

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// ParseSVGPath parses an SVG path data string into a Path. It accepts the
// full SVG 1.1 grammar (M, L, H, V, Q, T, C, S, A, Z and their relative
// forms) so that paths emitted by this package round-trip through String.
func ParseSVGPath(s string) (*Path, error) {
	path := []byte(s)
	p := &Path{}

	var prevCmd byte
	var cp Point // last control point, for S and T

	i := skipCommaWhitespace(path, 0)
	if len(path) <= i {
		return p, nil
	} else if path[i] != 'M' && path[i] != 'm' {
		return nil, fmt.Errorf("bad path: does not start with MoveTo: %s", s)
	}
	for i < len(path) {
		i = skipCommaWhitespace(path, i)
		if len(path) <= i {
			break
		}
		cmd := prevCmd
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", path[i], i+1)
		} else if cmd == 'Z' || cmd == 'z' {
			// Close takes no parameters, so it cannot repeat implicitly
			return nil, fmt.Errorf("bad path: unexpected character after close at position %d", i+1)
		}

		n := numParams(cmd)
		if n < 0 {
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
		}
		f := [7]float64{}
		for j := 0; j < n; j++ {
			i = skipCommaWhitespace(path, i)
			num, m := strconv.ParseFloat(path[i:])
			if m == 0 {
				return nil, fmt.Errorf("bad path: expected number at position %d", i+1)
			}
			f[j] = num
			i += m
		}

		pos := p.Pos()
		if 'a' <= cmd && cmd != 'z' {
			// relative command: offset the coordinate parameters
			switch cmd {
			case 'a':
				f[5] += pos.X
				f[6] += pos.Y
			case 'h':
				f[0] += pos.X
			case 'v':
				f[0] += pos.Y
			default:
				for j := 0; j+1 < n; j += 2 {
					f[j] += pos.X
					f[j+1] += pos.Y
				}
			}
		}

		switch cmd {
		case 'M', 'm':
			p.MoveTo(f[0], f[1])
		case 'L', 'l':
			p.LineTo(f[0], f[1])
		case 'H', 'h':
			p.LineTo(f[0], pos.Y)
		case 'V', 'v':
			p.LineTo(pos.X, f[0])
		case 'Q', 'q':
			p.QuadTo(f[0], f[1], f[2], f[3])
			cp = Point{f[0], f[1]}
		case 'T', 't':
			cpx, cpy := pos.X, pos.Y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cpx, cpy = 2.0*pos.X-cp.X, 2.0*pos.Y-cp.Y
			}
			p.QuadTo(cpx, cpy, f[0], f[1])
			cp = Point{cpx, cpy}
		case 'C', 'c':
			p.CubeTo(f[0], f[1], f[2], f[3], f[4], f[5])
			cp = Point{f[2], f[3]}
		case 'S', 's':
			cpx, cpy := pos.X, pos.Y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cpx, cpy = 2.0*pos.X-cp.X, 2.0*pos.Y-cp.Y
			}
			p.CubeTo(cpx, cpy, f[0], f[1], f[2], f[3])
			cp = Point{f[0], f[1]}
		case 'A', 'a':
			p.ArcTo(f[0], f[1], f[2], f[3] != 0.0, f[4] != 0.0, f[5], f[6])
		case 'Z', 'z':
			p.Close()
		}
		// extra coordinate pairs after a MoveTo are implicit LineTos
		if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}
		prevCmd = cmd
	}
	return p, nil
}

// MustParseSVGPath is like ParseSVGPath but panics on error. It is intended
// for path literals in tests and examples.
func MustParseSVGPath(s string) *Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// numParams returns the number of parameters for an SVG path command, or -1
// when the command does not exist.
func numParams(cmd byte) int {
	switch cmd {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'Q', 'q', 'S', 's':
		return 4
	case 'C', 'c':
		return 6
	case 'A', 'a':
		return 7
	case 'Z', 'z':
		return 0
	}
	return -1
}

func skipCommaWhitespace(path []byte, i int) int {
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}
