package g2

import (
	"image/color"
)

// LineCap specifies how the ends of an open stroke are drawn. For interval
// marks a round cap selects the pill shape, replacing the two value-axis
// edges by semicircular arcs.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return "butt"
}

// Style carries the visual attributes of a mark that influence path
// construction and rendering. The zero value is a plain filled mark with
// sharp corners.
type Style struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
	LineCap     LineCap

	// Radius rounds the corners of rectangular marks individually. It is
	// ignored when LineCap is LineCapRound, which takes precedence.
	Radius *Radius
}

// DefaultStyle is a black filled mark without stroke.
var DefaultStyle = Style{
	Fill: color.RGBA{0, 0, 0, 255},
}
