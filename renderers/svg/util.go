package svg

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	g2 "github.com/Mu-L/G2"
	"github.com/tdewolff/minify/v2"
)

////////////////////////////////////////////////////////////////

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", g2.Precision, f)
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), g2.Precision))
}

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", g2.Precision, f)
	s = string(minify.Decimal([]byte(s), g2.Precision))
	if dec(math.MaxInt32) < f || f < dec(math.MinInt32) {
		if i := strings.IndexByte(s, '.'); i == -1 {
			s += ".0"
		}
	}
	return s
}

////////////////////////////////////////////////////////////////

func cssColor(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%v)", c.R, c.G, c.B, dec(float64(c.A)/255.0))
}
