package g2

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestLineCapString(t *testing.T) {
	test.String(t, LineCapButt.String(), "butt")
	test.String(t, LineCapRound.String(), "round")
	test.String(t, LineCapSquare.String(), "square")
}

func TestDefaultStyle(t *testing.T) {
	test.T(t, DefaultStyle.Fill.A, uint8(255))
	test.T(t, DefaultStyle.LineCap, LineCapButt)
	test.That(t, DefaultStyle.Radius == nil)
}
