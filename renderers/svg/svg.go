// Package svg renders mark paths to a scalable vector graphics document.
package svg

import (
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	g2 "github.com/Mu-L/G2"
)

// Options defines how the SVG document is written.
type Options struct {
	// Compression gzips the output at the given level when nonzero.
	Compression int
}

// DefaultOptions writes an uncompressed document.
var DefaultOptions = Options{}

// SVG is a scalable vector graphics renderer. Paths given to RenderPath must
// be in visual space with the origin at the top-left of the viewport.
type SVG struct {
	w             io.Writer
	width, height float64
	opts          *Options
	err           error
}

// New returns an SVG renderer writing a document of the given size in pixels
// to w. Close must be called to finish the document.
func New(w io.Writer, width, height float64, opts *Options) *SVG {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	if opts.Compression != 0 {
		if opts.Compression < gzip.HuffmanOnly || gzip.BestCompression < opts.Compression {
			opts.Compression = -1
		}
		w, _ = gzip.NewWriterLevel(w, opts.Compression)
	}

	_, err := fmt.Fprintf(w, `<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, dec(width), dec(height), dec(width), dec(height))
	return &SVG{
		w:      w,
		width:  width,
		height: height,
		opts:   opts,
		err:    err,
	}
}

// Close finishes and closes the SVG document.
func (r *SVG) Close() error {
	_, err := fmt.Fprintf(r.w, "</svg>")
	if r.err != nil {
		err = r.err
	}
	if r.opts.Compression != 0 {
		// does not close the underlying writer
		if cerr := r.w.(*gzip.Writer).Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Size returns the size of the document in pixels.
func (r *SVG) Size() (float64, float64) {
	return r.width, r.height
}

// RenderPath renders a path using the given style.
func (r *SVG) RenderPath(path *g2.Path, style g2.Style) {
	if path.Empty() {
		return
	}

	sb := strings.Builder{}
	sb.WriteString(`<path d="`)
	writePath(&sb, path)
	if style.Fill.A != 0 {
		fmt.Fprintf(&sb, `" fill="%s`, cssColor(style.Fill))
	} else {
		sb.WriteString(`" fill="none`)
	}
	if style.Stroke.A != 0 && 0.0 < style.StrokeWidth {
		fmt.Fprintf(&sb, `" stroke="%s" stroke-width="%v`, cssColor(style.Stroke), dec(style.StrokeWidth))
		if style.LineCap != g2.LineCapButt {
			fmt.Fprintf(&sb, `" stroke-linecap="%s`, style.LineCap)
		}
	}
	sb.WriteString(`"/>`)

	if _, err := fmt.Fprint(r.w, sb.String()); err != nil && r.err == nil {
		r.err = err
	}
}

// writePath writes the path as minified SVG path data.
func writePath(sb *strings.Builder, p *g2.Path) {
	for scanner := p.Scanner(); scanner.Scan(); {
		end := scanner.End()
		switch scanner.Cmd() {
		case g2.MoveToCmd:
			fmt.Fprintf(sb, "M%v %v", num(end.X), num(end.Y))
		case g2.LineToCmd:
			fmt.Fprintf(sb, "L%v %v", num(end.X), num(end.Y))
		case g2.QuadToCmd:
			cp := scanner.CP1()
			fmt.Fprintf(sb, "Q%v %v %v %v", num(cp.X), num(cp.Y), num(end.X), num(end.Y))
		case g2.CubeToCmd:
			cp1, cp2 := scanner.CP1(), scanner.CP2()
			fmt.Fprintf(sb, "C%v %v %v %v %v %v", num(cp1.X), num(cp1.Y), num(cp2.X), num(cp2.Y), num(end.X), num(end.Y))
		case g2.ArcToCmd:
			rx, ry, rot, large, sweep := scanner.Arc()
			fmt.Fprintf(sb, "A%v %v %v %d %d %v %v", num(rx), num(ry), num(rot), flag(large), flag(sweep), num(end.X), num(end.Y))
		case g2.CloseCmd:
			sb.WriteString("z")
		}
	}
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
