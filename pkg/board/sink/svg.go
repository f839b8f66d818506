package sink

import (
	"bytes"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/xqboard/pkg/board"
)

// Presentation defaults of the plain Xiangqi asset.
const (
	DefaultBoardColour = "#FDD775"
	DefaultLineColour  = "black"
	DefaultLineWidth   = 2
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	boardColour string
	stroke      board.Stroke
}

// WithBoardColour sets the background fill.
func WithBoardColour(c string) SVGOption { return func(r *svgRenderer) { r.boardColour = c } }

// WithStroke sets the style used for the frame and for every segment that
// has no stroke of its own.
func WithStroke(s board.Stroke) SVGOption { return func(r *svgRenderer) { r.stroke = s } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		boardColour: DefaultBoardColour,
		stroke:      board.Stroke{Colour: DefaultLineColour, Width: DefaultLineWidth},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG serializes the style's segments as an SVG document.
func RenderSVG(s board.Style, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(s.Width, s.Height, 0, 0, s.Width, s.Height)

	lineStyle := r.stroke.CSS()
	canvas.Rect(0, 0, s.Width, s.Height, "fill:"+r.boardColour+";"+lineStyle)

	for _, seg := range s.Segments() {
		style := lineStyle
		if !seg.Stroke.IsZero() {
			style = seg.Stroke.CSS()
		}
		canvas.Line(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y, style)
	}

	canvas.End()
	return buf.Bytes()
}

// WriteSVG renders the style and writes the document to w.
func WriteSVG(w io.Writer, s board.Style, opts ...SVGOption) error {
	_, err := w.Write(RenderSVG(s, opts...))
	return err
}
