package board

import "fmt"

// Point is a position in pixel space.
type Point struct {
	X, Y int
}

// String returns the point as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Part identifies which layer of the board produced a segment.
type Part int

const (
	PartGrid   Part = iota // rank and file lines
	PartPalace             // palace diagonals
	PartStar               // star-point brackets
)

var partNames = [...]string{
	PartGrid:   "grid",
	PartPalace: "palace",
	PartStar:   "star",
}

func (p Part) String() string {
	if p < 0 || int(p) >= len(partNames) {
		return fmt.Sprintf("part(%d)", int(p))
	}
	return partNames[p]
}

// Stroke is the line style of a segment. The zero value means the segment
// inherits the document default.
type Stroke struct {
	Colour string
	Width  int
}

// IsZero reports whether s carries no styling of its own.
func (s Stroke) IsZero() bool { return s.Colour == "" && s.Width == 0 }

// CSS returns s as an inline style declaration, e.g. "stroke-width:2;stroke:black".
func (s Stroke) CSS() string {
	return fmt.Sprintf("stroke-width:%d;stroke:%s", s.Width, s.Colour)
}

// Segment is a straight line between two pixel positions.
type Segment struct {
	From, To Point
	Part     Part
	Stroke   Stroke
}

// Endpoints returns the segment as a pair usable as a map key.
func (s Segment) Endpoints() [2]Point { return [2]Point{s.From, s.To} }
