package board

import "fmt"

// StarGeometry sizes the corner brackets drawn around a star point.
// Gap is the offset of each bracket corner from the intersection;
// XLength and YLength are the arm lengths.
type StarGeometry struct {
	Gap     int
	XLength int
	YLength int
}

// StarVariant selects which bracket halves a star point draws.
type StarVariant int

const (
	StarBoth  StarVariant = iota // both halves, for interior points
	StarLeft                     // left half only, for points on the last file
	StarRight                    // right half only, for points on the first file
)

func (v StarVariant) String() string {
	switch v {
	case StarBoth:
		return "both"
	case StarLeft:
		return "left"
	case StarRight:
		return "right"
	}
	return fmt.Sprintf("StarVariant(%d)", int(v))
}

// StarPoint marks a notable intersection.
type StarPoint struct {
	Cell    Cell
	Variant StarVariant
}

// Star returns the bracket segments for p: 4 per half, left half first.
func (g Geometry) Star(p StarPoint) []Segment {
	switch p.Variant {
	case StarLeft:
		return g.leftStar(p.Cell)
	case StarRight:
		return g.rightStar(p.Cell)
	default:
		return append(g.leftStar(p.Cell), g.rightStar(p.Cell)...)
	}
}

func (g Geometry) rightStar(c Cell) []Segment {
	return g.starHalf(c, 1)
}

func (g Geometry) leftStar(c Cell) []Segment {
	return g.starHalf(c, -1)
}

// starHalf draws one side of a star. dir is +1 for the right half and -1
// for the left; horizontal arms are always emitted left-to-right.
func (g Geometry) starHalf(c Cell, dir int) []Segment {
	o := g.Pixel(c)
	st := g.Bracket
	x := o.X + dir*st.Gap
	yUp := o.Y - st.Gap
	yDown := o.Y + st.Gap
	xArm := x + dir*st.XLength

	seg := func(x1, y1, x2, y2 int) Segment {
		return Segment{From: Point{x1, y1}, To: Point{x2, y2}, Part: PartStar}
	}
	horiz := func(y int) Segment {
		return seg(min(x, xArm), y, max(x, xArm), y)
	}

	return []Segment{
		horiz(yUp),
		seg(x, yUp-st.YLength, x, yUp),
		horiz(yDown),
		seg(x, yDown, x, yDown+st.YLength),
	}
}
