package board

import (
	"slices"

	"github.com/matzehuels/xqboard/pkg/errors"
)

// Canvas and decoration constants of the Xiangqi board.
const (
	XiangqiRows     = 10
	XiangqiCols     = 9
	XiangqiWidth    = 900
	XiangqiHeight   = 1000
	XiangqiRiverRow = 5
)

// Style is a complete board description: grid geometry, canvas size and the
// fixed decoration tables.
type Style struct {
	Name          string
	Width, Height int
	Geometry      Geometry
	RiverRow      int
	Palaces       [][2]Cell
	Stars         []StarPoint
}

var xiangqi = Style{
	Name:   "xiangqi",
	Width:  XiangqiWidth,
	Height: XiangqiHeight,
	Geometry: Geometry{
		Rows:    XiangqiRows,
		Cols:    XiangqiCols,
		XPad:    50,
		YPad:    50,
		ColGap:  100,
		RowGap:  100,
		Bracket: StarGeometry{Gap: 7, XLength: 20, YLength: 20},
	},
	RiverRow: XiangqiRiverRow,
	Palaces: [][2]Cell{
		{C(4, 1), C(6, 3)},
		{C(4, 3), C(6, 1)},
		{C(4, 8), C(6, 10)},
		{C(4, 10), C(6, 8)},
	},
	Stars: []StarPoint{
		{C(2, 3), StarBoth},
		{C(8, 3), StarBoth},
		{C(1, 4), StarRight},
		{C(3, 4), StarBoth},
		{C(5, 4), StarBoth},
		{C(7, 4), StarBoth},
		{C(9, 4), StarLeft},

		{C(2, 8), StarBoth},
		{C(8, 8), StarBoth},
		{C(1, 7), StarRight},
		{C(3, 7), StarBoth},
		{C(5, 7), StarBoth},
		{C(7, 7), StarBoth},
		{C(9, 7), StarLeft},
	},
}

// Xiangqi returns the plain Xiangqi board: 9 files, 10 ranks, 100px spacing
// on a 900x1000 canvas. Each call returns an independent copy.
func Xiangqi() Style {
	s := xiangqi
	s.Palaces = slices.Clone(xiangqi.Palaces)
	s.Stars = slices.Clone(xiangqi.Stars)
	return s
}

// Validate checks that the grid is large enough to draw and that the river
// row, if any, falls strictly inside it.
func (s Style) Validate() error {
	g := s.Geometry
	if g.Rows < 2 || g.Cols < 2 {
		return errors.New(errors.ErrCodeInvalidInput, "board %q needs at least 2x2 intersections, got %dx%d", s.Name, g.Cols, g.Rows)
	}
	if s.RiverRow < 1 || s.RiverRow >= g.Rows {
		return errors.New(errors.ErrCodeInvalidInput, "board %q river row %d outside 1..%d", s.Name, s.RiverRow, g.Rows-1)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "board %q canvas must be positive, got %dx%d", s.Name, s.Width, s.Height)
	}
	return nil
}

// Segments returns every line of the board in paint order:
// grid, palaces, then stars in table order.
func (s Style) Segments() []Segment {
	g := s.Geometry
	segs := g.Grid(s.RiverRow)
	segs = append(segs, g.Diagonals(s.Palaces)...)
	for _, p := range s.Stars {
		segs = append(segs, g.Star(p)...)
	}
	return segs
}

// Count tallies segments by part.
func Count(segs []Segment) map[Part]int {
	counts := make(map[Part]int, len(partNames))
	for _, s := range segs {
		counts[s.Part]++
	}
	return counts
}
