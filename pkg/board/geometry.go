package board

// Cell is a one-indexed (column, row) intersection counted from the top left.
type Cell struct {
	Col, Row int
}

// C is shorthand for Cell{Col: col, Row: row}.
func C(col, row int) Cell { return Cell{Col: col, Row: row} }

// Geometry is the pixel layout of a board's grid.
// Rows and Cols count intersections and must both be at least 2.
type Geometry struct {
	Rows, Cols     int
	XPad, YPad     int
	ColGap, RowGap int
	Bracket        StarGeometry
}

// Pixel maps a cell to its pixel position. Cells outside the board are
// mapped by the same formula without complaint.
func (g Geometry) Pixel(c Cell) Point {
	return Point{
		X: g.XPad + g.ColGap*(c.Col-1),
		Y: g.YPad + g.RowGap*(c.Row-1),
	}
}

// Line returns the segment joining two cells.
func (g Geometry) Line(a, b Cell) Segment {
	return Segment{From: g.Pixel(a), To: g.Pixel(b)}
}

// Grid returns the rank and file lines. Interior files are split into
// rows 1..riverRow and riverRow+1..Rows; the two edge files are continuous.
func (g Geometry) Grid(riverRow int) []Segment {
	segs := make([]Segment, 0, g.Rows+2*(g.Cols-2)+2)
	add := func(a, b Cell) {
		s := g.Line(a, b)
		s.Part = PartGrid
		segs = append(segs, s)
	}

	for r := 1; r <= g.Rows; r++ {
		add(C(1, r), C(g.Cols, r))
	}

	add(C(1, 1), C(1, g.Rows))
	for c := 2; c < g.Cols; c++ {
		add(C(c, 1), C(c, riverRow))
		add(C(c, riverRow+1), C(c, g.Rows))
	}
	add(C(g.Cols, 1), C(g.Cols, g.Rows))

	return segs
}

// Diagonals returns one palace segment per cell pair, in order.
func (g Geometry) Diagonals(pairs [][2]Cell) []Segment {
	segs := make([]Segment, 0, len(pairs))
	for _, p := range pairs {
		s := g.Line(p[0], p[1])
		s.Part = PartPalace
		segs = append(segs, s)
	}
	return segs
}
