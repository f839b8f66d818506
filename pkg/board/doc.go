// Package board computes the line primitives of a Xiangqi board.
//
// # Overview
//
// A board is described by a [Style]: pixel [Geometry] for the grid, the row
// after which interior files break for the river, the palace diagonals, and
// the star-point table. [Style.Segments] turns that description into an
// ordered list of [Segment] values in pixel space. Nothing here touches a
// file or a serializer; see the sink subpackage for SVG and PNG output.
//
// # Coordinates
//
// Cells are one-indexed (col, row) pairs counted from the top-left
// intersection. [Geometry.Pixel] maps a cell to pixels:
//
//	x = XPad + ColGap*(col-1)
//	y = YPad + RowGap*(row-1)
//
// # Layers
//
// Segments come out in paint order:
//
//  1. Grid: one horizontal per row, then the files. Edge files run the full
//     height; interior files stop at the river row and restart below it.
//  2. Palaces: the two diagonal crosses.
//  3. Stars: corner brackets around marked intersections. Points on an edge
//     file only draw the half that stays on the board ([StarLeft] or
//     [StarRight]).
//
// Every segment records the [Part] that produced it so callers can count or
// restyle layers without recomputing geometry.
//
// # Usage
//
//	s := board.Xiangqi()
//	for _, seg := range s.Segments() {
//	    fmt.Println(seg.From, seg.To)
//	}
package board
