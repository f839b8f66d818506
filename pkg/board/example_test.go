package board_test

import (
	"fmt"

	"github.com/matzehuels/xqboard/pkg/board"
)

func ExampleXiangqi() {
	s := board.Xiangqi()
	segs := s.Segments()
	counts := board.Count(segs)

	fmt.Println("Canvas:", s.Width, "x", s.Height)
	fmt.Println("Grid:", counts[board.PartGrid])
	fmt.Println("Palace:", counts[board.PartPalace])
	fmt.Println("Star:", counts[board.PartStar])
	// Output:
	// Canvas: 900 x 1000
	// Grid: 26
	// Palace: 4
	// Star: 96
}

func ExampleGeometry_Pixel() {
	g := board.Xiangqi().Geometry
	fmt.Println(g.Pixel(board.C(1, 1)))
	fmt.Println(g.Pixel(board.C(9, 10)))
	// Output:
	// (50,50)
	// (850,950)
}

func ExampleGeometry_Star() {
	g := board.Xiangqi().Geometry
	for _, s := range g.Star(board.StarPoint{Cell: board.C(1, 4), Variant: board.StarRight}) {
		fmt.Println(s.From, s.To)
	}
	// Output:
	// (57,343) (77,343)
	// (57,323) (57,343)
	// (57,357) (77,357)
	// (57,357) (57,377)
}
