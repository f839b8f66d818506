// Package sink writes board segments to output formats.
//
// # Overview
//
// A "sink" turns the segments of a [board.Style] into bytes:
//
//   - SVG: the vector asset, written with github.com/ajstarks/svgo
//   - PNG: a raster preview of that SVG, drawn in-process with
//     github.com/srwiley/oksvg and github.com/srwiley/rasterx
//
// # SVG Output
//
// [RenderSVG] emits an XML declaration, an <svg> root whose viewBox equals
// the style's canvas, a full-canvas background <rect>, then one <line> per
// segment in paint order:
//
//	svg := sink.RenderSVG(board.Xiangqi(),
//	    sink.WithBoardColour("#FDD775"),
//	    sink.WithStroke(board.Stroke{Colour: "black", Width: 2}),
//	)
//
// # PNG Output
//
// [RenderPNG] rasterizes any SVG document produced by [RenderSVG]:
//
//	png, err := sink.RenderPNG(svg, 2.0) // 2x scale
//
// [board.Style]: github.com/matzehuels/xqboard/pkg/board.Style
package sink
