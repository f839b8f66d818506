// Package cssinline embeds an SVG document into a stylesheet as a data URI.
//
// # Overview
//
// A template stylesheet refers to the board asset through a sentinel string
// that names the asset's path, quotes included:
//
//	.board { background-image: "SVG-REPLACE ./assets/boards/xiangqiPlain.svg"; }
//
// [Inline] replaces every occurrence of that sentinel with
//
//	url("data:image/svg+xml;charset=utf8,<escaped document>")
//
// and leaves every other byte of the template alone.
//
// # Escaping
//
// [Escape] percent-encodes the document with uppercase hex. ASCII letters,
// digits, "_.-~" and the characters "/ =:;" pass through. Both quote
// characters become a literal apostrophe so the escaped text can sit inside
// the double-quoted url(...) without further escaping; SVG accepts either
// quote around attribute values.
package cssinline
