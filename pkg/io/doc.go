// Package io reads and writes the asset files xqboard produces.
//
// # Overview
//
// Generation is a one-shot build step, so every write is all-or-nothing:
// [WriteFile] stages the bytes in a temporary file next to the destination
// and renames it into place. A failed run never leaves a truncated SVG or
// stylesheet behind.
//
// Errors are returned as *errors.Error values from pkg/errors:
//
//   - FILE_NOT_FOUND when an input does not exist
//   - IO_ERROR for every other filesystem failure
//
// # Usage
//
//	doc, err := io.ReadFile("./assets/boards/xiangqiPlain.svg")
//	if err != nil {
//	    return err
//	}
//	err = io.WriteFile("./styles.css", out)
package io
