package cssinline

import (
	"strings"
)

// DataURIPrefix starts every generated URI.
const DataURIPrefix = "data:image/svg+xml;charset=utf8,"

// safe lists the bytes besides [A-Za-z0-9] that Escape leaves untouched.
const safe = "_.-~/ =:;"

const upperhex = "0123456789ABCDEF"

func isSafe(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	}
	return strings.IndexByte(safe, b) >= 0
}

// Escape percent-encodes doc for use in a data URI.
func Escape(doc []byte) string {
	var sb strings.Builder
	sb.Grow(len(doc) + len(doc)/2)
	for _, b := range doc {
		switch {
		case isSafe(b):
			sb.WriteByte(b)
		case b == '"' || b == '\'':
			sb.WriteByte('\'')
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperhex[b>>4])
			sb.WriteByte(upperhex[b&0x0F])
		}
	}
	return sb.String()
}

// DataURI returns doc as a data:image/svg+xml URI.
func DataURI(doc []byte) string {
	return DataURIPrefix + Escape(doc)
}

// URL returns doc wrapped as a CSS url() value.
func URL(doc []byte) string {
	return `url("` + DataURI(doc) + `")`
}

// Sentinel returns the placeholder, including its double quotes, that a
// template uses to refer to the asset at assetPath.
func Sentinel(assetPath string) string {
	return `"SVG-REPLACE ` + assetPath + `"`
}

// Inline replaces every sentinel for assetPath in template with the CSS
// url() of doc. It returns the new stylesheet and the number of
// replacements made.
func Inline(template, assetPath string, doc []byte) (string, int) {
	sentinel := Sentinel(assetPath)
	n := strings.Count(template, sentinel)
	if n == 0 {
		return template, 0
	}
	return strings.ReplaceAll(template, sentinel, URL(doc)), n
}
