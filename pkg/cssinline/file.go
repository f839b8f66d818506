package cssinline

import (
	"github.com/matzehuels/xqboard/pkg/io"
)

// Result describes one stylesheet written by InlineFile.
type Result struct {
	Output       string // path of the written stylesheet
	Replacements int    // sentinel occurrences replaced
	URIBytes     int    // length of the embedded data URI
}

// InlineFile reads the SVG at assetPath and the template at templatePath,
// inlines the SVG and writes the stylesheet to outPath. The sentinel is
// built from assetPath exactly as given. A template without any sentinel is
// copied unchanged.
func InlineFile(assetPath, templatePath, outPath string) (Result, error) {
	doc, err := io.ReadFile(assetPath)
	if err != nil {
		return Result{}, err
	}
	return InlineDocument(doc, assetPath, templatePath, outPath)
}

// InlineDocument is InlineFile for an SVG already held in memory.
// assetPath only names the sentinel to replace.
func InlineDocument(doc []byte, assetPath, templatePath, outPath string) (Result, error) {
	tmpl, err := io.ReadFile(templatePath)
	if err != nil {
		return Result{}, err
	}

	out, n := Inline(string(tmpl), assetPath, doc)
	if err := io.WriteFile(outPath, []byte(out)); err != nil {
		return Result{}, err
	}
	return Result{Output: outPath, Replacements: n, URIBytes: len(DataURI(doc))}, nil
}
