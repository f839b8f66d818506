package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/xqboard/pkg/board"
	"github.com/matzehuels/xqboard/pkg/board/sink"
	"github.com/matzehuels/xqboard/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
[board]
colour = "#ffffff"
line_width = 3

[paths]
svg = "out/board.svg"
png = "out/board.png"
png_scale = 2.0
`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cfg.Board.Colour != "#ffffff" {
		t.Errorf("Board.Colour = %q, want %q", cfg.Board.Colour, "#ffffff")
	}
	if cfg.Board.LineWidth != 3 {
		t.Errorf("Board.LineWidth = %d, want 3", cfg.Board.LineWidth)
	}
	if cfg.Board.LineColour != sink.DefaultLineColour {
		t.Errorf("Board.LineColour = %q, want default %q", cfg.Board.LineColour, sink.DefaultLineColour)
	}
	if cfg.Paths.SVG != "out/board.svg" || cfg.Paths.PNG != "out/board.png" {
		t.Errorf("Paths = %+v", cfg.Paths)
	}
	if cfg.Paths.CSS != Default().Paths.CSS {
		t.Errorf("Paths.CSS = %q, want default %q", cfg.Paths.CSS, Default().Paths.CSS)
	}
	if cfg.Paths.PNGScale != 2 {
		t.Errorf("Paths.PNGScale = %v, want 2", cfg.Paths.PNGScale)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Parse(nil) = %+v, want defaults", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"malformed", "[board\ncolour =", "decode toml"},
		{"unknown key", "[board]\ncolor = \"red\"", "board.color"},
		{"unknown table", "[geometry]\nrows = 12", "geometry"},
		{"zero width", "[board]\nline_width = 0", "line_width"},
		{"empty colour", "[board]\ncolour = \"\"", "board.colour"},
		{"injected style", "[board]\nline_colour = \"black;fill:red\"", "board.line_colour"},
		{"empty svg path", "[paths]\nsvg = \"\"", "paths.svg"},
		{"bad png path", "[paths]\npng = \"a\\tb\"", "paths.png"},
		{"negative scale", "[paths]\npng_scale = -1.0", "png_scale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Parse() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Parse() error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[board]\nline_width = 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, used, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if used != path {
		t.Errorf("Load() used %q, want %q", used, path)
	}
	if cfg.Board.LineWidth != 4 {
		t.Errorf("Board.LineWidth = %d, want 4", cfg.Board.LineWidth)
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadImplicit(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, used, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") without file error: %v", err)
	}
	if used != "" || cfg != Default() {
		t.Errorf("Load(\"\") = %+v from %q, want defaults", cfg, used)
	}

	if err := os.WriteFile(filepath.Join(dir, DefaultFile), []byte("[paths]\ncss = \"dist/styles.css\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, used, err = Load("")
	if err != nil {
		t.Fatalf("Load(\"\") with file error: %v", err)
	}
	if used != DefaultFile {
		t.Errorf("Load(\"\") used %q, want %q", used, DefaultFile)
	}
	if cfg.Paths.CSS != "dist/styles.css" {
		t.Errorf("Paths.CSS = %q, want %q", cfg.Paths.CSS, "dist/styles.css")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[board]\nline_width = -2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v, want %v", err, errors.ErrCodeInvalidConfig)
	}
}

func TestSVGOptions(t *testing.T) {
	cfg := Default()
	cfg.Board.Colour = "#eeeeee"
	cfg.Board.LineWidth = 5

	if got, want := cfg.Stroke(), (board.Stroke{Colour: "black", Width: 5}); got != want {
		t.Errorf("Stroke() = %+v, want %+v", got, want)
	}

	doc := string(sink.RenderSVG(board.Xiangqi(), cfg.SVGOptions()...))
	if !strings.Contains(doc, "fill:#eeeeee;stroke-width:5;stroke:black") {
		t.Error("SVGOptions() did not reach the rendered background")
	}
}
