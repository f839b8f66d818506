// Package config loads the optional xqboard.toml file.
//
// Only presentation and file locations are configurable. The board's
// geometry and decoration tables are fixed by the board style.
//
//	[board]
//	colour = "#FDD775"
//	line_colour = "black"
//	line_width = 2
//
//	[paths]
//	svg = "./assets/boards/xiangqiPlain.svg"
//	css_template = "./raw_styles.css"
//	css = "./styles.css"
//	png = ""
//	png_scale = 1.0
//
// Keys that are left out keep their defaults. Unknown keys are rejected so
// typos do not silently fall back to a default.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/xqboard/pkg/board"
	"github.com/matzehuels/xqboard/pkg/board/sink"
	"github.com/matzehuels/xqboard/pkg/errors"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "xqboard.toml"

// Config is the full configuration.
type Config struct {
	Board Board `toml:"board"`
	Paths Paths `toml:"paths"`
}

// Board holds presentation settings.
type Board struct {
	Colour     string `toml:"colour"`
	LineColour string `toml:"line_colour"`
	LineWidth  int    `toml:"line_width"`
}

// Paths holds input and output locations. An empty PNG path disables the
// raster preview.
type Paths struct {
	SVG         string  `toml:"svg"`
	CSSTemplate string  `toml:"css_template"`
	CSS         string  `toml:"css"`
	PNG         string  `toml:"png"`
	PNGScale    float64 `toml:"png_scale"`
}

// Default returns the settings the plain Xiangqi asset is built with.
func Default() Config {
	return Config{
		Board: Board{
			Colour:     sink.DefaultBoardColour,
			LineColour: sink.DefaultLineColour,
			LineWidth:  sink.DefaultLineWidth,
		},
		Paths: Paths{
			SVG:         "./assets/boards/xiangqiPlain.svg",
			CSSTemplate: "./raw_styles.css",
			CSS:         "./styles.css",
			PNGScale:    1,
		},
	}
}

// Load reads the configuration at path over the defaults. With an empty
// path it reads DefaultFile if present and otherwise returns the defaults.
// The second return value is the file actually read, or "".
func Load(path string) (Config, string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return Default(), "", nil
		}
		return Config{}, "", errors.WrapFile(err, "read config %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, path, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := errors.ValidateColour(c.Board.Colour); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "board.colour")
	}
	if err := errors.ValidateColour(c.Board.LineColour); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "board.line_colour")
	}
	if c.Board.LineWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "board.line_width must be positive, got %d", c.Board.LineWidth)
	}

	required := []struct{ key, path string }{
		{"paths.svg", c.Paths.SVG},
		{"paths.css_template", c.Paths.CSSTemplate},
		{"paths.css", c.Paths.CSS},
	}
	for _, r := range required {
		if err := errors.ValidateAssetPath(r.path); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", r.key)
		}
	}
	if c.Paths.PNG != "" {
		if err := errors.ValidateAssetPath(c.Paths.PNG); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "paths.png")
		}
	}
	if c.Paths.PNGScale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "paths.png_scale must be positive, got %v", c.Paths.PNGScale)
	}
	return nil
}

// Stroke returns the configured line style.
func (c Config) Stroke() board.Stroke {
	return board.Stroke{Colour: c.Board.LineColour, Width: c.Board.LineWidth}
}

// SVGOptions returns the sink options for this configuration.
func (c Config) SVGOptions() []sink.SVGOption {
	return []sink.SVGOption{
		sink.WithBoardColour(c.Board.Colour),
		sink.WithStroke(c.Stroke()),
	}
}
