package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/xqboard/pkg/config"
)

// styleFlags override the [board] table of the config file.
type styleFlags struct {
	colour     string
	lineColour string
	lineWidth  int
}

func (f *styleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.colour, "colour", "", "board background colour (default from config)")
	cmd.Flags().StringVar(&f.lineColour, "line-colour", "", "line colour (default from config)")
	cmd.Flags().IntVar(&f.lineWidth, "line-width", 0, "line width in pixels (default from config)")
}

// apply copies every flag the user actually set into cfg.
func (f *styleFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("colour") {
		cfg.Board.Colour = f.colour
	}
	if cmd.Flags().Changed("line-colour") {
		cfg.Board.LineColour = f.lineColour
	}
	if cmd.Flags().Changed("line-width") {
		cfg.Board.LineWidth = f.lineWidth
	}
}

// pathFlag overrides a single config path when set.
type pathFlag struct {
	name  string
	value string
	dst   func(*config.Config) *string
}

func (p *pathFlag) register(cmd *cobra.Command, short, usage string) {
	cmd.Flags().StringVarP(&p.value, p.name, short, "", usage)
}

func (p *pathFlag) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed(p.name) {
		*p.dst(cfg) = p.value
	}
}

// resolveConfig applies flag overrides to the loaded config and validates
// the result.
func (c *CLI) resolveConfig(cmd *cobra.Command, style *styleFlags, paths ...*pathFlag) (config.Config, error) {
	cfg := c.cfg
	if style != nil {
		style.apply(cmd, &cfg)
	}
	for _, p := range paths {
		p.apply(cmd, &cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func svgPathFlag() *pathFlag {
	return &pathFlag{name: "svg", dst: func(c *config.Config) *string { return &c.Paths.SVG }}
}

func templatePathFlag() *pathFlag {
	return &pathFlag{name: "template", dst: func(c *config.Config) *string { return &c.Paths.CSSTemplate }}
}

func cssPathFlag() *pathFlag {
	return &pathFlag{name: "css", dst: func(c *config.Config) *string { return &c.Paths.CSS }}
}

func pngPathFlag() *pathFlag {
	return &pathFlag{name: "png", dst: func(c *config.Config) *string { return &c.Paths.PNG }}
}
