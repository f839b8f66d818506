package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/xqboard/pkg/board"
	"github.com/matzehuels/xqboard/pkg/board/sink"
	"github.com/matzehuels/xqboard/pkg/config"
	"github.com/matzehuels/xqboard/pkg/io"
	"github.com/matzehuels/xqboard/pkg/observability"
)

// boardCommand creates the board command that writes the SVG asset.
func (c *CLI) boardCommand() *cobra.Command {
	var (
		style styleFlags
		scale float64
	)
	svgPath, pngPath := svgPathFlag(), pngPathFlag()

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Write the board SVG (and optionally a PNG preview)",
		Long: `Write the board SVG.

The board is a 9x10 Xiangqi grid on a 900x1000 canvas with the river gap,
both palaces and the star-point brackets. Colours and line width come from
the config file unless overridden by flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolveConfig(cmd, &style, svgPath, pngPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("scale") {
				cfg.Paths.PNGScale = scale
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			_, err = c.writeBoard(cmd.Context(), cfg)
			return err
		},
	}

	svgPath.register(cmd, "o", "SVG output path (default from config)")
	pngPath.register(cmd, "", "also write a PNG preview to this path")
	cmd.Flags().Float64Var(&scale, "scale", 1, "PNG scale factor")
	style.register(cmd)

	return cmd
}

// writeBoard renders the board, writes the SVG and, if configured, the PNG.
// It returns the SVG document.
func (c *CLI) writeBoard(ctx context.Context, cfg config.Config) ([]byte, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	style := board.Xiangqi()
	counts := board.Count(style.Segments())
	logger.Debug("board layout",
		"style", style.Name,
		"grid", counts[board.PartGrid],
		"palace", counts[board.PartPalace],
		"star", counts[board.PartStar])

	doc := sink.RenderSVG(style, cfg.SVGOptions()...)
	err := io.WriteFile(cfg.Paths.SVG, doc)
	observability.Build().OnRender(ctx, "svg", len(doc), time.Since(prog.start), err)
	if err != nil {
		return nil, err
	}
	prog.done("Wrote " + cfg.Paths.SVG)
	printSuccess(c.Out, "Board written")
	printFile(c.Out, cfg.Paths.SVG)
	printStats(c.Out, counts[board.PartGrid], counts[board.PartPalace], counts[board.PartStar])

	if cfg.Paths.PNG == "" {
		return doc, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prog = newProgress(logger)
	data, err := sink.RenderPNG(doc, cfg.Paths.PNGScale)
	if err == nil {
		err = io.WriteFile(cfg.Paths.PNG, data)
	}
	observability.Build().OnRender(ctx, "png", len(data), time.Since(prog.start), err)
	if err != nil {
		return nil, err
	}
	prog.done("Wrote " + cfg.Paths.PNG)
	printFile(c.Out, cfg.Paths.PNG)

	return doc, nil
}
