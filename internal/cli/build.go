package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/xqboard/pkg/cssinline"
	"github.com/matzehuels/xqboard/pkg/observability"
)

// buildCommand creates the build command: board followed by embed.
func (c *CLI) buildCommand() *cobra.Command {
	var style styleFlags
	svgPath, tmplPath, cssPath, pngPath := svgPathFlag(), templatePathFlag(), cssPathFlag(), pngPathFlag()

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the board SVG and the stylesheet that inlines it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.resolveConfig(cmd, &style, svgPath, tmplPath, cssPath, pngPath)
			if err != nil {
				return err
			}

			doc, err := c.writeBoard(ctx, cfg)
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(ctx))
			res, err := cssinline.InlineDocument(doc, cfg.Paths.SVG, cfg.Paths.CSSTemplate, cfg.Paths.CSS)
			observability.Build().OnEmbed(ctx, cfg.Paths.CSSTemplate, res.Replacements, err)
			if err != nil {
				return err
			}
			prog.done("Wrote " + res.Output)
			c.reportEmbed(cfg, res)
			return nil
		},
	}

	svgPath.register(cmd, "", "SVG output path (default from config)")
	tmplPath.register(cmd, "t", "stylesheet template (default from config)")
	cssPath.register(cmd, "o", "stylesheet output path (default from config)")
	pngPath.register(cmd, "", "also write a PNG preview to this path")
	style.register(cmd)

	return cmd
}
