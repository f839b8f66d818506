package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/xqboard/pkg/config"
	"github.com/matzehuels/xqboard/pkg/cssinline"
	"github.com/matzehuels/xqboard/pkg/observability"
)

// embedCommand creates the embed command that inlines an existing SVG.
func (c *CLI) embedCommand() *cobra.Command {
	svgPath, tmplPath, cssPath := svgPathFlag(), templatePathFlag(), cssPathFlag()

	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Inline an SVG into the stylesheet template",
		Long: `Inline an SVG into the stylesheet template.

Every occurrence of "SVG-REPLACE <svg path>" (double quotes included) in the
template is replaced with url("data:image/svg+xml;charset=utf8,...") and the
result is written to the CSS output path. The sentinel uses the SVG path
exactly as configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolveConfig(cmd, nil, svgPath, tmplPath, cssPath)
			if err != nil {
				return err
			}
			return c.runEmbed(cmd.Context(), cfg)
		},
	}

	svgPath.register(cmd, "", "SVG to inline (default from config)")
	tmplPath.register(cmd, "t", "stylesheet template (default from config)")
	cssPath.register(cmd, "o", "stylesheet output path (default from config)")

	return cmd
}

func (c *CLI) runEmbed(ctx context.Context, cfg config.Config) error {
	prog := newProgress(loggerFromContext(ctx))

	res, err := cssinline.InlineFile(cfg.Paths.SVG, cfg.Paths.CSSTemplate, cfg.Paths.CSS)
	observability.Build().OnEmbed(ctx, cfg.Paths.CSSTemplate, res.Replacements, err)
	if err != nil {
		return err
	}
	prog.done("Wrote " + res.Output)
	c.reportEmbed(cfg, res)
	return nil
}

func (c *CLI) reportEmbed(cfg config.Config, res cssinline.Result) {
	if res.Replacements == 0 {
		printWarning(c.Out, "No %s found in %s; stylesheet copied unchanged", cssinline.Sentinel(cfg.Paths.SVG), cfg.Paths.CSSTemplate)
	} else {
		printSuccess(c.Out, "Stylesheet written (%d replacement(s), %d byte URI)", res.Replacements, res.URIBytes)
	}
	printFile(c.Out, res.Output)
}
