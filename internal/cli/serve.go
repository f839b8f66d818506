package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/xqboard/pkg/board"
	"github.com/matzehuels/xqboard/pkg/config"
	xqerrors "github.com/matzehuels/xqboard/pkg/errors"
	"github.com/matzehuels/xqboard/pkg/preview"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command for the local preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		style styleFlags
		addr  string
	)
	tmplPath := templatePathFlag()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board and the inlined stylesheet for preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolveConfig(cmd, &style, tmplPath)
			if err != nil {
				return err
			}
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return xqerrors.Wrap(xqerrors.ErrCodeIO, err, "listen on %s", addr)
			}
			return c.runServe(cmd.Context(), ln, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	tmplPath.register(cmd, "t", "stylesheet template (default from config)")
	style.register(cmd)

	return cmd
}

// runServe serves on ln until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, ln net.Listener, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	srv := &http.Server{
		Handler: preview.NewHandler(preview.Options{
			Style:        board.Xiangqi(),
			SVGOptions:   cfg.SVGOptions(),
			AssetPath:    cfg.Paths.SVG,
			TemplatePath: cfg.Paths.CSSTemplate,
			PNGScale:     cfg.Paths.PNGScale,
			Logger:       logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	printInfo(c.Out, "Preview at %s", StyleLink.Render("http://"+ln.Addr().String()+"/"))

	select {
	case err := <-errCh:
		return xqerrors.Wrap(xqerrors.ErrCodeIO, err, "serve")
	case <-ctx.Done():
	}

	logger.Info("Shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return xqerrors.Wrap(xqerrors.ErrCodeIO, err, "shutdown")
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return xqerrors.Wrap(xqerrors.ErrCodeIO, err, "serve")
	}
	return nil
}
