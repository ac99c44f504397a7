package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"folio/pkg/document"
)

// renderOpts holds the command-line flags for the render command. Set
// flags override the settings file.
type renderOpts struct {
	output   string
	prefix   string
	maxPages int
}

func newRenderCmd(g *globalOpts) *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [script]",
		Short: "Render a document script to PNG pages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, g, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output directory (default from settings, \"out\")")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "page file name prefix")
	cmd.Flags().IntVar(&opts.maxPages, "max-pages", 0, "stop after this many pages")

	return cmd
}

func runRender(cmd *cobra.Command, g *globalOpts, scriptPath string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	root, cfg, err := loadDocument(ctx, g, scriptPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("out") {
		cfg.Output.Dir = opts.output
	}
	if cmd.Flags().Changed("prefix") {
		cfg.Output.Prefix = opts.prefix
	}
	if cmd.Flags().Changed("max-pages") {
		cfg.Page.MaxPages = opts.maxPages
	}

	dir := cfg.Sink()
	var written []string
	sink := document.SinkFunc(func(ctx context.Context, p document.Page) error {
		if err := dir.WritePage(ctx, p); err != nil {
			return err
		}
		written = append(written, dir.Path(p.Number))
		return nil
	})

	stats, err := document.Render(ctx, root, cfg.DocumentOptions(logger), sink)
	if err != nil {
		return fmt.Errorf("render %s: %w", scriptPath, err)
	}
	prog.done(fmt.Sprintf("Rendered %d pages", stats.PageCount()))

	out := cmd.OutOrStdout()
	printSuccess(out, "Rendered %s", StyleNumber.Render(fmt.Sprintf("%d pages", stats.PageCount())))
	for _, path := range written {
		printFile(out, path)
	}
	return nil
}
