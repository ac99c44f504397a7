package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"folio/pkg/document"
)

func newInspectCmd(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [script]",
		Short: "Lay out a document script and print a per-page report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, g, args[0])
		},
	}
}

func runInspect(cmd *cobra.Command, g *globalOpts, scriptPath string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	root, cfg, err := loadDocument(ctx, g, scriptPath)
	if err != nil {
		return err
	}
	opts := cfg.DocumentOptions(logger)

	discard := document.SinkFunc(func(context.Context, document.Page) error { return nil })
	stats, err := document.Render(ctx, root, opts, discard)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", scriptPath, err)
	}

	out := cmd.OutOrStdout()
	area := opts.ContentArea()
	fmt.Fprintln(out, StyleTitle.Render(scriptPath))
	printKeyValue(out, "page", fmt.Sprintf("%gx%g", opts.PageSize.Width, opts.PageSize.Height))
	printKeyValue(out, "content", fmt.Sprintf("%gx%g", area.Width, area.Height))
	printKeyValue(out, "pages", fmt.Sprintf("%d", stats.PageCount()))
	fmt.Fprintln(out, pageTable(stats.Pages, area.Height))
	return nil
}
