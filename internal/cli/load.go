package cli

import (
	"context"
	"fmt"

	"folio/pkg/config"
	"folio/pkg/layout"
	"folio/pkg/script"
)

// loadDocument reads the settings file and evaluates the script against
// them.
func loadDocument(ctx context.Context, g *globalOpts, scriptPath string) (layout.Node, config.Config, error) {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	if g.configPath != "" {
		logger.Debug("loaded settings", "path", g.configPath)
	}

	engine := script.New(
		script.WithLogger(logger),
		script.WithLayoutOptions(cfg.LayoutOptions(logger)...),
	)
	root, err := engine.RunFile(scriptPath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("load document: %w", err)
	}
	return root, cfg, nil
}
