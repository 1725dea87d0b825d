package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sptree/config"
	"github.com/katalvlaran/sptree/query"
)

// open loads the configured graph, applies flag overrides and publishes the
// first snapshot.
func open(cmd *cobra.Command, flags *globalFlags) (*query.Facade, *query.Snapshot, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg := config.Default()
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
		logger.Debug("loaded config", "path", flags.config, "vertices", cfg.Vertices, "edges", len(cfg.Edges))
	}
	if cmd.Flags().Changed("source") {
		cfg.Source = flags.source
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = flags.strategy
	}

	g, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	engine, err := cfg.EngineOptions()
	if err != nil {
		return nil, nil, err
	}

	f := query.New(g,
		query.WithLogger(logger),
		query.WithEngineOptions(engine...),
	)
	prog := newProgress(logger)
	snap, err := f.Compute(ctx, cfg.Source)
	if err != nil {
		return nil, nil, err
	}
	prog.done("computed shortest paths", "source", cfg.Source, "strategy", snap.Tables.Strategy)

	return f, snap, nil
}
