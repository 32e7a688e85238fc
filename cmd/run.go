package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roeland/learntrack/internal/app"
	"github.com/roeland/learntrack/internal/catalog"
	"github.com/roeland/learntrack/internal/progress"
	"github.com/roeland/learntrack/internal/store"
)

// runApp opens the store, builds the engine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, cat, engine, err := openEnvironment(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Catalog:   cat,
		Engine:    engine,
		EventRepo: st.EventRepo(),
	})
}

// openEnvironment wires the store, catalog, and engine shared by the TUI and
// the one-shot subcommands. The caller owns closing the returned store.
func openEnvironment(cmd *cobra.Command) (*store.Store, *catalog.Catalog, *progress.Engine, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	cat, err := catalog.Load(ctx, resolveProvider(cmd))
	if err != nil {
		st.Close()
		return nil, nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	engine := progress.NewEngine(cat, st.ProgressRepo(),
		progress.WithJournal(store.NewJournal(st.EventRepo())))
	return st, cat, engine, nil
}
