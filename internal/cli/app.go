// Package cli implements the one-shot management commands that operate on
// the item store directly, without going through the API server.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/avoronov/itemkeeper/internal/flagx"
	"github.com/avoronov/itemkeeper/internal/logging"
	"github.com/avoronov/itemkeeper/internal/server/config"
	"github.com/avoronov/itemkeeper/internal/server/pricing"
	"github.com/avoronov/itemkeeper/internal/server/repositories/repomanager"
	"github.com/avoronov/itemkeeper/internal/server/services"
)

// Syncer runs price syncs synchronously.
type Syncer interface {
	SyncItemByID(ctx context.Context, id int64, simulateDelay bool) (string, error)
	SyncAll(ctx context.Context, batchSize int) (int, error)
}

// Generator bulk-creates fake items.
type Generator interface {
	Generate(ctx context.Context, count int) (int, error)
}

type App struct {
	config    *config.Config
	syncer    Syncer
	generator Generator
	out       io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(slog)

	db, err := repomanager.Open(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &App{
		config:    c,
		syncer:    pricing.NewSyncer(db, rm, logger),
		generator: services.NewGeneratorService(db, rm, logger),
		out:       os.Stdout,
	}, nil
}

// Run dispatches to the named subcommand. Args is the command line after
// the binary name, e.g. ["sync", "-item", "42"].
func (a *App) Run(ctx context.Context, args []string) error {

	if len(args) == 0 {
		return fmt.Errorf("usage: itemkeeper-cli <sync|generate> [flags]")
	}

	switch args[0] {
	case "sync":
		return a.runSync(ctx, args[1:])
	case "generate":
		return a.runGenerate(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// runSync recomputes external prices. With -item it syncs a single item and
// prints the outcome; without it the whole store is synced. The single-item
// path skips the simulated provider delay so management runs do not sit on
// a row lock longer than needed.
func (a *App) runSync(ctx context.Context, args []string) error {

	fs := flag.NewFlagSet("sync", flag.ContinueOnError)
	itemID := fs.Int64("item", 0, "sync only the item with this ID")
	batchSize := fs.Int("batch", a.config.SyncBatchSize, "bulk sync batch size")

	// only the flags handled here; the rest belongs to config
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-item", "-batch"})); err != nil {
		return err
	}

	if *itemID != 0 {
		msg, err := a.syncer.SyncItemByID(ctx, *itemID, false)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, msg)
		return nil
	}

	n, err := a.syncer.SyncAll(ctx, *batchSize)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "synced %d items\n", n)
	return nil
}

// runGenerate fills the store with fake items.
func (a *App) runGenerate(ctx context.Context, args []string) error {

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	count := fs.Int("count", services.DefaultGenerateCount, "number of items to generate")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-count"})); err != nil {
		return err
	}

	n, err := a.generator.Generate(ctx, *count)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "generated %d items\n", n)
	return nil
}
