// Package server initializes and runs the main application server.
// It opens the database, wires the task queue and price sync workers,
// handles graceful shutdown, and starts the gRPC API.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avoronov/itemkeeper/internal/logging"
	"github.com/avoronov/itemkeeper/internal/server/config"
	"github.com/avoronov/itemkeeper/internal/server/pricing"
	"github.com/avoronov/itemkeeper/internal/server/repositories/repomanager"
	"github.com/avoronov/itemkeeper/internal/server/scheduler"
	"github.com/avoronov/itemkeeper/internal/server/services"
	"github.com/avoronov/itemkeeper/internal/server/tasks"

	gs "github.com/avoronov/itemkeeper/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	queue       *tasks.Queue
	scheduler   *scheduler.Scheduler
	itemService *services.ItemService
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	db, err := repomanager.Open(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	syncer := pricing.NewSyncer(db, rm, logger)

	queue := tasks.NewQueue(c.QueueCapacity, logger)
	queue.Register(tasks.TaskSyncItem, func(ctx context.Context, args tasks.Args) (string, error) {
		return syncer.SyncItemByID(ctx, args.ItemID, true)
	})
	queue.Register(tasks.TaskSyncAll, func(ctx context.Context, args tasks.Args) (string, error) {
		n, err := syncer.SyncAll(ctx, args.BatchSize)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("synced %d items", n), nil
	})

	sched := scheduler.NewScheduler(queue, c.SyncInterval, c.SyncBatchSize, logger)

	is := services.NewItemService(db, rm, queue, logger)

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		queue:       queue,
		scheduler:   sched,
		itemService: is,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.itemService, app.queue)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	app.queue.Run(ctx, app.config.WorkerCount)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.scheduler.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	// let queued tasks finish before closing the database
	app.queue.Close()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	app.logger.Info(ctx, "App stopped")
}
