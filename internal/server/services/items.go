// Package services contains the application services sitting between the
// transport layer and the repositories.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avoronov/itemkeeper/internal/common"
	"github.com/avoronov/itemkeeper/internal/logging"
	"github.com/avoronov/itemkeeper/internal/server/models"
	"github.com/avoronov/itemkeeper/internal/server/repositories/repomanager"
	"github.com/avoronov/itemkeeper/internal/server/tasks"
)

// Enqueuer is the slice of the task queue the item service needs.
type Enqueuer interface {
	Enqueue(name string, args tasks.Args) (string, error)
}

// ItemService implements item CRUD plus the async sync triggers. Creating
// an item explicitly enqueues a single-item price sync, so the first
// external price shows up shortly after creation.
type ItemService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	queue  Enqueuer
	logger logging.Logger
}

func NewItemService(db *sql.DB, repos repomanager.RepositoryManager, queue Enqueuer, logger logging.Logger) *ItemService {
	return &ItemService{
		db:     db,
		repos:  repos,
		queue:  queue,
		logger: logger.With("module", "item_service"),
	}
}

func validateItem(item *models.Item) error {
	if item.Name == "" {
		return fmt.Errorf("%w: %w", common.ErrorValidation, common.ErrorEmptyName)
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: %w", common.ErrorValidation, common.ErrorNegativePrice)
	}
	return nil
}

func (s *ItemService) Create(ctx context.Context, item *models.Item) (*models.Item, error) {

	if err := validateItem(item); err != nil {
		return nil, err
	}

	created, err := s.repos.Items(s.db).Create(ctx, item)
	if err != nil {
		return nil, err
	}

	// the first external price is fetched right away rather than waiting
	// for the next periodic sync
	taskID, err := s.queue.Enqueue(tasks.TaskSyncItem, tasks.Args{ItemID: created.ID})
	if err != nil {
		s.logger.Warn(ctx, "could not enqueue initial price sync", "item_id", created.ID, "error", err.Error())
	} else {
		s.logger.Info(ctx, "enqueued initial price sync", "item_id", created.ID, "task_id", taskID)
	}

	return created, nil
}

func (s *ItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	return s.repos.Items(s.db).GetByID(ctx, id)
}

func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	return s.repos.Items(s.db).List(ctx)
}

func (s *ItemService) Update(ctx context.Context, item *models.Item) (*models.Item, error) {

	if err := validateItem(item); err != nil {
		return nil, err
	}

	return s.repos.Items(s.db).Update(ctx, item)
}

func (s *ItemService) Delete(ctx context.Context, id int64) error {
	return s.repos.Items(s.db).Delete(ctx, id)
}

// EnqueueItemSync submits an async single-item sync and returns the task
// handle for polling.
func (s *ItemService) EnqueueItemSync(id int64) (string, error) {
	return s.queue.Enqueue(tasks.TaskSyncItem, tasks.Args{ItemID: id})
}

// EnqueueFullSync submits an async sync of all items and returns the task
// handle for polling.
func (s *ItemService) EnqueueFullSync() (string, error) {
	return s.queue.Enqueue(tasks.TaskSyncAll, tasks.Args{})
}
