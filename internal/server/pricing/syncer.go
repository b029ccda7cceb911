package pricing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/avoronov/itemkeeper/internal/common"
	"github.com/avoronov/itemkeeper/internal/dbx"
	"github.com/avoronov/itemkeeper/internal/logging"
	"github.com/avoronov/itemkeeper/internal/server/models"
	"github.com/avoronov/itemkeeper/internal/server/repositories/repomanager"
)

// DefaultBatchSize is the chunk size used by SyncAll when none is given.
const DefaultBatchSize = 500

// Syncer applies the price estimator to stored items.
//
// SyncItemByID is strict: it locks the target row for the whole
// transaction, so concurrent syncs of the same item serialize and no
// update is lost. SyncAll favors throughput: it reads a snapshot of
// prices without row locks and writes in chunked transactions, so a
// concurrent single-item sync may be overwritten (last writer wins).
type Syncer struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
	sleep  func(d time.Duration)
}

func NewSyncer(db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger) *Syncer {
	return &Syncer{
		db:     db,
		repos:  repos,
		logger: logger.With("module", "price_sync"),
		sleep:  time.Sleep,
	}
}

// SyncItemByID recomputes the external price of one item inside a
// transaction holding an exclusive lock on its row. With simulateDelay the
// call pauses 100–500ms while holding the lock, imitating a slow upstream
// price provider.
//
// A missing item is a soft outcome: the returned message reports it and
// err is nil. Storage failures propagate.
func (s *Syncer) SyncItemByID(ctx context.Context, id int64, simulateDelay bool) (string, error) {

	var msg string

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		repo := s.repos.Items(tx)

		item, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if simulateDelay {
			s.sleep(randomDelay())
		}

		item.ExternalPrice = SimulateExternalPrice(item.Price)

		if err := repo.UpdateExternalPrice(ctx, item.ID, item.ExternalPrice); err != nil {
			return err
		}

		msg = fmt.Sprintf("external price for %q updated to %s", item.Name, item.ExternalPrice.StringFixed(2))
		return nil
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Sprintf("item with ID %d does not exist", id), nil
		}
		return "", err
	}

	s.logger.Info(ctx, "synced item price", "item_id", id)
	return msg, nil
}

// SyncAll recomputes external prices for every item. Items are streamed
// from the store, estimates are accumulated in memory and then persisted
// in chunks of batchSize, one transaction per chunk. Returns the number of
// items processed.
//
// A failing chunk rolls back as a whole and aborts the run; chunks already
// committed stay committed.
func (s *Syncer) SyncAll(ctx context.Context, batchSize int) (int, error) {

	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	var updated []*models.Item

	err := s.repos.Items(s.db).StreamAll(ctx, func(item *models.Item) error {
		item.ExternalPrice = SimulateExternalPrice(item.Price)
		updated = append(updated, item)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("error streaming items: %w", err)
	}

	for _, batch := range chunked(updated, batchSize) {
		err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return s.repos.Items(tx).BatchUpdateExternalPrices(ctx, batch)
		})
		if err != nil {
			return 0, fmt.Errorf("error updating batch: %w", err)
		}
	}

	s.logger.Info(ctx, "synced all item prices", "count", len(updated))
	return len(updated), nil
}

// chunked splits items into consecutive slices of at most size elements.
func chunked(items []*models.Item, size int) [][]*models.Item {
	var batches [][]*models.Item
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[i:end])
	}
	return batches
}

func randomDelay() time.Duration {
	return 100*time.Millisecond + rand.N(400*time.Millisecond)
}
