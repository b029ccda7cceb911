// Package items contains persistence for inventory items.
package items

import (
	"context"

	"github.com/avoronov/itemkeeper/internal/server/models"
	"github.com/shopspring/decimal"
)

// Repository is the persistence contract for items.
//
// GetByIDForUpdate must only be called with a transactional DBTX: it takes
// an exclusive row lock that lives until the surrounding commit/rollback.
// StreamAll iterates rows lazily and never materializes the whole table.
type Repository interface {
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*models.Item, error)
	List(ctx context.Context) ([]*models.Item, error)
	StreamAll(ctx context.Context, fn func(item *models.Item) error) error
	Update(ctx context.Context, item *models.Item) (*models.Item, error)
	UpdateExternalPrice(ctx context.Context, id int64, price decimal.Decimal) error
	BatchUpdateExternalPrices(ctx context.Context, items []*models.Item) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	BulkCreate(ctx context.Context, items []*models.Item) error
}
