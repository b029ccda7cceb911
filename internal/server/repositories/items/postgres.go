package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/avoronov/itemkeeper/internal/common"
	"github.com/avoronov/itemkeeper/internal/dbx"
	"github.com/avoronov/itemkeeper/internal/server/models"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const itemColumns = `id, name, description, price, external_price, created_at, updated_at`

func scanItem(row *sql.Row) (*models.Item, error) {
	item := &models.Item{}
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
		&item.ExternalPrice, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {

	query :=
		`INSERT INTO items (name, description, price)
		 VALUES ($1, $2, $3)
		 RETURNING id, external_price, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, item.Name, item.Description, item.Price).
		Scan(&item.ID, &item.ExternalPrice, &item.CreatedAt, &item.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

// GetByIDForUpdate locks the item row for the rest of the transaction.
// Concurrent writers block on the lock until commit/rollback.
func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Item
	for rows.Next() {
		item := &models.Item{}
		err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.ExternalPrice, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// StreamAll walks the whole table row by row, invoking fn for each item.
// Iteration stops at the first error returned by fn.
func (r *PostgresRepository) StreamAll(ctx context.Context, fn func(item *models.Item) error) error {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item := &models.Item{}
		err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.ExternalPrice, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if err := fn(item); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, item *models.Item) (*models.Item, error) {

	query :=
		`UPDATE items
		 SET name = $1, description = $2, price = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, item.Name, item.Description, item.Price, item.ID).
		Scan(&item.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) UpdateExternalPrice(ctx context.Context, id int64, price decimal.Decimal) error {

	query :=
		`UPDATE items
		 SET external_price = $1, updated_at = now()
		 WHERE id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, price, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// BatchUpdateExternalPrices writes only the external_price column for every
// item in the slice. Callers wrap it in a transaction to get all-or-nothing
// behavior for the batch.
func (r *PostgresRepository) BatchUpdateExternalPrices(ctx context.Context, batch []*models.Item) error {

	query :=
		`UPDATE items
		 SET external_price = $1, updated_at = now()
		 WHERE id = $2
		 `

	for _, item := range batch {
		if _, err := r.db.ExecContext(ctx, query, item.ExternalPrice, item.ID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM items WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// BulkCreate inserts the whole slice with a single multi-row INSERT,
// keeping the timestamps callers may have pre-assigned.
func (r *PostgresRepository) BulkCreate(ctx context.Context, batch []*models.Item) error {
	if len(batch) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO items (name, description, price, external_price, created_at, updated_at) VALUES `)

	args := make([]any, 0, len(batch)*6)
	for i, item := range batch {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 6
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args, item.Name, item.Description, item.Price, item.ExternalPrice, item.CreatedAt, item.UpdatedAt)
	}

	if _, err := r.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
