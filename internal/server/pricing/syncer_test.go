package pricing

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avoronov/itemkeeper/internal/common"
	"github.com/avoronov/itemkeeper/internal/dbx"
	"github.com/avoronov/itemkeeper/internal/logging"
	"github.com/avoronov/itemkeeper/internal/server/models"
	"github.com/avoronov/itemkeeper/internal/server/repositories/items"
	"github.com/avoronov/itemkeeper/internal/server/repositories/repomanager"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------- test fakes --------

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type priceUpdate struct {
	id    int64
	price decimal.Decimal
}

type fakeItemsRepo struct {
	items.Repository

	byID   *models.Item
	getErr error

	streamItems []*models.Item
	streamErr   error

	updated []priceUpdate

	batches    [][]*models.Item
	failBatch  int // 1-based index of the batch call that fails; 0 = never
	batchCalls int
}

func (f *fakeItemsRepo) GetByIDForUpdate(ctx context.Context, id int64) (*models.Item, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byID, nil
}

func (f *fakeItemsRepo) UpdateExternalPrice(ctx context.Context, id int64, price decimal.Decimal) error {
	f.updated = append(f.updated, priceUpdate{id: id, price: price})
	return nil
}

func (f *fakeItemsRepo) StreamAll(ctx context.Context, fn func(item *models.Item) error) error {
	if f.streamErr != nil {
		return f.streamErr
	}
	for _, item := range f.streamItems {
		if err := fn(item); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeItemsRepo) BatchUpdateExternalPrices(ctx context.Context, batch []*models.Item) error {
	f.batchCalls++
	if f.failBatch > 0 && f.batchCalls == f.failBatch {
		return errors.New("batch write failed")
	}
	f.batches = append(f.batches, batch)
	return nil
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	repo *fakeItemsRepo
}

func (m *fakeRepoManager) Items(db dbx.DBTX) items.Repository { return m.repo }

// -------- helpers --------

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newSyncer(db *sql.DB, repo *fakeItemsRepo) *Syncer {
	return NewSyncer(db, &fakeRepoManager{repo: repo}, nopLogger{})
}

func testItems(n int) []*models.Item {
	result := make([]*models.Item, 0, n)
	for i := 1; i <= n; i++ {
		result = append(result, &models.Item{
			ID:    int64(i),
			Name:  "item",
			Price: decimal.NewFromInt(int64(i * 10)),
		})
	}
	return result
}

// -------- SyncItemByID --------

func TestSyncItemByID_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeItemsRepo{byID: &models.Item{ID: 7, Name: "Widget", Price: decimal.RequireFromString("100.00")}}
	s := newSyncer(db, repo)

	msg, err := s.SyncItemByID(context.Background(), 7, false)
	require.NoError(t, err)

	assert.Contains(t, msg, `"Widget"`)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, int64(7), repo.updated[0].id)

	low := decimal.RequireFromString("89.99")
	high := decimal.RequireFromString("110.01")
	assert.True(t, repo.updated[0].price.Cmp(low) >= 0 && repo.updated[0].price.Cmp(high) <= 0,
		"price %s outside ±10%% envelope", repo.updated[0].price)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncItemByID_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeItemsRepo{getErr: common.ErrorNotFound}
	s := newSyncer(db, repo)

	msg, err := s.SyncItemByID(context.Background(), 42, false)
	require.NoError(t, err, "not-found must be a soft outcome")

	assert.Contains(t, msg, "does not exist")
	assert.Contains(t, msg, "42")
	assert.Empty(t, repo.updated, "no write may happen for a missing item")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncItemByID_StorageErrorPropagates(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeItemsRepo{getErr: errors.New("connection lost")}
	s := newSyncer(db, repo)

	_, err := s.SyncItemByID(context.Background(), 1, false)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncItemByID_DelayHeldInsideTransaction(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeItemsRepo{byID: &models.Item{ID: 1, Name: "Widget", Price: decimal.NewFromInt(10)}}
	s := newSyncer(db, repo)

	var slept time.Duration
	s.sleep = func(d time.Duration) { slept = d }

	_, err := s.SyncItemByID(context.Background(), 1, true)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, slept, 100*time.Millisecond)
	assert.LessOrEqual(t, slept, 500*time.Millisecond)
	require.NoError(t, mock.ExpectationsWereMet())
}

// TestSyncItemByID_LocksRowWithinTransaction drives the real Postgres
// repository to assert the exact statement order: BEGIN, SELECT ... FOR
// UPDATE, UPDATE, COMMIT. The row lock is therefore held from the read to
// the commit, serializing concurrent syncs of the same item.
func TestSyncItemByID_LocksRowWithinTransaction(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "description", "price", "external_price", "created_at", "updated_at"}).
		AddRow(7, "Widget", nil, "100.00", "0.00", now, now)

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)SELECT\s+.*\s+FROM\s+items\s+WHERE\s+id\s*=\s*\$1\s+FOR\s+UPDATE`).
		WithArgs(int64(7)).
		WillReturnRows(rows)
	mock.ExpectExec(`(?s)UPDATE\s+items\s+SET\s+external_price\s*=\s*\$1,\s*updated_at\s*=\s*now\(\)\s+WHERE\s+id\s*=\s*\$2`).
		WithArgs(sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s := NewSyncer(db, repomanager.NewPostgresRepositoryManager(), nopLogger{})
	msg, err := s.SyncItemByID(context.Background(), 7, false)
	require.NoError(t, err)
	assert.Contains(t, msg, `"Widget"`)

	require.NoError(t, mock.ExpectationsWereMet())
}

// -------- SyncAll --------

func TestSyncAll_CountAndChunking(t *testing.T) {
	db, mock := newSQLMockDB(t)
	// 5 items, batch size 2 -> 3 chunk transactions
	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
	}

	repo := &fakeItemsRepo{streamItems: testItems(5)}
	s := newSyncer(db, repo)

	count, err := s.SyncAll(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	require.Len(t, repo.batches, 3)
	assert.Len(t, repo.batches[0], 2)
	assert.Len(t, repo.batches[1], 2)
	assert.Len(t, repo.batches[2], 1)

	for _, batch := range repo.batches {
		for _, item := range batch {
			low := item.Price.Mul(decimal.NewFromFloat(0.9)).Sub(decimal.NewFromFloat(0.01))
			high := item.Price.Mul(decimal.NewFromFloat(1.1)).Add(decimal.NewFromFloat(0.01))
			assert.True(t, item.ExternalPrice.Cmp(low) >= 0 && item.ExternalPrice.Cmp(high) <= 0,
				"external price %s not derived from %s", item.ExternalPrice, item.Price)
		}
	}

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncAll_FailedChunkRollsBackAndAborts(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeItemsRepo{streamItems: testItems(4), failBatch: 2}
	s := newSyncer(db, repo)

	_, err := s.SyncAll(context.Background(), 2)
	require.Error(t, err)

	// first chunk committed and stays committed, second never recorded
	require.Len(t, repo.batches, 1)
	assert.Len(t, repo.batches[0], 2)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncAll_EmptyStore(t *testing.T) {
	db, mock := newSQLMockDB(t)

	repo := &fakeItemsRepo{}
	s := newSyncer(db, repo)

	count, err := s.SyncAll(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, repo.batches)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncAll_RerunReturnsCurrentCount(t *testing.T) {
	db, mock := newSQLMockDB(t)
	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
	}

	repo := &fakeItemsRepo{streamItems: testItems(3)}
	s := newSyncer(db, repo)

	first, err := s.SyncAll(context.Background(), 0)
	require.NoError(t, err)
	second, err := s.SyncAll(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 3, first)
	assert.Equal(t, 3, second)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncAll_StreamErrorPropagates(t *testing.T) {
	db, _ := newSQLMockDB(t)

	repo := &fakeItemsRepo{streamErr: errors.New("connection lost")}
	s := newSyncer(db, repo)

	_, err := s.SyncAll(context.Background(), 10)
	require.Error(t, err)
	assert.Empty(t, repo.batches)
}

func TestChunked(t *testing.T) {
	all := testItems(5)

	tests := []struct {
		name string
		size int
		want []int
	}{
		{name: "even split remainder", size: 2, want: []int{2, 2, 1}},
		{name: "single chunk", size: 10, want: []int{5}},
		{name: "chunk per item", size: 1, want: []int{1, 1, 1, 1, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := chunked(all, tc.size)
			require.Len(t, got, len(tc.want))
			for i, n := range tc.want {
				assert.Len(t, got[i], n)
			}
		})
	}

	assert.Nil(t, chunked(nil, 3))
}
