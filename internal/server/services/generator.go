package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/avoronov/itemkeeper/internal/logging"
	"github.com/avoronov/itemkeeper/internal/server/models"
	"github.com/avoronov/itemkeeper/internal/server/repositories/repomanager"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	// DefaultGenerateCount is how many fake items Generate creates when no
	// count is given.
	DefaultGenerateCount = 100000

	insertBatchSize = 1000
)

// GeneratorService bulk-creates fake items for testing and load
// experiments. Timestamps are spread over the last two years so
// created_at ordering and indexes get realistic data.
type GeneratorService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewGeneratorService(db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger) *GeneratorService {
	return &GeneratorService{
		db:     db,
		repos:  repos,
		logger: logger.With("module", "generator"),
	}
}

// Generate inserts count fake items in batches and returns how many were
// created.
func (s *GeneratorService) Generate(ctx context.Context, count int) (int, error) {

	if count <= 0 {
		count = DefaultGenerateCount
	}

	repo := s.repos.Items(s.db)

	now := time.Now()
	twoYearsAgo := now.AddDate(-2, 0, 0)

	created := 0
	batch := make([]*models.Item, 0, insertBatchSize)

	for i := 0; i < count; i++ {
		ts := gofakeit.DateRange(twoYearsAgo, now)
		batch = append(batch, &models.Item{
			Name:          capitalize(gofakeit.Word()),
			Description:   sql.NullString{String: gofakeit.Sentence(8), Valid: true},
			Price:         decimal.NewFromFloat(gofakeit.Float64Range(1.0, 1000.0)).Round(2),
			ExternalPrice: decimal.Zero,
			CreatedAt:     ts,
			UpdatedAt:     ts,
		})

		if len(batch) == insertBatchSize || i == count-1 {
			if err := repo.BulkCreate(ctx, batch); err != nil {
				return created, err
			}
			created += len(batch)
			batch = batch[:0]
		}
	}

	s.logger.Info(ctx, "generated fake items", "count", created)
	return created, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
