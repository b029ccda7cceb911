package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Item is a single inventory position. Price and ExternalPrice are
// fixed-point decimals with two fractional digits; Price must never be
// negative (enforced both here and by a CHECK constraint in the schema).
type Item struct {
	ID            int64
	Name          string
	Description   sql.NullString
	Price         decimal.Decimal
	ExternalPrice decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
