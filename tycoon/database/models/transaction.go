package models

import (
	"time"

	"github.com/uptrace/bun"
)

type TransactionKind string

const (
	TransactionKindPurchase TransactionKind = "purchase"
	TransactionKindSale     TransactionKind = "sale"
	TransactionKindIncome   TransactionKind = "income"
	TransactionKindUpgrade  TransactionKind = "upgrade"
	TransactionKindTrade    TransactionKind = "trade"
)

// Transaction is an append-only ledger row. Rows are written inside the
// same transaction as the balance mutation they record and are never
// updated afterwards.
type Transaction struct {
	bun.BaseModel `bun:"table:transactions,alias:tx"`

	ID       int64           `bun:"id,pk,autoincrement"`
	PublicID string          `bun:"public_id,notnull,unique"`
	Kind     TransactionKind `bun:"kind,notnull"`

	// FromID is zero for income credits minted by the engine.
	FromID int64 `bun:"from_id,nullzero"`
	ToID   int64 `bun:"to_id,nullzero"`

	Amount    int64  `bun:"amount,notnull"`
	Reference string `bun:"reference"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
