package models

import (
	"time"

	"github.com/uptrace/bun"
)

// IncomeCollection is the idempotency guard for daily income. The
// unique (character_id, collected_on) pair makes a second credit on the
// same calendar day impossible regardless of concurrent collectors.
type IncomeCollection struct {
	bun.BaseModel `bun:"table:income_collections,alias:ic"`

	ID          int64  `bun:"id,pk,autoincrement"`
	CharacterID int64  `bun:"character_id,notnull"`
	CollectedOn string `bun:"collected_on,notnull"`
	Amount      int64  `bun:"amount,notnull"`
	Properties  int    `bun:"properties,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// CollectionDay formats the UTC calendar day used as the guard key.
func CollectionDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
