package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Character struct {
	bun.BaseModel `bun:"table:characters,alias:c"`

	ID       int64  `bun:"id,pk,autoincrement"`
	UserID   string `bun:"user_id,notnull"`
	Name     string `bun:"name,notnull"`
	HomeCity string `bun:"home_city,notnull"`
	Location string `bun:"current_location"`

	// Balance is in centavos, the smallest currency unit. It is mutated
	// only through engine operations and must stay >= 0 at rest.
	Balance    int64 `bun:"balance,notnull,default:0"`
	Experience int64 `bun:"experience,notnull,default:0"`
	Level      int   `bun:"level,notnull,default:0"`
	Energy     int   `bun:"energy,notnull,default:100"`

	Archived bool `bun:"archived,notnull,default:false"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// ExperienceLog is an append-only record of experience grants, kept so
// level changes stay auditable alongside the transaction log.
type ExperienceLog struct {
	bun.BaseModel `bun:"table:experience_log,alias:xl"`

	ID          int64     `bun:"id,pk,autoincrement"`
	CharacterID int64     `bun:"character_id,notnull"`
	Amount      int64     `bun:"amount,notnull"`
	Source      string    `bun:"source,notnull"`
	ReferenceID string    `bun:"reference_id"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
