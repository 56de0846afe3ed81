package repositories

import (
	"context"
	"time"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/uptrace/bun"
)

//go:generate mockgen -source=income_repository.go -destination=mock/income_repository.go -package=mock

type IncomeRepository interface {
	TryRecordCollectionTx(ctx context.Context, tx bun.IDB, record *models.IncomeCollection) (bool, error)
	GetLastCollection(ctx context.Context, characterID int64) (*models.IncomeCollection, error)
}

type incomeRepository struct {
	db *bun.DB
}

func NewIncomeRepository(db *bun.DB) IncomeRepository {
	return &incomeRepository{db: db}
}

// TryRecordCollectionTx consumes the per-day guard. Returns false when
// the (character_id, collected_on) key was already taken, meaning
// income for that day has been credited before.
func (r *incomeRepository) TryRecordCollectionTx(ctx context.Context, tx bun.IDB, record *models.IncomeCollection) (bool, error) {
	record.CreatedAt = time.Now()
	result, err := tx.NewInsert().
		Model(record).
		On("CONFLICT (character_id, collected_on) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, err
	}
	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

func (r *incomeRepository) GetLastCollection(ctx context.Context, characterID int64) (*models.IncomeCollection, error) {
	record := new(models.IncomeCollection)
	err := r.db.NewSelect().
		Model(record).
		Where("character_id = ?", characterID).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return record, nil
}
