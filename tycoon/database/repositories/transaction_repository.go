package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/uptrace/bun"
)

//go:generate mockgen -source=transaction_repository.go -destination=mock/transaction_repository.go -package=mock

type TransactionRepository interface {
	CreateTx(ctx context.Context, tx bun.IDB, transaction *models.Transaction) error
	GetByCharacter(ctx context.Context, characterID int64, limit int) ([]*models.Transaction, error)
	GetRecentByKind(ctx context.Context, kind models.TransactionKind, since time.Time) ([]*models.Transaction, error)
}

type transactionRepository struct {
	db *bun.DB
}

func NewTransactionRepository(db *bun.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// CreateTx appends a ledger row inside the mutation's own transaction
// so the record and the balance change commit or roll back together.
func (r *transactionRepository) CreateTx(ctx context.Context, tx bun.IDB, transaction *models.Transaction) error {
	if transaction.PublicID == "" {
		transaction.PublicID = uuid.NewString()
	}
	transaction.CreatedAt = time.Now()
	_, err := tx.NewInsert().Model(transaction).Exec(ctx)
	return err
}

func (r *transactionRepository) GetByCharacter(ctx context.Context, characterID int64, limit int) ([]*models.Transaction, error) {
	var transactions []*models.Transaction
	err := r.db.NewSelect().
		Model(&transactions).
		Where("from_id = ? OR to_id = ?", characterID, characterID).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	return transactions, err
}

func (r *transactionRepository) GetRecentByKind(ctx context.Context, kind models.TransactionKind, since time.Time) ([]*models.Transaction, error) {
	var transactions []*models.Transaction
	err := r.db.NewSelect().
		Model(&transactions).
		Where("kind = ? AND created_at >= ?", kind, since).
		Order("created_at DESC").
		Scan(ctx)
	return transactions, err
}
