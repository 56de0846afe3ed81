package utils

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/economy"
	"github.com/uptrace/bun"
)

//go:generate mockgen -source=transaction_manager.go -destination=mock/transaction_manager.go -package=mock

// TransactionOptions configures transaction behavior
type TransactionOptions struct {
	IsolationLevel sql.IsolationLevel
	Timeout        time.Duration
}

// TransactionManager is the transactional surface the economy engines
// depend on. EconomicTransactionManager is the database-backed
// implementation.
type TransactionManager interface {
	WithTransaction(ctx context.Context, opts *TransactionOptions, fn func(context.Context, bun.Tx) error) error
	ValidateAndUpdateBalance(ctx context.Context, tx bun.Tx, opts BalanceOperationOptions) error
	AddItemToInventory(ctx context.Context, tx bun.Tx, opts ItemOperationOptions) error
	RemoveItemFromInventory(ctx context.Context, tx bun.Tx, opts ItemOperationOptions) error
	TransferBalance(ctx context.Context, tx bun.Tx, fromID, toID int64, amount int64) error
	TransferItem(ctx context.Context, tx bun.Tx, fromID, toID int64, itemID int64, quantity int) error
}

var _ TransactionManager = (*EconomicTransactionManager)(nil)

// EconomicTransactionManager provides standardized transaction utilities for economic operations
type EconomicTransactionManager struct {
	db *bun.DB
}

// NewEconomicTransactionManager creates a new transaction manager
func NewEconomicTransactionManager(db *bun.DB) *EconomicTransactionManager {
	return &EconomicTransactionManager{db: db}
}

// StandardTransactionOptions returns default transaction options
func StandardTransactionOptions() *TransactionOptions {
	return &TransactionOptions{
		IsolationLevel: sql.LevelReadCommitted,
		Timeout:        DefaultTxTimeout,
	}
}

// SerializableTransactionOptions returns serializable isolation level options for critical operations
func SerializableTransactionOptions() *TransactionOptions {
	return &TransactionOptions{
		IsolationLevel: sql.LevelSerializable,
		Timeout:        DefaultTxTimeout,
	}
}

// WithTransaction executes a function within a database transaction
func (etm *EconomicTransactionManager) WithTransaction(ctx context.Context, opts *TransactionOptions, fn func(context.Context, bun.Tx) error) error {
	if opts == nil {
		opts = StandardTransactionOptions()
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	tx, err := etm.db.BeginTx(timeoutCtx, &sql.TxOptions{
		Isolation: opts.IsolationLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(timeoutCtx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ItemOperationOptions configures inventory operations
type ItemOperationOptions struct {
	CharacterID int64
	ItemID      int64
	Quantity    int
}

// BalanceOperationOptions configures balance operations
type BalanceOperationOptions struct {
	CharacterID    int64
	Amount         int64
	MinimumBalance int64 // Validation threshold
}

// AddItemToInventory adds items to a character's inventory with UPSERT logic
func (etm *EconomicTransactionManager) AddItemToInventory(ctx context.Context, tx bun.Tx, opts ItemOperationOptions) error {
	// Try to update an existing stack first
	result, err := tx.NewUpdate().
		Model((*models.InventoryEntry)(nil)).
		Set("quantity = quantity + ?", opts.Quantity).
		Set("updated_at = ?", time.Now()).
		Where("character_id = ? AND item_id = ?", opts.CharacterID, opts.ItemID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update inventory quantity: %w", err)
	}

	// If no existing stack, insert a new one
	if affected, _ := result.RowsAffected(); affected == 0 {
		_, err = tx.NewInsert().
			Model(&models.InventoryEntry{
				CharacterID: opts.CharacterID,
				ItemID:      opts.ItemID,
				Quantity:    opts.Quantity,
				UpdatedAt:   time.Now(),
			}).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to add inventory entry: %w", err)
		}
	}

	return nil
}

// RemoveItemFromInventory removes items from a character's inventory
func (etm *EconomicTransactionManager) RemoveItemFromInventory(ctx context.Context, tx bun.Tx, opts ItemOperationOptions) error {
	// Lock the stack for validation
	var entry models.InventoryEntry
	err := tx.NewSelect().
		Model(&entry).
		Where("character_id = ? AND item_id = ?", opts.CharacterID, opts.ItemID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return economy.ErrInsufficientInventory(opts.ItemID, 0, int64(opts.Quantity))
		}
		return fmt.Errorf("failed to get inventory entry: %w", err)
	}

	if entry.Quantity < opts.Quantity {
		return economy.ErrInsufficientInventory(opts.ItemID, int64(entry.Quantity), int64(opts.Quantity))
	}

	if entry.Quantity == opts.Quantity {
		// Delete the record when the whole stack goes
		result, err := tx.NewDelete().
			Model((*models.InventoryEntry)(nil)).
			Where("character_id = ? AND item_id = ?", opts.CharacterID, opts.ItemID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete inventory entry: %w", err)
		}
		if affected, _ := result.RowsAffected(); affected == 0 {
			return fmt.Errorf("inventory entry vanished during removal")
		}
	} else {
		result, err := tx.NewUpdate().
			Model((*models.InventoryEntry)(nil)).
			Set("quantity = quantity - ?", opts.Quantity).
			Set("updated_at = ?", time.Now()).
			Where("character_id = ? AND item_id = ? AND quantity >= ?", opts.CharacterID, opts.ItemID, opts.Quantity).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update inventory quantity: %w", err)
		}
		if affected, _ := result.RowsAffected(); affected == 0 {
			return fmt.Errorf("failed to remove items from inventory")
		}
	}

	return nil
}

// ValidateAndUpdateBalance validates a character's balance and updates it
func (etm *EconomicTransactionManager) ValidateAndUpdateBalance(ctx context.Context, tx bun.Tx, opts BalanceOperationOptions) error {
	// Lock and get current balance
	var character models.Character
	err := tx.NewSelect().
		Model(&character).
		Column("balance").
		Where("id = ?", opts.CharacterID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return economy.ErrNotFound("character", opts.CharacterID)
		}
		return fmt.Errorf("failed to get character balance: %w", err)
	}

	// Validate deductions against the current balance
	if opts.Amount < 0 && character.Balance < -opts.Amount {
		return economy.ErrInsufficientFunds(character.Balance, -opts.Amount)
	}

	if opts.MinimumBalance > 0 && character.Balance+opts.Amount < opts.MinimumBalance {
		return economy.ErrInsufficientFunds(character.Balance, opts.MinimumBalance-character.Balance-opts.Amount)
	}

	result, err := tx.NewUpdate().
		Model((*models.Character)(nil)).
		Set("balance = balance + ?", opts.Amount).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", opts.CharacterID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return economy.ErrNotFound("character", opts.CharacterID)
	}

	return nil
}

// TransferItem moves items from one character to another
func (etm *EconomicTransactionManager) TransferItem(ctx context.Context, tx bun.Tx, fromID, toID int64, itemID int64, quantity int) error {
	if err := etm.RemoveItemFromInventory(ctx, tx, ItemOperationOptions{
		CharacterID: fromID,
		ItemID:      itemID,
		Quantity:    quantity,
	}); err != nil {
		return fmt.Errorf("failed to remove item from source: %w", err)
	}

	if err := etm.AddItemToInventory(ctx, tx, ItemOperationOptions{
		CharacterID: toID,
		ItemID:      itemID,
		Quantity:    quantity,
	}); err != nil {
		return fmt.Errorf("failed to add item to destination: %w", err)
	}

	return nil
}

// TransferBalance moves balance from one character to another
func (etm *EconomicTransactionManager) TransferBalance(ctx context.Context, tx bun.Tx, fromID, toID int64, amount int64) error {
	if err := etm.ValidateAndUpdateBalance(ctx, tx, BalanceOperationOptions{
		CharacterID: fromID,
		Amount:      -amount,
	}); err != nil {
		return fmt.Errorf("failed to deduct from source: %w", err)
	}

	if err := etm.ValidateAndUpdateBalance(ctx, tx, BalanceOperationOptions{
		CharacterID: toID,
		Amount:      amount,
	}); err != nil {
		return fmt.Errorf("failed to add to destination: %w", err)
	}

	return nil
}

// GetDB returns the underlying database connection
func (etm *EconomicTransactionManager) GetDB() *bun.DB {
	return etm.db
}
