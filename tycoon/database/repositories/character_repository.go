package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/economy"
	"github.com/pisoplay/tycoon/tycoon/economy/utils"
	"github.com/uptrace/bun"
)

//go:generate mockgen -source=character_repository.go -destination=mock/character_repository.go -package=mock

type CharacterRepository interface {
	Create(ctx context.Context, character *models.Character) error
	GetByID(ctx context.Context, id int64) (*models.Character, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.Character, error)
	Update(ctx context.Context, character *models.Character) error
	Archive(ctx context.Context, id int64) error
	GetBalance(ctx context.Context, id int64) (int64, error)
	GetActive(ctx context.Context) ([]*models.Character, error)
	AddExperienceTx(ctx context.Context, tx bun.IDB, characterID int64, amount int64, source, referenceID string) (bool, error)
	RecordWorkSession(ctx context.Context, characterID int64, energyGain int) error
}

type characterRepository struct {
	db *bun.DB
}

func NewCharacterRepository(db *bun.DB) CharacterRepository {
	return &characterRepository{db: db}
}

func (r *characterRepository) Create(ctx context.Context, character *models.Character) error {
	character.CreatedAt = time.Now()
	character.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(character).Exec(ctx)
	return err
}

func (r *characterRepository) GetByID(ctx context.Context, id int64) (*models.Character, error) {
	character := new(models.Character)
	err := r.db.NewSelect().
		Model(character).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, economy.ErrNotFound("character", id)
		}
		slog.Error("Database error when getting character",
			slog.String("type", "db"),
			slog.String("operation", "GetByID"),
			slog.Int64("character_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	return character, nil
}

func (r *characterRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Character, error) {
	var characters []*models.Character
	err := r.db.NewSelect().
		Model(&characters).
		Where("user_id = ? AND archived = false", userID).
		Order("created_at ASC").
		Scan(ctx)
	return characters, err
}

func (r *characterRepository) Update(ctx context.Context, character *models.Character) error {
	character.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(character).
		WherePK().
		Exec(ctx)
	return err
}

func (r *characterRepository) Archive(ctx context.Context, id int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.Character)(nil)).
		Set("archived = true").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r *characterRepository) GetBalance(ctx context.Context, id int64) (int64, error) {
	var balance int64
	err := r.db.NewSelect().
		Model((*models.Character)(nil)).
		Column("balance").
		Where("id = ?", id).
		Scan(ctx, &balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, economy.ErrNotFound("character", id)
	}
	return balance, err
}

func (r *characterRepository) GetActive(ctx context.Context) ([]*models.Character, error) {
	var characters []*models.Character
	err := r.db.NewSelect().
		Model(&characters).
		Where("archived = false").
		Order("id ASC").
		Scan(ctx)
	return characters, err
}

// AddExperienceTx grants experience inside an existing transaction,
// recomputes the level and appends an experience_log row. Returns true
// when the grant crossed a level boundary.
func (r *characterRepository) AddExperienceTx(ctx context.Context, tx bun.IDB, characterID int64, amount int64, source, referenceID string) (bool, error) {
	var character models.Character
	err := tx.NewSelect().
		Model(&character).
		Column("experience", "level").
		Where("id = ?", characterID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, economy.ErrNotFound("character", characterID)
		}
		return false, fmt.Errorf("failed to get character experience: %w", err)
	}

	newExp := character.Experience + amount
	newLevel := int(newExp / utils.ExpPerLevel)
	leveledUp := newLevel > character.Level

	_, err = tx.NewUpdate().
		Model((*models.Character)(nil)).
		Set("experience = ?", newExp).
		Set("level = ?", newLevel).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", characterID).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update experience: %w", err)
	}

	_, err = tx.NewInsert().
		Model(&models.ExperienceLog{
			CharacterID: characterID,
			Amount:      amount,
			Source:      source,
			ReferenceID: referenceID,
			CreatedAt:   time.Now(),
		}).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to append experience log: %w", err)
	}

	return leveledUp, nil
}

// RecordWorkSession restores energy after a completed work session,
// clamped to the energy ceiling.
func (r *characterRepository) RecordWorkSession(ctx context.Context, characterID int64, energyGain int) error {
	result, err := r.db.NewUpdate().
		Model((*models.Character)(nil)).
		Set("energy = LEAST(energy + ?, ?)", energyGain, utils.MaxEnergy).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", characterID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return economy.ErrNotFound("character", characterID)
	}
	return nil
}
