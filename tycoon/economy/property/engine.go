package property

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/database/repositories"
	"github.com/pisoplay/tycoon/tycoon/economy"
	"github.com/pisoplay/tycoon/tycoon/economy/utils"
	"github.com/uptrace/bun"
)

// Engine runs the property economy. Every mutating operation is a
// single transaction: balance, property row and ledger entry commit
// together.
type Engine struct {
	txManager    utils.TransactionManager
	properties   repositories.PropertyRepository
	characters   repositories.CharacterRepository
	transactions repositories.TransactionRepository
	valueDrift   float64
}

func NewEngine(
	txManager utils.TransactionManager,
	properties repositories.PropertyRepository,
	characters repositories.CharacterRepository,
	transactions repositories.TransactionRepository,
	valueDrift float64,
) *Engine {
	if valueDrift <= 0 {
		valueDrift = utils.ValueDriftRate
	}
	return &Engine{
		txManager:    txManager,
		properties:   properties,
		characters:   characters,
		transactions: transactions,
		valueDrift:   valueDrift,
	}
}

// PurchaseOptions customizes a new property.
type PurchaseOptions struct {
	Name            string
	City            string
	LocationPremium int64
}

// Purchase buys a new property of the given type for the character.
func (e *Engine) Purchase(ctx context.Context, characterID int64, typ models.PropertyType, opts PurchaseOptions) (*models.Property, error) {
	def, ok := Catalog[typ]
	if !ok {
		return nil, economy.ErrInvalidState("property", 0, "unknown property type "+string(typ))
	}

	totalCost := def.BasePrice + opts.LocationPremium
	name := opts.Name
	if name == "" {
		name = def.Name
	}
	city := opts.City
	if city == "" {
		city = "Manila"
	}

	prop := &models.Property{
		OwnerID:       characterID,
		Type:          typ,
		Name:          name,
		City:          city,
		Tier:          0,
		Workers:       0,
		PurchasePrice: totalCost,
		CurrentValue:  totalCost,
		RevenuePerDay: def.BaseDailyIncome,
		Status:        models.PropertyStatusActive,
		PurchasedAt:   time.Now(),
		UpdatedAt:     time.Now(),
	}

	err := e.txManager.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := e.txManager.ValidateAndUpdateBalance(ctx, tx, utils.BalanceOperationOptions{
			CharacterID: characterID,
			Amount:      -totalCost,
		}); err != nil {
			return err
		}

		if err := e.properties.CreateTx(ctx, tx, prop); err != nil {
			return err
		}

		return e.transactions.CreateTx(ctx, tx, &models.Transaction{
			Kind:      models.TransactionKindPurchase,
			FromID:    characterID,
			Amount:    totalCost,
			Reference: fmt.Sprintf("property:%d", prop.ID),
		})
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Property purchased",
		slog.String("type", "cmd"),
		slog.Int64("character_id", characterID),
		slog.String("property_type", string(typ)),
		slog.Int64("cost", totalCost))

	return prop, nil
}

// UpgradeResult reports a completed upgrade.
type UpgradeResult struct {
	Property    *models.Property
	UpgradeCost int64
	NewIncome   int64
	LeveledUp   bool
}

// Upgrade raises the property one tier, repricing income and value.
func (e *Engine) Upgrade(ctx context.Context, characterID, propertyID int64) (*UpgradeResult, error) {
	var result UpgradeResult

	err := e.txManager.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		prop, err := e.properties.GetByIDForUpdateTx(ctx, tx, propertyID)
		if err != nil {
			return err
		}
		if prop.OwnerID != characterID {
			return economy.ErrNotOwner("property", propertyID)
		}
		if prop.Status != models.PropertyStatusActive {
			return economy.ErrInvalidState("property", propertyID, "not active")
		}

		def := Catalog[prop.Type]
		nextTier := prop.Tier + 1
		if nextTier > def.MaxUpgrades {
			return economy.ErrMaxUpgradeReached(propertyID, prop.Tier)
		}

		cost := UpgradeCost(def, prop.Tier)
		if err := e.txManager.ValidateAndUpdateBalance(ctx, tx, utils.BalanceOperationOptions{
			CharacterID: characterID,
			Amount:      -cost,
		}); err != nil {
			return err
		}

		prop.Tier = nextTier
		prop.RevenuePerDay = UpgradedIncome(def, nextTier)
		prop.CurrentValue = UpgradedValue(prop.PurchasePrice, nextTier)
		if err := e.properties.UpdateTx(ctx, tx, prop); err != nil {
			return fmt.Errorf("failed to update property: %w", err)
		}

		if err := e.transactions.CreateTx(ctx, tx, &models.Transaction{
			Kind:      models.TransactionKindUpgrade,
			FromID:    characterID,
			Amount:    cost,
			Reference: fmt.Sprintf("property:%d:tier:%d", propertyID, nextTier),
		}); err != nil {
			return err
		}

		leveledUp, err := e.characters.AddExperienceTx(ctx, tx, characterID,
			UpgradeExperience(nextTier), "property_upgrade", fmt.Sprintf("%d", propertyID))
		if err != nil {
			return err
		}

		result = UpgradeResult{
			Property:    prop,
			UpgradeCost: cost,
			NewIncome:   prop.RevenuePerDay,
			LeveledUp:   leveledUp,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// HireResult reports a completed hire.
type HireResult struct {
	Property    *models.Property
	WorkerCost  int64
	IncomeBoost int64
}

// HireWorker adds one worker, boosting daily revenue.
func (e *Engine) HireWorker(ctx context.Context, characterID, propertyID int64) (*HireResult, error) {
	var result HireResult

	err := e.txManager.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		prop, err := e.properties.GetByIDForUpdateTx(ctx, tx, propertyID)
		if err != nil {
			return err
		}
		if prop.OwnerID != characterID {
			return economy.ErrNotOwner("property", propertyID)
		}
		if prop.Status != models.PropertyStatusActive {
			return economy.ErrInvalidState("property", propertyID, "not active")
		}
		if prop.Workers >= Tiers[prop.Tier].MaxWorkers {
			return economy.ErrInvalidState("property", propertyID, "at max worker capacity")
		}

		cost := WorkerCost(prop.Workers)
		if err := e.txManager.ValidateAndUpdateBalance(ctx, tx, utils.BalanceOperationOptions{
			CharacterID: characterID,
			Amount:      -cost,
		}); err != nil {
			return err
		}

		boost := WorkerIncomeBoost(prop.RevenuePerDay)
		prop.Workers++
		prop.RevenuePerDay += boost
		if err := e.properties.UpdateTx(ctx, tx, prop); err != nil {
			return fmt.Errorf("failed to update property: %w", err)
		}

		result = HireResult{Property: prop, WorkerCost: cost, IncomeBoost: boost}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SellResult reports a completed sale back to the market.
type SellResult struct {
	SalePrice int64
	Loss      int64
}

// Sell liquidates the property at a small discount to current value.
func (e *Engine) Sell(ctx context.Context, characterID, propertyID int64) (*SellResult, error) {
	var result SellResult

	err := e.txManager.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		prop, err := e.properties.GetByIDForUpdateTx(ctx, tx, propertyID)
		if err != nil {
			return err
		}
		if prop.OwnerID != characterID {
			return economy.ErrNotOwner("property", propertyID)
		}
		if prop.Status != models.PropertyStatusActive {
			return economy.ErrInvalidState("property", propertyID, "not active")
		}

		salePrice := SalePrice(prop.CurrentValue)

		if err := e.properties.MarkSoldTx(ctx, tx, propertyID); err != nil {
			return err
		}

		if err := e.txManager.ValidateAndUpdateBalance(ctx, tx, utils.BalanceOperationOptions{
			CharacterID: characterID,
			Amount:      salePrice,
		}); err != nil {
			return err
		}

		if err := e.transactions.CreateTx(ctx, tx, &models.Transaction{
			Kind:      models.TransactionKindSale,
			ToID:      characterID,
			Amount:    salePrice,
			Reference: fmt.Sprintf("property:%d", propertyID),
		}); err != nil {
			return err
		}

		result = SellResult{
			SalePrice: salePrice,
			Loss:      prop.CurrentValue - salePrice,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// PropertyIncome is one property's share of a collection.
type PropertyIncome struct {
	PropertyID int64
	Name       string
	Income     int64
}

// CollectResult reports a completed income collection.
type CollectResult struct {
	TotalIncome int64
	Properties  []PropertyIncome
}

// CollectIncome sums revenue across every active property, applies the
// value drift to each, and credits the owner once.
func (e *Engine) CollectIncome(ctx context.Context, characterID int64) (*CollectResult, error) {
	var result CollectResult

	err := e.txManager.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return e.CollectIncomeTx(ctx, tx, characterID, &result)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CollectIncomeTx is the transaction body of CollectIncome, exposed so
// the income collector can compose it with its idempotency guard.
func (e *Engine) CollectIncomeTx(ctx context.Context, tx bun.Tx, characterID int64, result *CollectResult) error {
	props, err := e.properties.GetActiveByOwnerTx(ctx, tx, characterID)
	if err != nil {
		return fmt.Errorf("failed to load properties: %w", err)
	}
	if len(props) == 0 {
		return nil
	}

	for _, prop := range props {
		result.TotalIncome += prop.RevenuePerDay
		result.Properties = append(result.Properties, PropertyIncome{
			PropertyID: prop.ID,
			Name:       prop.Name,
			Income:     prop.RevenuePerDay,
		})

		// Held property appreciates a little each collection.
		drift := int64(math.Floor(float64(prop.CurrentValue) * e.valueDrift))
		prop.CurrentValue += drift
		if err := e.properties.UpdateTx(ctx, tx, prop); err != nil {
			return fmt.Errorf("failed to update property value: %w", err)
		}
	}

	if err := e.txManager.ValidateAndUpdateBalance(ctx, tx, utils.BalanceOperationOptions{
		CharacterID: characterID,
		Amount:      result.TotalIncome,
	}); err != nil {
		return err
	}

	return e.transactions.CreateTx(ctx, tx, &models.Transaction{
		Kind:      models.TransactionKindIncome,
		ToID:      characterID,
		Amount:    result.TotalIncome,
		Reference: uuid.NewString(),
	})
}

// Decorated is a property joined with its catalog and tier data.
type Decorated struct {
	models.Property
	Def           TypeDef
	TierInfo      Tier
	MonthlyIncome int64
}

// CharacterProperties lists a character's active holdings with derived
// stats.
func (e *Engine) CharacterProperties(ctx context.Context, characterID int64) ([]Decorated, error) {
	props, err := e.properties.GetActiveByOwner(ctx, characterID)
	if err != nil {
		return nil, err
	}

	out := make([]Decorated, 0, len(props))
	for _, prop := range props {
		out = append(out, Decorated{
			Property:      *prop,
			Def:           Catalog[prop.Type],
			TierInfo:      Tiers[prop.Tier],
			MonthlyIncome: prop.RevenuePerDay * 30,
		})
	}
	return out, nil
}

// Wealth is a character's combined financial picture.
type Wealth struct {
	LiquidAssets  int64
	PropertyValue int64
	TotalWealth   int64
	PropertyCount int
	MonthlyIncome int64
}

// CharacterWealth sums liquid balance and property holdings.
func (e *Engine) CharacterWealth(ctx context.Context, characterID int64) (*Wealth, error) {
	balance, err := e.characters.GetBalance(ctx, characterID)
	if err != nil {
		return nil, err
	}

	props, err := e.properties.GetActiveByOwner(ctx, characterID)
	if err != nil {
		return nil, err
	}

	w := &Wealth{LiquidAssets: balance, PropertyCount: len(props)}
	for _, prop := range props {
		w.PropertyValue += prop.CurrentValue
		w.MonthlyIncome += prop.RevenuePerDay * 30
	}
	w.TotalWealth = w.LiquidAssets + w.PropertyValue
	return w, nil
}
