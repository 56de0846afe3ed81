package property

import (
	"math"
	"sort"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/economy/utils"
)

// TypeDef describes one purchasable property type.
type TypeDef struct {
	Name            string
	BasePrice       int64
	BaseDailyIncome int64
	MaxUpgrades     int
	GrowthFactor    float64
	Description     string
}

// Catalog maps property types to their definitions.
var Catalog = map[models.PropertyType]TypeDef{
	models.PropertyTypeHouse: {
		Name:            "House",
		BasePrice:       50000,
		BaseDailyIncome: 100,
		MaxUpgrades:     5,
		GrowthFactor:    1.5,
		Description:     "Residential property generating steady income",
	},
	models.PropertyTypeApartment: {
		Name:            "Apartment",
		BasePrice:       75000,
		BaseDailyIncome: 200,
		MaxUpgrades:     5,
		GrowthFactor:    1.6,
		Description:     "Multi-unit residential generating higher income",
	},
	models.PropertyTypeBusiness: {
		Name:            "Business",
		BasePrice:       100000,
		BaseDailyIncome: 500,
		MaxUpgrades:     6,
		GrowthFactor:    1.7,
		Description:     "Commercial business with significant daily returns",
	},
	models.PropertyTypeFarm: {
		Name:            "Farm",
		BasePrice:       80000,
		BaseDailyIncome: 300,
		MaxUpgrades:     5,
		GrowthFactor:    1.5,
		Description:     "Agricultural property with seasonal variations",
	},
	models.PropertyTypeFactory: {
		Name:            "Factory",
		BasePrice:       200000,
		BaseDailyIncome: 1200,
		MaxUpgrades:     7,
		GrowthFactor:    2.0,
		Description:     "Industrial facility with high-yield production",
	},
	models.PropertyTypeHotel: {
		Name:            "Hotel",
		BasePrice:       300000,
		BaseDailyIncome: 2000,
		MaxUpgrades:     8,
		GrowthFactor:    2.2,
		Description:     "Hospitality business with premium revenue",
	},
}

// Tier describes one upgrade level.
type Tier struct {
	Name       string
	Multiplier float64
	MaxWorkers int
}

// Tiers is the upgrade progression, indexed by tier level 0..8.
var Tiers = [9]Tier{
	{Name: "Basic", Multiplier: 1.0, MaxWorkers: 1},
	{Name: "Improved", Multiplier: 1.3, MaxWorkers: 3},
	{Name: "Enhanced", Multiplier: 1.7, MaxWorkers: 5},
	{Name: "Premium", Multiplier: 2.2, MaxWorkers: 8},
	{Name: "Luxury", Multiplier: 2.8, MaxWorkers: 12},
	{Name: "Elite", Multiplier: 3.5, MaxWorkers: 15},
	{Name: "Legendary", Multiplier: 4.5, MaxWorkers: 20},
	{Name: "Mythical", Multiplier: 5.5, MaxWorkers: 25},
	{Name: "Divine", Multiplier: 6.5, MaxWorkers: 30},
}

// UpgradeCost is the price of moving from currentTier to the next one.
// Grows geometrically with the type's growth factor.
func UpgradeCost(def TypeDef, currentTier int) int64 {
	return int64(math.Floor(
		float64(def.BasePrice) / 2 * math.Pow(def.GrowthFactor, float64(currentTier))))
}

// UpgradedIncome is the daily income after reaching nextTier.
func UpgradedIncome(def TypeDef, nextTier int) int64 {
	return int64(math.Floor(float64(def.BaseDailyIncome) * Tiers[nextTier].Multiplier))
}

// UpgradedValue is the property value after reaching nextTier.
func UpgradedValue(purchasePrice int64, nextTier int) int64 {
	return int64(math.Floor(float64(purchasePrice) * (1 + float64(nextTier)*0.15)))
}

// UpgradeExperience is the grant for completing an upgrade.
func UpgradeExperience(nextTier int) int64 {
	return utils.UpgradeBaseExp + int64(nextTier)*utils.UpgradeExpPerTier
}

// WorkerCost is the hire price for the next worker given the current
// headcount.
func WorkerCost(currentWorkers int) int64 {
	return utils.WorkerBaseCost + int64(currentWorkers)*utils.WorkerCostIncrement
}

// WorkerIncomeBoost is the daily income gained by hiring one worker.
func WorkerIncomeBoost(revenuePerDay int64) int64 {
	return int64(math.Floor(float64(revenuePerDay) * utils.WorkerIncomeRate))
}

// SalePrice is what the seller recovers, slightly under current value.
func SalePrice(currentValue int64) int64 {
	return int64(math.Floor(float64(currentValue) * utils.SellValueRate))
}

// Suggestion is one affordable property type ranked by return rate.
type Suggestion struct {
	Type          models.PropertyType
	Def           TypeDef
	AnnualROI     float64
	MonthlyIncome int64
	ROIMonths     int
}

// Suggestions lists every type affordable within budget, best annual
// return first.
func Suggestions(budget int64) []Suggestion {
	var out []Suggestion
	for typ, def := range Catalog {
		if def.BasePrice > budget {
			continue
		}
		roi := float64(def.BaseDailyIncome*365) / float64(def.BasePrice)
		out = append(out, Suggestion{
			Type:          typ,
			Def:           def,
			AnnualROI:     roi * 100,
			MonthlyIncome: def.BaseDailyIncome * 30,
			ROIMonths:     int(math.Ceil(float64(def.BasePrice) / float64(def.BaseDailyIncome*30))),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AnnualROI > out[j].AnnualROI
	})
	return out
}
