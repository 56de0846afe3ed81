package property

import (
	"testing"

	"github.com/pisoplay/tycoon/tycoon/database/models"
)

func TestUpgradeCost(t *testing.T) {
	tests := []struct {
		name string
		typ  models.PropertyType
		tier int
		want int64
	}{
		{name: "house tier 0", typ: models.PropertyTypeHouse, tier: 0, want: 25000},
		{name: "house tier 1", typ: models.PropertyTypeHouse, tier: 1, want: 37500},
		{name: "business tier 2", typ: models.PropertyTypeBusiness, tier: 2, want: 144499},
		{name: "factory tier 3", typ: models.PropertyTypeFactory, tier: 3, want: 800000},
		{name: "hotel tier 0", typ: models.PropertyTypeHotel, tier: 0, want: 150000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpgradeCost(Catalog[tt.typ], tt.tier)
			if got != tt.want {
				t.Errorf("UpgradeCost = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUpgradeCostGrowthFactorExample(t *testing.T) {
	// basePrice 100000, growth 1.5, level 2: 50000 * 1.5^2 = 112500.
	def := TypeDef{BasePrice: 100000, GrowthFactor: 1.5}
	if got := UpgradeCost(def, 2); got != 112500 {
		t.Errorf("UpgradeCost = %d, want 112500", got)
	}
}

func TestUpgradedIncomeAndValue(t *testing.T) {
	def := Catalog[models.PropertyTypeApartment]

	if got := UpgradedIncome(def, 1); got != 260 {
		t.Errorf("UpgradedIncome tier 1 = %d, want 260", got)
	}
	if got := UpgradedIncome(def, 5); got != 700 {
		t.Errorf("UpgradedIncome tier 5 = %d, want 700", got)
	}
	if got := UpgradedValue(75000, 1); got != 86250 {
		t.Errorf("UpgradedValue tier 1 = %d, want 86250", got)
	}
	if got := UpgradedValue(75000, 4); got != 120000 {
		t.Errorf("UpgradedValue tier 4 = %d, want 120000", got)
	}
}

func TestTierTableMonotonic(t *testing.T) {
	for i := 1; i < len(Tiers); i++ {
		if Tiers[i].Multiplier <= Tiers[i-1].Multiplier {
			t.Errorf("tier %d multiplier %f not above tier %d", i, Tiers[i].Multiplier, i-1)
		}
		if Tiers[i].MaxWorkers <= Tiers[i-1].MaxWorkers {
			t.Errorf("tier %d maxWorkers %d not above tier %d", i, Tiers[i].MaxWorkers, i-1)
		}
	}
}

func TestCatalogTiersInRange(t *testing.T) {
	for typ, def := range Catalog {
		if def.MaxUpgrades >= len(Tiers) {
			t.Errorf("%s maxUpgrades %d exceeds tier table", typ, def.MaxUpgrades)
		}
	}
}

func TestWorkerCost(t *testing.T) {
	tests := []struct {
		workers int
		want    int64
	}{
		{workers: 0, want: 5000},
		{workers: 1, want: 7000},
		{workers: 4, want: 13000},
	}
	for _, tt := range tests {
		if got := WorkerCost(tt.workers); got != tt.want {
			t.Errorf("WorkerCost(%d) = %d, want %d", tt.workers, got, tt.want)
		}
	}
}

func TestWorkerIncomeBoost(t *testing.T) {
	if got := WorkerIncomeBoost(500); got != 100 {
		t.Errorf("WorkerIncomeBoost(500) = %d, want 100", got)
	}
	if got := WorkerIncomeBoost(333); got != 66 {
		t.Errorf("WorkerIncomeBoost(333) = %d, want 66", got)
	}
}

func TestSalePrice(t *testing.T) {
	if got := SalePrice(100000); got != 95000 {
		t.Errorf("SalePrice(100000) = %d, want 95000", got)
	}
	if got := SalePrice(86250); got != 81937 {
		t.Errorf("SalePrice(86250) = %d, want 81937", got)
	}
}

func TestSuggestions(t *testing.T) {
	// A 100k budget affords house, apartment, farm and business.
	got := Suggestions(100000)
	if len(got) != 4 {
		t.Fatalf("got %d suggestions, want 4", len(got))
	}

	for i := 1; i < len(got); i++ {
		if got[i].AnnualROI > got[i-1].AnnualROI {
			t.Errorf("suggestions not sorted by ROI at index %d", i)
		}
	}

	// Business has the best return: 500*365/100000.
	if got[0].Type != models.PropertyTypeBusiness {
		t.Errorf("best suggestion = %s, want business", got[0].Type)
	}

	if len(Suggestions(0)) != 0 {
		t.Error("zero budget should afford nothing")
	}
}
