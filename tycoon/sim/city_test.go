package sim

import (
	"math"
	"testing"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/economy"
)

const floatTol = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTol
}

func TestTickDefaultCity(t *testing.T) {
	s := NewSimulator()
	city := models.DefaultCity("user-1", "Quezon City")

	next := s.Tick(city)

	// Growth: rate 0.0275, base 1375, employment 65 dampens to 1100.
	if next.Population != 51100 {
		t.Errorf("population = %d, want 51100", next.Population)
	}

	// Revenue 408800, expense 56500, one auto-repair charge of 50000.
	if next.MonthlyRevenue != 408800 {
		t.Errorf("monthly revenue = %d, want 408800", next.MonthlyRevenue)
	}
	if next.MonthlyExpense != 56500 {
		t.Errorf("monthly expense = %d, want 56500", next.MonthlyExpense)
	}
	if next.Budget != 1302300 {
		t.Errorf("budget = %d, want 1302300", next.Budget)
	}

	// Only the 3 parks adjust happiness on the starting metrics.
	if !almostEqual(next.Happiness, 76.5) {
		t.Errorf("happiness = %f, want 76.5", next.Happiness)
	}

	// Wear 0.06, then one repair point.
	if !almostEqual(next.Infrastructure, 50.94) {
		t.Errorf("infrastructure = %f, want 50.94", next.Infrastructure)
	}

	if !almostEqual(next.Pollution, 4.906) {
		t.Errorf("pollution = %f, want 4.906", next.Pollution)
	}
	if !almostEqual(next.Crime, 14.94068) {
		t.Errorf("crime = %f, want 14.94068", next.Crime)
	}

	if !almostEqual(next.Education, 44) {
		t.Errorf("education = %f, want 44", next.Education)
	}
	if !almostEqual(next.Health, 45) {
		t.Errorf("health = %f, want 45", next.Health)
	}
	// 800 jobs against 20440 demanded.
	if !almostEqual(next.Employment, 3) {
		t.Errorf("employment = %f, want 3", next.Employment)
	}
	if !almostEqual(next.Electricity, 75) {
		t.Errorf("electricity = %f, want 75", next.Electricity)
	}
	if !almostEqual(next.Water, 70) {
		t.Errorf("water = %f, want 70", next.Water)
	}
}

func TestTickDoesNotMutateInput(t *testing.T) {
	s := NewSimulator()
	city := models.DefaultCity("user-1", "Cebu")
	before := city

	s.Tick(city)

	if city != before {
		t.Error("Tick mutated its input value")
	}
}

func TestTickClampsMetrics(t *testing.T) {
	s := NewSimulator()
	city := models.DefaultCity("user-1", "Davao")
	city.IndustrialZones = 50
	city.Parks = 0
	city.Infrastructure = 0

	for i := 0; i < 20; i++ {
		city = s.Tick(city)
	}

	for name, v := range map[string]float64{
		"happiness":  city.Happiness,
		"pollution":  city.Pollution,
		"crime":      city.Crime,
		"employment": city.Employment,
		"education":  city.Education,
		"health":     city.Health,
	} {
		if v < 0 || v > 100 {
			t.Errorf("%s = %f, outside [0,100]", name, v)
		}
	}
	if city.Population < 0 {
		t.Errorf("population went negative: %d", city.Population)
	}
}

func TestAddZone(t *testing.T) {
	s := NewSimulator()

	tests := []struct {
		name    string
		zone    ZoneType
		budget  int64
		wantErr economy.Kind
	}{
		{name: "residential ok", zone: ZoneResidential, budget: 100000},
		{name: "powerplant ok", zone: ZonePowerPlant, budget: 1500000},
		{name: "insufficient budget", zone: ZoneHospital, budget: 499999, wantErr: economy.KindInsufficientFunds},
		{name: "unknown zone", zone: ZoneType("mall"), budget: 10000000, wantErr: economy.KindInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city := models.DefaultCity("user-1", "Iloilo")
			city.Budget = tt.budget

			next, err := s.AddZone(city, tt.zone)
			if tt.wantErr != "" {
				if economy.KindOf(err) != tt.wantErr {
					t.Fatalf("error kind = %q, want %q", economy.KindOf(err), tt.wantErr)
				}
				if next != city {
					t.Error("city changed on failed AddZone")
				}
				return
			}
			if err != nil {
				t.Fatalf("AddZone: %v", err)
			}
			if next.Budget != tt.budget-ZoneCosts[tt.zone] {
				t.Errorf("budget = %d, want %d", next.Budget, tt.budget-ZoneCosts[tt.zone])
			}
		})
	}
}

func TestAddZoneIncrementsCount(t *testing.T) {
	s := NewSimulator()
	city := models.DefaultCity("user-1", "Baguio")
	city.Budget = 10000000

	next, err := s.AddZone(city, ZoneSchool)
	if err != nil {
		t.Fatalf("AddZone: %v", err)
	}
	if next.Schools != city.Schools+1 {
		t.Errorf("schools = %d, want %d", next.Schools, city.Schools+1)
	}
}

func TestBuildRoads(t *testing.T) {
	s := NewSimulator()
	city := models.DefaultCity("user-1", "Makati")
	city.Budget = 100000

	next, err := s.BuildRoads(city, 5)
	if err != nil {
		t.Fatalf("BuildRoads: %v", err)
	}
	if next.Roads != city.Roads+5 {
		t.Errorf("roads = %d, want %d", next.Roads, city.Roads+5)
	}
	if next.Budget != 50000 {
		t.Errorf("budget = %d, want 50000", next.Budget)
	}

	if _, err := s.BuildRoads(city, 11); economy.KindOf(err) != economy.KindInsufficientFunds {
		t.Errorf("error kind = %q, want insufficient_funds", economy.KindOf(err))
	}
	if _, err := s.BuildRoads(city, 0); economy.KindOf(err) != economy.KindInvalidState {
		t.Errorf("error kind = %q, want invalid_state", economy.KindOf(err))
	}
}

func TestSetTaxRateClamps(t *testing.T) {
	s := NewSimulator()
	city := models.DefaultCity("user-1", "Taguig")

	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0.05, want: 0.05},
		{in: -0.1, want: 0},
		{in: 0.5, want: 0.20},
		{in: 0.20, want: 0.20},
	}

	for _, tt := range tests {
		if got := s.SetTaxRate(city, tt.in).TaxRate; !almostEqual(got, tt.want) {
			t.Errorf("SetTaxRate(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
