package sim

import (
	"math"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/economy"
)

// ZoneType names a buildable city structure.
type ZoneType string

const (
	ZoneResidential ZoneType = "residential"
	ZoneCommercial  ZoneType = "commercial"
	ZoneIndustrial  ZoneType = "industrial"
	ZonePark        ZoneType = "park"
	ZoneHospital    ZoneType = "hospital"
	ZoneSchool      ZoneType = "school"
	ZonePowerPlant  ZoneType = "powerplant"
)

// ZoneCosts is the construction price per zone type.
var ZoneCosts = map[ZoneType]int64{
	ZoneResidential: 100000,
	ZoneCommercial:  150000,
	ZoneIndustrial:  200000,
	ZonePark:        50000,
	ZoneHospital:    500000,
	ZoneSchool:      300000,
	ZonePowerPlant:  1000000,
}

// RoadCost is the construction price per road segment.
const RoadCost = 10000

// MaxTaxRate caps the city tax rate.
const MaxTaxRate = 0.20

// Monthly maintenance cost per structure.
const (
	roadMaintenance       = 50
	powerPlantMaintenance = 10000
	hospitalMaintenance   = 5000
	schoolMaintenance     = 3000
	pollutionPenalty      = 1000
)

// Simulator advances city snapshots one month at a time. It holds no
// state of its own; every method is a pure transform over the value it
// receives.
type Simulator struct{}

func NewSimulator() *Simulator {
	return &Simulator{}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Tick advances the city by one simulated month. The update order
// matters: growth and budget read the previous month's metrics, then
// the quality-of-life metrics are recomputed from the new counts.
func (s *Simulator) Tick(city models.City) models.City {
	c := city

	// Population growth driven by happiness, amplified by employment.
	growthRate := 0.02 + ((c.Happiness-50)/100)*0.03
	baseGrowth := math.Floor(float64(c.Population) * growthRate)
	employmentImpact := baseGrowth * 0.8
	if c.Employment > 70 {
		employmentImpact = baseGrowth * 1.2
	}
	c.Population = int64(math.Floor(float64(c.Population) + employmentImpact))

	// Tax revenue and maintenance.
	revenue := int64(math.Floor(float64(c.Population) * 100 * c.TaxRate))
	expense := int64(math.Floor(
		float64(c.Roads)*roadMaintenance +
			float64(c.PowerPlants)*powerPlantMaintenance +
			float64(c.Hospitals)*hospitalMaintenance +
			float64(c.Schools)*schoolMaintenance +
			c.Pollution*pollutionPenalty))
	c.Budget += revenue - expense
	c.MonthlyRevenue = revenue
	c.MonthlyExpense = expense

	// Happiness reacts to services and nuisances.
	happiness := c.Happiness
	if c.Health > 70 {
		happiness += 2
	}
	if c.Education > 70 {
		happiness += 2
	}
	if c.Employment > 70 {
		happiness += 3
	}
	if c.Electricity < 80 {
		happiness -= 5
	}
	if c.Water < 70 {
		happiness -= 5
	}
	if c.Pollution > 70 {
		happiness -= 5
	}
	if c.Crime > 50 {
		happiness -= 3
	}
	happiness += 0.5 * float64(c.Parks)
	c.Happiness = clamp(happiness, 0, 100)

	// Infrastructure wears faster in polluted cities; auto-repair
	// kicks in while the budget can afford it.
	wearRate := 0.02 + c.Pollution/500
	if c.Infrastructure > 0 {
		c.Infrastructure -= wearRate
	}
	if c.Budget > 50000 && c.Infrastructure < 60 {
		c.Infrastructure = math.Min(100, c.Infrastructure+1)
		c.Budget -= 50000
	}

	// Pollution from industry, absorbed by parks and infrastructure.
	pollution := c.Pollution +
		float64(c.IndustrialZones)*5 +
		float64(c.CommercialZones)*2 -
		float64(c.Parks)*10 -
		c.Infrastructure/10
	c.Pollution = clamp(pollution, 0, 100)

	// Crime tracks infrastructure, unemployment and unhappiness.
	crimeDelta := (-c.Infrastructure*0.3 +
		(100-c.Employment)*0.2 +
		(100-c.Happiness)*0.1) / 100
	c.Crime = clamp(c.Crime+crimeDelta, 0, 100)

	// Services derived from structure counts.
	c.Education = math.Min(100, 20+float64(c.Schools)*8)
	c.Health = math.Min(100, 25+float64(c.Hospitals)*10)

	// Employment from job capacity versus demand.
	jobCapacity := float64(c.CommercialZones)*100 + float64(c.IndustrialZones)*150
	jobDemand := math.Max(float64(c.Population)*0.4, jobCapacity)
	if jobDemand > 0 {
		c.Employment = math.Min(100, math.Floor(jobCapacity/jobDemand*100))
	}

	// Utilities.
	if c.PowerPlants > 0 {
		c.Electricity = math.Min(100, 60+float64(c.PowerPlants)*15)
	}
	c.Water = math.Min(100, 40+float64(c.ResidentialZones)*3)

	return c
}

// AddZone builds one structure, debiting the construction cost.
func (s *Simulator) AddZone(city models.City, zone ZoneType) (models.City, error) {
	cost, ok := ZoneCosts[zone]
	if !ok {
		return city, economy.ErrInvalidState("city", city.ID, "unknown zone type "+string(zone))
	}
	if city.Budget < cost {
		return city, economy.ErrInsufficientFunds(city.Budget, cost)
	}

	c := city
	c.Budget -= cost
	switch zone {
	case ZoneResidential:
		c.ResidentialZones++
	case ZoneCommercial:
		c.CommercialZones++
	case ZoneIndustrial:
		c.IndustrialZones++
	case ZonePark:
		c.Parks++
	case ZoneHospital:
		c.Hospitals++
	case ZoneSchool:
		c.Schools++
	case ZonePowerPlant:
		c.PowerPlants++
	}
	return c, nil
}

// BuildRoads builds count road segments at once.
func (s *Simulator) BuildRoads(city models.City, count int) (models.City, error) {
	if count <= 0 {
		return city, economy.ErrInvalidState("city", city.ID, "road count must be positive")
	}
	cost := int64(count) * RoadCost
	if city.Budget < cost {
		return city, economy.ErrInsufficientFunds(city.Budget, cost)
	}

	c := city
	c.Budget -= cost
	c.Roads += count
	return c, nil
}

// SetTaxRate clamps the requested rate into [0, MaxTaxRate].
func (s *Simulator) SetTaxRate(city models.City, rate float64) models.City {
	c := city
	c.TaxRate = clamp(rate, 0, MaxTaxRate)
	return c
}
