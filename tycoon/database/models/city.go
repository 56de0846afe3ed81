package models

import (
	"time"

	"github.com/uptrace/bun"
)

// City is the full simulated snapshot for one municipality. It is only
// ever advanced by the simulator's Tick or by zoning/tax commands; all
// percentage-typed fields stay within [0,100].
type City struct {
	bun.BaseModel `bun:"table:cities,alias:ct"`

	ID     int64  `bun:"id,pk,autoincrement"`
	UserID string `bun:"user_id,notnull"`
	Name   string `bun:"name,notnull"`
	X      float64 `bun:"x,notnull"`
	Y      float64 `bun:"y,notnull"`

	Population int64 `bun:"population,notnull"`
	Budget     int64 `bun:"budget,notnull"`

	Happiness      float64 `bun:"happiness,notnull"`
	Pollution      float64 `bun:"pollution,notnull"`
	Employment     float64 `bun:"employment,notnull"`
	Education      float64 `bun:"education,notnull"`
	Health         float64 `bun:"health,notnull"`
	Crime          float64 `bun:"crime,notnull"`
	Infrastructure float64 `bun:"infrastructure,notnull"`

	ResidentialZones int `bun:"residential_zones,notnull"`
	CommercialZones  int `bun:"commercial_zones,notnull"`
	IndustrialZones  int `bun:"industrial_zones,notnull"`
	Parks            int `bun:"parks,notnull"`
	Hospitals        int `bun:"hospitals,notnull"`
	Schools          int `bun:"schools,notnull"`
	PowerPlants      int `bun:"power_plants,notnull"`
	Roads            int `bun:"roads,notnull"`

	Electricity float64 `bun:"electricity,notnull"`
	Water       float64 `bun:"water,notnull"`
	Sewage      float64 `bun:"sewage,notnull"`

	TaxRate        float64 `bun:"tax_rate,notnull"`
	MonthlyRevenue int64   `bun:"monthly_revenue,notnull,default:0"`
	MonthlyExpense int64   `bun:"monthly_expense,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// DefaultCity returns a freshly founded municipality with the starting
// metrics every new city begins from (Manila coordinates).
func DefaultCity(userID, name string) City {
	return City{
		UserID:           userID,
		Name:             name,
		X:                14.5994,
		Y:                120.9842,
		Population:       50000,
		Budget:           1000000,
		Happiness:        75,
		Pollution:        20,
		Employment:       65,
		Education:        60,
		Health:           70,
		Crime:            15,
		Infrastructure:   50,
		ResidentialZones: 10,
		CommercialZones:  5,
		IndustrialZones:  2,
		Parks:            3,
		Hospitals:        2,
		Schools:          3,
		PowerPlants:      1,
		Roads:            150,
		Electricity:      80,
		Water:            75,
		Sewage:           70,
		TaxRate:          0.08,
	}
}
