package tycoon

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

type Config struct {
	Log     LogConfig     `toml:"log"`
	DB      DBConfig      `toml:"db"`
	Sim     SimConfig     `toml:"sim"`
	Economy EconomyConfig `toml:"economy"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

type SimConfig struct {
	// TickIntervalSeconds is the base wall-clock interval between city
	// ticks; Speed divides it.
	TickIntervalSeconds int     `toml:"tick_interval_seconds"`
	Speed               float64 `toml:"speed"`
}

type EconomyConfig struct {
	// ValueDriftRate is the fractional property value gain applied on
	// each income collection.
	ValueDriftRate float64 `toml:"value_drift_rate"`
	// EnergyPerWork is restored per completed work session.
	EnergyPerWork int `toml:"energy_per_work"`
	// CollectionHours are the UTC hours at which batch income runs.
	CollectionHours []int `toml:"collection_hours"`
	// StartingBalance is granted to newly created characters.
	StartingBalance int64 `toml:"starting_balance"`
}

func (c *Config) applyDefaults() {
	if c.Sim.TickIntervalSeconds <= 0 {
		c.Sim.TickIntervalSeconds = 30
	}
	if c.Sim.Speed <= 0 {
		c.Sim.Speed = 1
	}
	if c.Economy.ValueDriftRate <= 0 {
		c.Economy.ValueDriftRate = 0.001
	}
	if c.Economy.EnergyPerWork <= 0 {
		c.Economy.EnergyPerWork = 5
	}
	if len(c.Economy.CollectionHours) == 0 {
		c.Economy.CollectionHours = []int{0, 6, 12, 18}
	}
	if c.Economy.StartingBalance <= 0 {
		c.Economy.StartingBalance = 50000
	}
}
