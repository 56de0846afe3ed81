package utils

import "time"

// Experience Constants
const (
	ExpPerLevel        = 1000 // Experience required per level
	ItemSaleBaseExp    = 10   // Base experience for an item sale
	PropertySaleExpCap = 500  // Ceiling on property-sale experience
	UpgradeBaseExp     = 50   // Base experience for a property upgrade
	UpgradeExpPerTier  = 10   // Additional experience per tier reached
)

// Property Constants
const (
	WorkerBaseCost      = 5000 // Cost of the first worker
	WorkerCostIncrement = 2000 // Additional cost per already-hired worker
	SellValueRate       = 0.95 // Fraction of current value recovered on sale
	UpgradeValueRate    = 0.15 // Value gain per tier on upgrade
	WorkerIncomeRate    = 0.2  // Revenue boost fraction per hired worker
)

// Income Constants
const (
	ValueDriftRate     = 0.001 // Property value drift per collection
	EnergyPerWork      = 5     // Energy restored per completed work session
	MaxEnergy          = 100   // Energy ceiling
	CollectConcurrency = 8     // Parallel collections in a batch run
)

// Transaction Constants
const (
	DefaultTxTimeout = 30 * time.Second // Default transaction timeout
	ReadMaxRetries   = 3                // Retries for read-only queries
	ReadRetryBackoff = 50 * time.Millisecond
)
