package tycoon

import (
	"context"
	"log/slog"
	"time"

	"github.com/pisoplay/tycoon/tycoon/database"
	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/database/repositories"
	"github.com/pisoplay/tycoon/tycoon/economy/income"
	"github.com/pisoplay/tycoon/tycoon/economy/market"
	"github.com/pisoplay/tycoon/tycoon/economy/property"
	economyutils "github.com/pisoplay/tycoon/tycoon/economy/utils"
	"github.com/pisoplay/tycoon/tycoon/sim"
	"github.com/pisoplay/tycoon/tycoon/utils"
)

func New(cfg Config, version string, commit string) *App {
	return &App{
		Cfg:            cfg,
		Version:        version,
		Commit:         commit,
		ProcessManager: utils.NewBackgroundProcessManager(),
	}
}

// App holds every wired subsystem of the game engine. Build it with
// New, then call Setup once the database is connected.
type App struct {
	Cfg            Config
	Version        string
	Commit         string
	DB             *database.DB
	ProcessManager *utils.BackgroundProcessManager

	CharacterRepository   repositories.CharacterRepository
	CityRepository        repositories.CityRepository
	PropertyRepository    repositories.PropertyRepository
	ListingRepository     repositories.ListingRepository
	OfferRepository       repositories.OfferRepository
	InventoryRepository   repositories.InventoryRepository
	TransactionRepository repositories.TransactionRepository
	IncomeRepository      repositories.IncomeRepository

	TxManager       *economyutils.EconomicTransactionManager
	PropertyEngine  *property.Engine
	IncomeCollector *income.Collector
	Exchange        *market.Exchange
	Scheduler       *sim.Scheduler
}

// Setup wires repositories, engines and the simulation scheduler on
// top of an already-connected database.
func (a *App) Setup(db *database.DB) error {
	a.DB = db
	bunDB := db.BunDB()

	a.CharacterRepository = repositories.NewCharacterRepository(bunDB)
	a.CityRepository = repositories.NewCityRepository(bunDB)
	a.PropertyRepository = repositories.NewPropertyRepository(bunDB)
	a.ListingRepository = repositories.NewListingRepository(bunDB)
	a.OfferRepository = repositories.NewOfferRepository(bunDB)
	a.InventoryRepository = repositories.NewInventoryRepository(bunDB)
	a.TransactionRepository = repositories.NewTransactionRepository(bunDB)
	a.IncomeRepository = repositories.NewIncomeRepository(bunDB)

	a.TxManager = economyutils.NewEconomicTransactionManager(bunDB)

	a.PropertyEngine = property.NewEngine(
		a.TxManager,
		a.PropertyRepository,
		a.CharacterRepository,
		a.TransactionRepository,
		a.Cfg.Economy.ValueDriftRate,
	)

	a.IncomeCollector = income.NewCollector(
		a.TxManager,
		a.PropertyEngine,
		a.IncomeRepository,
		a.CharacterRepository,
		a.Cfg.Economy.CollectionHours,
	)

	exchange, err := market.NewExchange(
		a.TxManager,
		a.ListingRepository,
		a.OfferRepository,
		a.PropertyRepository,
		a.InventoryRepository,
		a.CharacterRepository,
		a.TransactionRepository,
	)
	if err != nil {
		return err
	}
	a.Exchange = exchange

	a.Scheduler = sim.NewScheduler(
		a.CityRepository,
		time.Duration(a.Cfg.Sim.TickIntervalSeconds)*time.Second,
		a.Cfg.Sim.Speed,
	)

	slog.Info("Economy subsystems initialized",
		slog.String("type", "sys"),
		slog.Float64("value_drift_rate", a.Cfg.Economy.ValueDriftRate),
		slog.Any("collection_hours", a.Cfg.Economy.CollectionHours))
	return nil
}

// StartBackgroundProcesses launches the income collector loop and the
// listing expiry sweep under the process manager.
func (a *App) StartBackgroundProcesses() {
	a.ProcessManager.StartProcess("income-collector", "batch daily income collection", func(ctx context.Context) {
		if err := a.IncomeCollector.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("Income collector exited",
				slog.String("type", "sys"),
				slog.String("error", err.Error()))
		}
	})

	a.ProcessManager.StartProcess("listing-expiry", "marketplace listing expiry sweep", func(ctx context.Context) {
		ticker := time.NewTicker(listingSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sweepCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
				expired, err := a.Exchange.ExpireOldListings(sweepCtx)
				cancel()
				if err != nil {
					slog.Error("Listing expiry sweep failed",
						slog.String("type", "sys"),
						slog.String("error", err.Error()))
					continue
				}
				if expired > 0 {
					slog.Info("Expired stale listings",
						slog.String("type", "sys"),
						slog.Int64("count", expired))
				}
			case <-ctx.Done():
				return
			}
		}
	})
}

// StartSimulation runs the city tick loop for one user's cities under
// the process manager.
func (a *App) StartSimulation(userID string) {
	a.ProcessManager.StartProcess("sim-"+userID, "city simulation ticks for "+userID, func(ctx context.Context) {
		if err := a.Scheduler.Start(ctx, userID); err != nil && ctx.Err() == nil {
			slog.Error("Simulation scheduler exited",
				slog.String("type", "sys"),
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
		}
	})
}

// CreateCharacter makes a new character for a user with the configured
// starting balance and a default home city.
func (a *App) CreateCharacter(ctx context.Context, userID, name, homeCity string) (*models.Character, error) {
	character := &models.Character{
		UserID:   userID,
		Name:     name,
		HomeCity: homeCity,
		Location: homeCity,
		Balance:  a.Cfg.Economy.StartingBalance,
		Energy:   economyutils.MaxEnergy,
	}
	if err := a.CharacterRepository.Create(ctx, character); err != nil {
		return nil, err
	}

	city := models.DefaultCity(userID, homeCity)
	if err := a.CityRepository.Create(ctx, &city); err != nil {
		return nil, err
	}

	slog.Info("Character created",
		slog.String("type", "sys"),
		slog.Int64("character_id", character.ID),
		slog.String("user_id", userID),
		slog.Int64("starting_balance", character.Balance))
	return character, nil
}

// CompleteWorkSession restores the configured energy amount after a
// finished work session.
func (a *App) CompleteWorkSession(ctx context.Context, characterID int64) error {
	return a.CharacterRepository.RecordWorkSession(ctx, characterID, a.Cfg.Economy.EnergyPerWork)
}

// Shutdown stops schedulers and background processes, then closes the
// database.
func (a *App) Shutdown(timeout time.Duration) {
	a.Scheduler.Stop()
	a.IncomeCollector.Stop()

	if err := a.ProcessManager.Shutdown(timeout); err != nil {
		slog.Warn("Background processes did not stop in time",
			slog.String("type", "sys"),
			slog.Duration("timeout", timeout))
	}

	if a.DB != nil {
		a.DB.Close()
	}
}

const listingSweepInterval = 15 * time.Minute
