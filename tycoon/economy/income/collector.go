package income

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/database/repositories"
	"github.com/pisoplay/tycoon/tycoon/economy"
	"github.com/pisoplay/tycoon/tycoon/economy/property"
	"github.com/pisoplay/tycoon/tycoon/economy/utils"
	"github.com/uptrace/bun"
	"golang.org/x/sync/errgroup"
)

// Result reports one character's daily collection.
type Result struct {
	CharacterID int64
	Collected   bool
	TotalIncome int64
	Properties  []property.PropertyIncome
}

// Observer receives completed collection results.
type Observer func(Result)

// Collector credits daily property income, at most once per character
// per UTC calendar day regardless of concurrent callers.
type Collector struct {
	txManager  utils.TransactionManager
	engine     *property.Engine
	income     repositories.IncomeRepository
	characters repositories.CharacterRepository
	hours      []int

	shutdown  chan struct{}
	closeOnce sync.Once

	observers []Observer
	obsMu     sync.RWMutex
}

func NewCollector(
	txManager utils.TransactionManager,
	engine *property.Engine,
	income repositories.IncomeRepository,
	characters repositories.CharacterRepository,
	hours []int,
) *Collector {
	if len(hours) == 0 {
		hours = []int{0, 6, 12, 18}
	}
	sorted := append([]int(nil), hours...)
	sort.Ints(sorted)
	return &Collector{
		txManager:  txManager,
		engine:     engine,
		income:     income,
		characters: characters,
		hours:      sorted,
		shutdown:   make(chan struct{}),
	}
}

// Subscribe registers an observer for completed collections.
func (c *Collector) Subscribe(obs Observer) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	c.observers = append(c.observers, obs)
}

func (c *Collector) notify(result Result) {
	c.obsMu.RLock()
	observers := c.observers
	c.obsMu.RUnlock()

	for _, obs := range observers {
		go func(obs Observer) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("Income observer panicked",
						slog.Int64("character_id", result.CharacterID),
						slog.Any("panic", r))
				}
			}()
			obs(result)
		}(obs)
	}
}

// CollectDailyIncome credits one character's daily income. The credit
// and the per-day guard row commit in the same transaction, so a
// second call on the same calendar day rolls back to nothing and
// returns Collected=false.
func (c *Collector) CollectDailyIncome(ctx context.Context, characterID int64, now time.Time) (*Result, error) {
	result := Result{CharacterID: characterID}

	err := c.txManager.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var collect property.CollectResult
		if err := c.engine.CollectIncomeTx(ctx, tx, characterID, &collect); err != nil {
			return err
		}

		inserted, err := c.income.TryRecordCollectionTx(ctx, tx, &models.IncomeCollection{
			CharacterID: characterID,
			CollectedOn: models.CollectionDay(now),
			Amount:      collect.TotalIncome,
			Properties:  len(collect.Properties),
		})
		if err != nil {
			return err
		}
		if !inserted {
			return economy.ErrAlreadyCollectedToday(characterID)
		}

		result.Collected = true
		result.TotalIncome = collect.TotalIncome
		result.Properties = collect.Properties
		return nil
	})
	if err != nil {
		if economy.KindOf(err) == economy.KindAlreadyCollectedToday {
			return &result, nil
		}
		return nil, err
	}

	c.notify(result)
	return &result, nil
}

// CollectForAllCharacters runs a daily batch over every active
// character. Individual failures are logged and do not stop the batch.
func (c *Collector) CollectForAllCharacters(ctx context.Context, now time.Time) error {
	characters, err := c.characters.GetActive(ctx)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(utils.CollectConcurrency)

	var mu sync.Mutex
	var credited, skipped, failed int

	for _, character := range characters {
		character := character
		g.Go(func() error {
			result, err := c.CollectDailyIncome(ctx, character.ID, now)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				failed++
				slog.Error("Daily income collection failed",
					slog.Int64("character_id", character.ID),
					slog.String("error", err.Error()))
			case result.Collected:
				credited++
			default:
				skipped++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("Daily income batch finished",
		slog.Int("credited", credited),
		slog.Int("skipped", skipped),
		slog.Int("failed", failed))
	return nil
}

// NextCollectionTime returns the next scheduled batch instant, chosen
// from the configured UTC hours.
func (c *Collector) NextCollectionTime(now time.Time) time.Time {
	now = now.UTC()
	for _, h := range c.hours {
		candidate := time.Date(now.Year(), now.Month(), now.Day(), h, 0, 0, 0, time.UTC)
		if candidate.After(now) {
			return candidate
		}
	}
	// All of today's hours have passed; first hour tomorrow.
	next := now.AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), c.hours[0], 0, 0, 0, time.UTC)
}

// Run fires a batch at each scheduled hour until the context ends or
// Stop is called. Blocks; run it under a background process manager.
func (c *Collector) Run(ctx context.Context) error {
	for {
		next := c.NextCollectionTime(time.Now())
		timer := time.NewTimer(time.Until(next))

		slog.Info("Next income collection scheduled",
			slog.Time("at", next))

		select {
		case <-timer.C:
			if err := c.CollectForAllCharacters(ctx, time.Now()); err != nil {
				slog.Error("Income batch failed",
					slog.String("error", err.Error()))
			}
		case <-c.shutdown:
			timer.Stop()
			slog.Info("Income collector stopped")
			return nil
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}

// Stop shuts the collector down. Safe to call more than once.
func (c *Collector) Stop() {
	c.closeOnce.Do(func() {
		close(c.shutdown)
	})
}
