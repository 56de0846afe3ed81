package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"time"

	"log/slog"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/uptrace/bun"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
	schemaVersion        = 1 // bump when schema/migrations change
)

type DBConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
}

type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	// Retry the initial dial so a slow database start is tolerated
	var conn net.Conn
	var err error

	tryDial := func() (net.Conn, error) {
		addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))
		force4 := os.Getenv("DB_DIAL_FORCE_IPV4") == "1"
		force6 := os.Getenv("DB_DIAL_FORCE_IPV6") == "1"

		if force4 {
			return net.DialTimeout("tcp4", addr, defaultConnTimeout)
		}
		if force6 {
			return net.DialTimeout("tcp6", addr, defaultConnTimeout)
		}

		// Prefer IPv4, then fall back to IPv6
		if c, e := net.DialTimeout("tcp4", addr, defaultConnTimeout); e == nil {
			return c, nil
		}
		return net.DialTimeout("tcp6", addr, defaultConnTimeout)
	}

	for i := 0; i < defaultMaxRetries; i++ {
		conn, err = tryDial()
		if err == nil {
			break
		}
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", defaultMaxRetries, err)
	}
	defer conn.Close()

	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxLifetime) * time.Second
	}

	return createDB(ctx, poolConfig)
}

func buildConnString(cfg DBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?connect_timeout=5",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
}

func createDB(ctx context.Context, poolConfig *pgxpool.Config) (*DB, error) {
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	bunDB := newBunDB(pool)
	return &DB{pool: pool, bunDB: bunDB}, nil
}

func (db *DB) GetPool() *pgxpool.Pool {
	return db.pool
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func newBunDB(pool *pgxpool.Pool) *bun.DB {
	sslMode := os.Getenv("PG_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pool.Config().ConnConfig.User,
		pool.Config().ConnConfig.Password,
		pool.Config().ConnConfig.Host,
		pool.Config().ConnConfig.Port,
		pool.Config().ConnConfig.Database,
		sslMode,
	)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

func (db *DB) ExecWithLog(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	start := time.Now()
	result, err := db.pool.Exec(ctx, sql, args...)
	duration := time.Since(start)

	if err != nil {
		slog.Error("Query failed",
			slog.String("type", "db"),
			slog.String("operation", "exec"),
			slog.String("query", sql),
			slog.Any("args", args),
			slog.Duration("took", duration),
			slog.Any("error", err),
		)
		return result, err
	}

	slog.Debug("Query executed",
		slog.String("type", "db"),
		slog.String("operation", "exec"),
		slog.String("query", sql),
		slog.Duration("took", duration),
		slog.Int64("affected_rows", result.RowsAffected()),
	)
	return result, nil
}

func (db *DB) QueryWithLog(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	start := time.Now()
	rows, err := db.pool.Query(ctx, sql, args...)
	duration := time.Since(start)

	if err != nil {
		slog.Error("Query failed",
			slog.String("type", "db"),
			slog.String("operation", "query"),
			slog.String("query", sql),
			slog.Any("args", args),
			slog.Duration("took", duration),
			slog.Any("error", err),
		)
		return rows, err
	}

	slog.Debug("Query executed",
		slog.String("type", "db"),
		slog.String("operation", "query"),
		slog.String("query", sql),
		slog.Duration("took", duration),
	)
	return rows, nil
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}

// InitializeSchema creates all required database tables and indexes
func (db *DB) InitializeSchema(ctx context.Context) error {
	// Fast init path for development: skip when schema version matches
	fastInit := os.Getenv("DB_FAST_INIT") == "1"
	if fastInit {
		if err := db.ensureAppMeta(ctx); err == nil {
			if v, _ := db.getAppMeta(ctx, "schema_version"); v == fmt.Sprintf("%d", schemaVersion) {
				slog.Info("Fast DB init: schema up-to-date, skipping initialization",
					slog.String("mode", "DB_FAST_INIT"),
					slog.Int("schema_version", schemaVersion))
				return nil
			}
		}
	}

	// Create tables in the correct order to handle foreign key constraints
	tables := []interface{}{
		(*models.Character)(nil),
		(*models.City)(nil),
		(*models.Item)(nil),
		(*models.InventoryEntry)(nil),
		(*models.Property)(nil),
		(*models.Listing)(nil),
		(*models.Offer)(nil),
		(*models.Transaction)(nil),
		(*models.IncomeCollection)(nil),
		(*models.ExperienceLog)(nil),
	}

	for _, model := range tables {
		query := db.bunDB.NewCreateTable().
			Model(model).
			IfNotExists()

		_, err := query.Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_characters_user_id ON characters(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_cities_user_id ON cities(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_properties_owner_id ON properties(owner_id);",
		"CREATE INDEX IF NOT EXISTS idx_properties_owner_active ON properties(owner_id) WHERE status = 'active';",
		"CREATE INDEX IF NOT EXISTS idx_inventory_character_item ON inventory(character_id, item_id);",
		"CREATE INDEX IF NOT EXISTS idx_listings_seller_id ON listings(seller_id);",
		"CREATE INDEX IF NOT EXISTS idx_listings_status ON listings(status);",
		"CREATE INDEX IF NOT EXISTS idx_listings_active_expiry ON listings(expires_at) WHERE status = 'active';",
		"CREATE INDEX IF NOT EXISTS idx_offers_listing_id ON offers(listing_id);",
		"CREATE INDEX IF NOT EXISTS idx_offers_buyer_status ON offers(buyer_id, status);",
		"CREATE INDEX IF NOT EXISTS idx_offers_pending ON offers(listing_id) WHERE status = 'pending';",
		"CREATE INDEX IF NOT EXISTS idx_transactions_from_id ON transactions(from_id);",
		"CREATE INDEX IF NOT EXISTS idx_transactions_to_id ON transactions(to_id);",
		"CREATE INDEX IF NOT EXISTS idx_transactions_kind_created ON transactions(kind, created_at);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_income_collections_guard ON income_collections(character_id, collected_on);",
		"CREATE INDEX IF NOT EXISTS idx_experience_log_character ON experience_log(character_id);",
	}

	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	if err := db.InitializeItemData(ctx); err != nil {
		return fmt.Errorf("failed to initialize item data: %w", err)
	}

	// Update schema version marker (safe upsert)
	if err := db.ensureAppMeta(ctx); err == nil {
		_ = db.setAppMeta(ctx, "schema_version", fmt.Sprintf("%d", schemaVersion))
	}

	return nil
}

// ensureAppMeta creates the app_meta table if not exists
func (db *DB) ensureAppMeta(ctx context.Context) error {
	_, err := db.ExecWithLog(ctx, `CREATE TABLE IF NOT EXISTS app_meta (key TEXT PRIMARY KEY, value TEXT)`)
	return err
}

func (db *DB) getAppMeta(ctx context.Context, key string) (string, error) {
	row := db.pool.QueryRow(ctx, `SELECT value FROM app_meta WHERE key = $1`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		return "", err
	}
	return v, nil
}

func (db *DB) setAppMeta(ctx context.Context, key, value string) error {
	sql := `INSERT INTO app_meta(key, value) VALUES($1, $2)
	        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	_, err := db.pool.Exec(ctx, sql, key, value)
	return err
}

// Ping verifies both database connections are working
func (db *DB) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pgxpool ping failed: %w", err)
	}

	if err := db.bunDB.PingContext(ctx); err != nil {
		return fmt.Errorf("bun ping failed: %w", err)
	}

	return nil
}

// InitializeItemData seeds the default tradeable goods catalog
func (db *DB) InitializeItemData(ctx context.Context) error {
	var itemCount int
	err := db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM items WHERE slug IN ('rice_sack', 'dried_fish', 'coconut_lumber')").Scan(&itemCount)
	if err == nil && itemCount >= 3 {
		slog.Info("Item data already initialized, skipping")
		return nil
	}

	items := []struct {
		Slug        string
		Name        string
		Category    string
		BasePrice   int64
		Description string
	}{
		{
			Slug:        "rice_sack",
			Name:        "Sack of Rice",
			Category:    "produce",
			BasePrice:   2200,
			Description: "A 50kg sack of milled rice. The staple of every market stall.",
		},
		{
			Slug:        "dried_fish",
			Name:        "Dried Fish Bundle",
			Category:    "produce",
			BasePrice:   850,
			Description: "Sun-dried fish from the coastal towns. Keeps well, sells fast.",
		},
		{
			Slug:        "coconut_lumber",
			Name:        "Coconut Lumber",
			Category:    "material",
			BasePrice:   3400,
			Description: "Treated coconut timber for construction. Heavy but cheap.",
		},
		{
			Slug:        "sari_sari_stock",
			Name:        "Sari-sari Store Stock",
			Category:    "goods",
			BasePrice:   5000,
			Description: "A mixed crate of small goods ready to restock a neighborhood store.",
		},
		{
			Slug:        "jeepney_parts",
			Name:        "Jeepney Spare Parts",
			Category:    "material",
			BasePrice:   12500,
			Description: "Assorted replacement parts. Every route operator needs them eventually.",
		},
	}

	insertSQL := `
		INSERT INTO items (slug, name, category, base_price, description, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		ON CONFLICT (slug) DO NOTHING;
	`

	for _, item := range items {
		if _, err := db.ExecWithLog(ctx, insertSQL,
			item.Slug, item.Name, item.Category, item.BasePrice, item.Description); err != nil {
			return fmt.Errorf("failed to insert item %s: %w", item.Slug, err)
		}
	}

	slog.Info("Initial item data initialized successfully")
	return nil
}
