package recorder

import (
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/appengine-ltd/sail-it/internal/config"
)

// Manager owns the recorder's database connection. Postgres when the
// config names a host, otherwise the embedded SQLite fallback so a
// voyage is never lost to a missing server.
type Manager struct {
	DB        *gorm.DB
	SqlDB     *sql.DB
	IsValid   bool
	LocalOnly bool
	Logger    zerolog.Logger
}

func NewManager(log zerolog.Logger) *Manager {
	return &Manager{Logger: log}
}

// Connect establishes the connection. A reachable Postgres wins; anything
// else lands on SQLite, in memory unless cfg.SQLitePath names a file.
func (m *Manager) Connect(cfg config.DBConfig) error {
	if cfg.Host != "" {
		db, err := m.postgresDB(cfg)
		if err == nil {
			m.DB = db
			err = m.ping()
		}
		if err == nil {
			m.IsValid = true
			m.SqlDB.SetMaxOpenConns(10)
			m.Logger.Info().Str("host", cfg.Host).Msg("connected to postgres")
			return nil
		}
		m.Logger.Error().Err(err).Msg("postgres unavailable, falling back to sqlite")
	}

	m.LocalOnly = true
	db, err := m.sqliteDB(cfg.SQLitePath)
	if err != nil || db == nil {
		m.IsValid = false
		return fmt.Errorf("failed to open local sqlite db: %w", err)
	}
	m.DB = db
	if err := m.ping(); err != nil {
		m.IsValid = false
		return fmt.Errorf("failed to validate sqlite connection: %w", err)
	}
	m.IsValid = true
	return nil
}

func (m *Manager) ping() error {
	sqlDB, err := m.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	m.SqlDB = sqlDB
	return sqlDB.Ping()
}

func (m *Manager) postgresDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		`host=%s port=%s user=%s password=%s dbname=%s sslmode=disable`,
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database,
	)

	m.Logger.Debug().Str("host", cfg.Host).Str("db", cfg.Database).Msg("connecting to postgres")

	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		CreateBatchSize:        1000,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
}

func (m *Manager) sqliteDB(path string) (*gorm.DB, error) {
	source := "file::memory:?cache=shared"
	if path != "" {
		source = path
	}

	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		CreateBatchSize:        500,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = MEMORY;",
		"PRAGMA synchronous = OFF;",
		"PRAGMA temp_store = MEMORY;",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("error setting pragma: %w", err)
		}
	}

	if path == "" {
		m.Logger.Info().Msg("using in-memory sqlite db")
	} else {
		m.Logger.Info().Str("path", path).Msg("using local sqlite db")
	}
	return db, nil
}

// Setup migrates the voyage schema.
func (m *Manager) Setup() error {
	if m.DB == nil {
		return fmt.Errorf("connect before setup")
	}
	if err := m.DB.AutoMigrate(DatabaseModels...); err != nil {
		m.IsValid = false
		return fmt.Errorf("failed to migrate voyage schema: %w", err)
	}
	m.Logger.Info().Msg("voyage schema ready")
	return nil
}

// Close releases the underlying connection.
func (m *Manager) Close() error {
	if m.SqlDB == nil {
		return nil
	}
	return m.SqlDB.Close()
}
