package database

import (
	"fmt"
	"time"

	"referee-scheduler-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// AllModels lists every model in migration order
func AllModels() []interface{} {
	return []interface{}{
		&models.Referee{},
		&models.Game{},
		&models.Position{},
		&models.Chunk{},
		&models.Assignment{},
		&models.AvailabilityWindow{},
		&models.AISuggestion{},
		&models.AssignmentRule{},
		&models.PartnerPreference{},
		&models.RuleRun{},
		&models.HistoricPattern{},
	}
}

// Initialize opens a Postgres connection and creates the schema from GORM
// models, including the partial unique indexes that make assignment slot
// uniqueness authoritative under concurrent writers.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := db.AutoMigrate(AllModels()...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		if err := CreatePartialIndexes(db); err != nil {
			return nil, fmt.Errorf("create indexes: %w", err)
		}
	}

	return db, nil
}

// CreatePartialIndexes enforces one active occupant per (game, position) and
// at most one position per (game, referee) among non-deleted assignments.
// Declined rows are excluded so a replacement can take the freed slot.
// These constraints, not the advisory conflict check, decide races.
func CreatePartialIndexes(db *gorm.DB) error {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_assignments_game_position
			ON assignments (game_id, position_id) WHERE deleted_at IS NULL AND status != 'declined'`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_assignments_game_referee
			ON assignments (game_id, referee_id) WHERE deleted_at IS NULL AND status != 'declined'`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
