package database

import (
	"errors"
	"fmt"
	"time"

	"gametracker/backend/internal/logging"
	"gametracker/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Options tunes the connection pool.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Connect opens the PostgreSQL connection, checks it and runs migrations.
// The caller owns the returned handle and must release it with Close.
func Connect(dsn string, opts Options) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("database: empty DSN")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: NewLogger(200 * time.Millisecond),
		// Review.GameID is a plain reference; existence is checked by the handlers.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	logging.Info().Msg("Database connection established")

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the games and reviews tables.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("database: nil connection")
	}
	if err := db.AutoMigrate(&models.Game{}, &models.Review{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logging.Info().Msg("Database migrated successfully")
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	logging.Info().Msg("Database connection closed")
	return nil
}
