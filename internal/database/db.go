package database

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/justsurfingit/resume-legend/internal/config"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Supabase Postgres database and runs migrations when enabled.
// The returned cleanup closes the pool.
func Connect(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, func(), error) {
	connConfig, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to parse database url")
	}
	// The Supabase pooler (PgBouncer, transaction mode) cannot keep prepared statements.
	connConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	sqlDB := stdlib.OpenDB(*connConfig)
	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MaxConns / 2)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, nil, errors.Wrap(err, "database unreachable")
	}
	logger.Info("database connection established")

	if cfg.AutoMigrate {
		logger.Info("running migrations")
		if err := Migrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("closing database", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Application{},
		&models.ResumeVersion{},
		&models.CoverLetter{},
		&models.Reminder{},
		&models.LegendPoints{},
		&models.EmailResponse{},
		&models.ProcessedEmail{},
		&models.MailboxState{},
	)
	if err != nil {
		return errors.Wrap(err, "migration failed")
	}
	return nil
}
