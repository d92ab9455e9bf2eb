package db

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ExclusionConstraint is the storage-level guard against double-booking a staff member.
const ExclusionConstraint = "appointments_staff_no_overlap"

func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Open connects to PostgreSQL for postgres:// DSNs and to SQLite (modernc driver) otherwise.
func Open(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	if IsPostgres(dsn) {
		cfg.PrepareStmt = true
		db, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
		return db, nil
	}

	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        dsn,
	}), cfg)
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	// SQLite has a single writer; one connection makes transactions queue instead of failing.
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Salon{},
		&models.Client{},
		&models.Staff{},
		&models.Appointment{},
		&models.Product{},
		&models.InventoryTransaction{},
		&models.Notification{},
		&models.OutboxEvent{},
		&models.Payment{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return fmt.Errorf("enable btree_gist: %w", err)
	}

	var exists int64
	if err := db.Raw(
		`SELECT count(*) FROM pg_constraint WHERE conname = ?`,
		ExclusionConstraint,
	).Scan(&exists).Error; err != nil {
		return err
	}
	if exists > 0 {
		return nil
	}

	return db.Exec(`
        ALTER TABLE appointments
        ADD CONSTRAINT ` + ExclusionConstraint + `
        EXCLUDE USING gist (
            staff_id WITH =,
            tstzrange(start_time, end_time, '[)') WITH &&
        ) WHERE (staff_id IS NOT NULL AND status NOT IN ('canceled', 'no-show'))
    `).Error
}
