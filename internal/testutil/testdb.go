// Package testutil opens throwaway SQLite databases for repository-backed tests.
package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// NewDB returns a migrated in-memory database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func Salon(t *testing.T, gdb *gorm.DB, autoConfirm bool) *models.Salon {
	t.Helper()
	s := &models.Salon{Name: "Studio", Timezone: "UTC", AutoConfirm: autoConfirm}
	require.NoError(t, gdb.Create(s).Error)
	return s
}

func Client(t *testing.T, gdb *gorm.DB, salon *models.Salon, name string) *models.Client {
	t.Helper()
	c := &models.Client{SalonID: salon.ID, Name: name}
	require.NoError(t, gdb.Create(c).Error)
	return c
}

func Staff(t *testing.T, gdb *gorm.DB, salon *models.Salon, name string) *models.Staff {
	t.Helper()
	s := &models.Staff{SalonID: salon.ID, Name: name, Active: true}
	require.NoError(t, gdb.Create(s).Error)
	return s
}

func Product(t *testing.T, gdb *gorm.DB, salon *models.Salon, name string, stock, threshold int) *models.Product {
	t.Helper()
	p := &models.Product{
		SalonID:           salon.ID,
		Name:              name,
		Price:             decimal.RequireFromString("19.90"),
		QuantityInStock:   stock,
		LowStockThreshold: threshold,
		IsActive:          true,
		IsSellable:        true,
		IsRetail:          true,
	}
	require.NoError(t, gdb.Create(p).Error)
	return p
}
