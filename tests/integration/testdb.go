// Package integration exercises the repositories and transaction scopes
// against a real database. SQLite keeps the suite self-contained; the
// production schema lives in migrations/ and runs against postgres.
package integration

import (
	"path/filepath"
	"testing"

	"github.com/shop/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a throwaway sqlite database migrated to the current models
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shop_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&models.CustomerModel{},
		&models.ProductModel{},
		&models.SaleModel{},
		&models.SaleItemModel{},
		&models.InstallmentModel{},
		&models.PaymentReceiptModel{},
		&models.ExpenseModel{},
	)
	require.NoError(t, err, "failed to migrate test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
