package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/partner"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a GORM DB backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormCustomerRepository_FindByID(t *testing.T) {
	t.Run("finds existing customer", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(db)

		customerID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "name", "phone", "total_bought", "total_paid", "version"}).
			AddRow(customerID, "Maria Silva", "+55 11 99999-0000", decimal.NewFromInt(300), decimal.NewFromInt(100), 1)

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnRows(rows)

		customer, err := repo.FindByID(context.Background(), customerID)

		assert.NoError(t, err)
		assert.Equal(t, customerID, customer.ID)
		assert.Equal(t, "Maria Silva", customer.Name)
		assert.True(t, customer.Debt().Equal(decimal.NewFromInt(200)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(db)

		customerID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		customer, err := repo.FindByID(context.Background(), customerID)

		assert.Nil(t, customer)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_FindByIDForUpdate(t *testing.T) {
	t.Run("issues a FOR UPDATE read", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(db)

		customerID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "name", "total_bought", "total_paid", "version"}).
			AddRow(customerID, "Maria Silva", decimal.Zero, decimal.Zero, 1)

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .* FOR UPDATE`).
			WithArgs(customerID, 1).
			WillReturnRows(rows)

		customer, err := repo.FindByIDForUpdate(context.Background(), customerID)

		assert.NoError(t, err)
		assert.Equal(t, customerID, customer.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_SaveWithLock(t *testing.T) {
	t.Run("updates when version matches", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(db)

		customer, err := partner.NewCustomer("Maria Silva", "")
		require.NoError(t, err)
		require.NoError(t, customer.IncrementPaid(decimal.NewFromInt(50)))

		mock.ExpectExec(`UPDATE "customers" SET .* WHERE \(id = \$\d+ AND version = \$\d+\)`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SaveWithLock(context.Background(), customer))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fails when another transaction bumped the version", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(db)

		customer, err := partner.NewCustomer("Maria Silva", "")
		require.NoError(t, err)
		require.NoError(t, customer.IncrementPaid(decimal.NewFromInt(50)))

		mock.ExpectExec(`UPDATE "customers" SET .* WHERE \(id = \$\d+ AND version = \$\d+\)`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.SaveWithLock(context.Background(), customer)

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "OPTIMISTIC_LOCK_ERROR", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_Delete(t *testing.T) {
	t.Run("missing customer maps to not found", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(db)

		customerID := uuid.New()
		mock.ExpectExec(`DELETE FROM "customers" WHERE id = \$1`).
			WithArgs(customerID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.Equal(t, shared.ErrNotFound, repo.Delete(context.Background(), customerID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
