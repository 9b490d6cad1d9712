package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/credit"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormInstallmentRepository_ListPending(t *testing.T) {
	t.Run("orders by due date then number", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInstallmentRepository(db)

		customerID := uuid.New()
		saleID := uuid.New()
		due := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"id", "sale_id", "customer_id", "number", "value", "due_date", "status", "version"}).
			AddRow(uuid.New(), saleID, customerID, 1, decimal.NewFromInt(100), due, "pending", 1).
			AddRow(uuid.New(), saleID, customerID, 2, decimal.NewFromInt(100), due.AddDate(0, 1, 0), "pending", 1)

		mock.ExpectQuery(`SELECT \* FROM "installments" WHERE customer_id = \$1 AND status = \$2 ORDER BY due_date ASC, number ASC`).
			WithArgs(customerID, "pending").
			WillReturnRows(rows)

		pending, err := repo.ListPending(context.Background(), customerID)

		assert.NoError(t, err)
		assert.Len(t, pending, 2)
		assert.Equal(t, 1, pending[0].Number)
		assert.True(t, pending[0].IsPending())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInstallmentRepository_FindByID(t *testing.T) {
	t.Run("maps missing row to not found", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInstallmentRepository(db)

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "installments" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(id, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		inst, err := repo.FindByID(context.Background(), id)

		assert.Nil(t, inst)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInstallmentRepository_CreateBatch(t *testing.T) {
	t.Run("empty schedule is a no-op", func(t *testing.T) {
		db, _, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInstallmentRepository(db)

		assert.NoError(t, repo.CreateBatch(context.Background(), nil))
	})

	t.Run("inserts the whole schedule", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInstallmentRepository(db)

		saleID := uuid.New()
		customerID := uuid.New()
		issued := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		schedule, err := credit.GenerateSchedule(saleID, customerID, decimal.NewFromInt(300), 3, issued)
		assert.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "installments"`).
			WillReturnResult(sqlmock.NewResult(0, 3))

		assert.NoError(t, repo.CreateBatch(context.Background(), schedule))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentReceiptRepository_Create(t *testing.T) {
	t.Run("maps duplicate key to duplicate payment", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormPaymentReceiptRepository(db)

		alloc := &credit.Allocation{Processed: 1, RemainingCredit: decimal.Zero}
		receipt := credit.NewPaymentReceipt(uuid.New(), uuid.New(), decimal.NewFromInt(100), alloc, "pos-1")

		mock.ExpectExec(`INSERT INTO "payment_receipts"`).
			WillReturnError(gorm.ErrDuplicatedKey)

		err := repo.Create(context.Background(), receipt)

		assert.Equal(t, shared.ErrDuplicatePayment, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
