package credit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/credit"
	"github.com/shop/backend/internal/domain/partner"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockInstallmentRepository is a mock implementation of InstallmentRepository
type MockInstallmentRepository struct {
	mock.Mock
}

func (m *MockInstallmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*credit.Installment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credit.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) ListPending(ctx context.Context, customerID uuid.UUID) ([]*credit.Installment, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*credit.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*credit.Installment, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]*credit.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) ListAll(ctx context.Context, filter shared.Filter) ([]*credit.Installment, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*credit.Installment), args.Get(1).(int64), args.Error(2)
}

func (m *MockInstallmentRepository) Save(ctx context.Context, installment *credit.Installment) error {
	args := m.Called(ctx, installment)
	return args.Error(0)
}

func (m *MockInstallmentRepository) CreateBatch(ctx context.Context, installments []*credit.Installment) error {
	args := m.Called(ctx, installments)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) SaveWithLock(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPaymentReceiptRepository is a mock implementation of PaymentReceiptRepository
type MockPaymentReceiptRepository struct {
	mock.Mock
}

func (m *MockPaymentReceiptRepository) Create(ctx context.Context, receipt *credit.PaymentReceipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockPaymentReceiptRepository) FindByIdempotencyKey(ctx context.Context, key string) (*credit.PaymentReceipt, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credit.PaymentReceipt), args.Error(1)
}

func (m *MockPaymentReceiptRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*credit.PaymentReceipt, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]*credit.PaymentReceipt), args.Error(1)
}

type allocationFixture struct {
	installments *MockInstallmentRepository
	customers    *MockCustomerRepository
	receipts     *MockPaymentReceiptRepository
	service      *AllocationService
}

func newAllocationFixture() *allocationFixture {
	f := &allocationFixture{
		installments: new(MockInstallmentRepository),
		customers:    new(MockCustomerRepository),
		receipts:     new(MockPaymentReceiptRepository),
	}
	scope := NewNoOpTransactionScope(f.installments, f.customers, f.receipts)
	f.service = NewAllocationService(scope, nil)
	return f
}

func (f *allocationFixture) assertExpectations(t *testing.T) {
	f.installments.AssertExpectations(t)
	f.customers.AssertExpectations(t)
	f.receipts.AssertExpectations(t)
}

func testCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer("Maria Silva", "+55 11 99999-0000")
	assert.NoError(t, err)
	return customer
}

func testInstallment(t *testing.T, customerID uuid.UUID, number int, value string, due time.Time) *credit.Installment {
	t.Helper()
	inst, err := credit.NewInstallment(uuid.New(), customerID, number, mustDecimal(t, value), due)
	assert.NoError(t, err)
	return inst
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	assert.NoError(t, err)
	return d
}

func TestAllocationService_PayInstallment_CascadesAcrossPending(t *testing.T) {
	f := newAllocationFixture()
	ctx := context.Background()

	customer := testCustomer(t)
	due := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	first := testInstallment(t, customer.ID, 1, "100.00", due)
	second := testInstallment(t, customer.ID, 2, "100.00", due.AddDate(0, 1, 0))
	third := testInstallment(t, customer.ID, 3, "100.00", due.AddDate(0, 2, 0))

	f.installments.On("FindByID", ctx, second.ID).Return(second, nil)
	f.customers.On("FindByIDForUpdate", ctx, customer.ID).Return(customer, nil)
	f.installments.On("ListPending", ctx, customer.ID).
		Return([]*credit.Installment{first, second, third}, nil)
	f.installments.On("Save", ctx, mock.AnythingOfType("*credit.Installment")).Return(nil).Times(3)
	f.customers.On("SaveWithLock", ctx, customer).Return(nil)
	f.receipts.On("Create", ctx, mock.AnythingOfType("*credit.PaymentReceipt")).Return(nil)

	result, err := f.service.PayInstallment(ctx, PaymentRequest{
		TriggerInstallmentID: second.ID,
		Amount:               mustDecimal(t, "250.00"),
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, result.InstallmentsProcessed)
	assert.True(t, result.RemainingCredit.IsZero())

	// Earliest obligations first: the trigger only selects the ledger.
	assert.True(t, first.IsPaid())
	assert.True(t, second.IsPaid())
	assert.True(t, third.IsPending())
	assert.True(t, third.Value.Equal(mustDecimal(t, "50.00")))

	// total_paid grows by the full amount received.
	assert.True(t, customer.TotalPaid.Equal(mustDecimal(t, "250.00")))
	f.assertExpectations(t)
}

func TestAllocationService_PayInstallment_ReportsOverpaymentCredit(t *testing.T) {
	f := newAllocationFixture()
	ctx := context.Background()

	customer := testCustomer(t)
	due := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	only := testInstallment(t, customer.ID, 1, "100.00", due)

	f.installments.On("FindByID", ctx, only.ID).Return(only, nil)
	f.customers.On("FindByIDForUpdate", ctx, customer.ID).Return(customer, nil)
	f.installments.On("ListPending", ctx, customer.ID).
		Return([]*credit.Installment{only}, nil)
	f.installments.On("Save", ctx, only).Return(nil)
	f.customers.On("SaveWithLock", ctx, customer).Return(nil)
	f.receipts.On("Create", ctx, mock.MatchedBy(func(r *credit.PaymentReceipt) bool {
		return r.RemainingCredit.Equal(mustDecimal(t, "50.00")) && r.InstallmentsSettled == 1
	})).Return(nil)

	result, err := f.service.PayInstallment(ctx, PaymentRequest{
		TriggerInstallmentID: only.ID,
		Amount:               mustDecimal(t, "150.00"),
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.InstallmentsProcessed)
	assert.True(t, result.RemainingCredit.Equal(mustDecimal(t, "50.00")))
	// Overpayment still counts toward total_paid in full.
	assert.True(t, customer.TotalPaid.Equal(mustDecimal(t, "150.00")))
	f.assertExpectations(t)
}

func TestAllocationService_PayInstallment_PartialDoesNotCountAsProcessed(t *testing.T) {
	f := newAllocationFixture()
	ctx := context.Background()

	customer := testCustomer(t)
	due := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	only := testInstallment(t, customer.ID, 1, "100.00", due)

	f.installments.On("FindByID", ctx, only.ID).Return(only, nil)
	f.customers.On("FindByIDForUpdate", ctx, customer.ID).Return(customer, nil)
	f.installments.On("ListPending", ctx, customer.ID).
		Return([]*credit.Installment{only}, nil)
	f.installments.On("Save", ctx, only).Return(nil)
	f.customers.On("SaveWithLock", ctx, customer).Return(nil)
	f.receipts.On("Create", ctx, mock.AnythingOfType("*credit.PaymentReceipt")).Return(nil)

	result, err := f.service.PayInstallment(ctx, PaymentRequest{
		TriggerInstallmentID: only.ID,
		Amount:               mustDecimal(t, "40.00"),
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, result.InstallmentsProcessed)
	assert.True(t, result.RemainingCredit.IsZero())
	assert.True(t, only.IsPending())
	assert.True(t, only.Value.Equal(mustDecimal(t, "60.00")))
	f.assertExpectations(t)
}

func TestAllocationService_PayInstallment_RejectsInvalidAmounts(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{"zero", "0"},
		{"negative", "-10.00"},
		{"sub-cent precision", "10.001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAllocationFixture()

			result, err := f.service.PayInstallment(context.Background(), PaymentRequest{
				TriggerInstallmentID: uuid.New(),
				Amount:               mustDecimal(t, tt.amount),
			})

			assert.Nil(t, result)
			assert.Equal(t, shared.ErrInvalidAmount, err)
			// Rejected before any read or write.
			f.installments.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			f.customers.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything, mock.Anything)
		})
	}
}

func TestAllocationService_PayInstallment_TriggerNotFound(t *testing.T) {
	f := newAllocationFixture()
	ctx := context.Background()
	id := uuid.New()

	f.installments.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	result, err := f.service.PayInstallment(ctx, PaymentRequest{
		TriggerInstallmentID: id,
		Amount:               mustDecimal(t, "50.00"),
	})

	assert.Nil(t, result)
	assert.Equal(t, shared.ErrNotFound, err)
	f.customers.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestAllocationService_PayInstallment_StoreFailureMapsToPersistenceFailure(t *testing.T) {
	f := newAllocationFixture()
	ctx := context.Background()

	customer := testCustomer(t)
	due := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	only := testInstallment(t, customer.ID, 1, "100.00", due)

	f.installments.On("FindByID", ctx, only.ID).Return(only, nil)
	f.customers.On("FindByIDForUpdate", ctx, customer.ID).Return(customer, nil)
	f.installments.On("ListPending", ctx, customer.ID).
		Return([]*credit.Installment{only}, nil)
	f.installments.On("Save", ctx, only).Return(errors.New("connection reset"))

	result, err := f.service.PayInstallment(ctx, PaymentRequest{
		TriggerInstallmentID: only.ID,
		Amount:               mustDecimal(t, "100.00"),
	})

	assert.Nil(t, result)
	assert.Equal(t, shared.ErrPersistenceFailure, err)
	f.assertExpectations(t)
}

func TestAllocationService_PayInstallment_ExpiredContextMapsToUnknownOutcome(t *testing.T) {
	f := newAllocationFixture()
	ctx, cancel := context.WithCancel(context.Background())

	customer := testCustomer(t)
	due := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	only := testInstallment(t, customer.ID, 1, "100.00", due)

	f.installments.On("FindByID", ctx, only.ID).Return(only, nil)
	f.customers.On("FindByIDForUpdate", ctx, customer.ID).Return(customer, nil)
	f.installments.On("ListPending", ctx, customer.ID).
		Return([]*credit.Installment{only}, nil)
	f.installments.On("Save", ctx, only).Run(func(mock.Arguments) {
		cancel()
	}).Return(context.Canceled)

	result, err := f.service.PayInstallment(ctx, PaymentRequest{
		TriggerInstallmentID: only.ID,
		Amount:               mustDecimal(t, "100.00"),
	})

	assert.Nil(t, result)
	assert.Equal(t, shared.ErrUnknownOutcome, err)
	f.assertExpectations(t)
}

func TestAllocationService_PayInstallment_DuplicateIdempotencyKey(t *testing.T) {
	f := newAllocationFixture()
	ctx := context.Background()

	customer := testCustomer(t)
	due := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	only := testInstallment(t, customer.ID, 1, "100.00", due)

	f.installments.On("FindByID", ctx, only.ID).Return(only, nil)
	f.customers.On("FindByIDForUpdate", ctx, customer.ID).Return(customer, nil)
	f.installments.On("ListPending", ctx, customer.ID).
		Return([]*credit.Installment{only}, nil)
	f.installments.On("Save", ctx, only).Return(nil)
	f.customers.On("SaveWithLock", ctx, customer).Return(nil)
	f.receipts.On("Create", ctx, mock.MatchedBy(func(r *credit.PaymentReceipt) bool {
		return r.IdempotencyKey != nil && *r.IdempotencyKey == "pos-7281"
	})).Return(shared.ErrDuplicatePayment)

	result, err := f.service.PayInstallment(ctx, PaymentRequest{
		TriggerInstallmentID: only.ID,
		Amount:               mustDecimal(t, "100.00"),
		IdempotencyKey:       "pos-7281",
	})

	assert.Nil(t, result)
	assert.Equal(t, shared.ErrDuplicatePayment, err)
	f.assertExpectations(t)
}
