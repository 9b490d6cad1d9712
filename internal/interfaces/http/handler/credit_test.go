package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	creditapp "github.com/shop/backend/internal/application/credit"
	"github.com/shop/backend/internal/domain/credit"
	"github.com/shop/backend/internal/domain/partner"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInstallmentRepository implements credit.InstallmentRepository for testing
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

// MockCustomerRepository implements partner.CustomerRepository for testing
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

// MockPaymentReceiptRepository implements credit.PaymentReceiptRepository for testing
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

type creditHandlerFixture struct {
	installments *MockInstallmentRepository
	customers    *MockCustomerRepository
	receipts     *MockPaymentReceiptRepository
	engine       *gin.Engine
}

func newCreditHandlerFixture() *creditHandlerFixture {
	f := &creditHandlerFixture{
		installments: new(MockInstallmentRepository),
		customers:    new(MockCustomerRepository),
		receipts:     new(MockPaymentReceiptRepository),
	}

	scope := creditapp.NewNoOpTransactionScope(f.installments, f.customers, f.receipts)
	allocationService := creditapp.NewAllocationService(scope, nil)
	installmentService := creditapp.NewInstallmentService(f.installments, f.receipts)

	f.engine = gin.New()
	api := f.engine.Group("/api/v1")
	NewCreditHandler(allocationService, installmentService).RegisterRoutes(api)
	return f
}

func (f *creditHandlerFixture) postPayment(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/credit/payments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func newInstallment(t *testing.T, customerID uuid.UUID, number int, value string, due time.Time) *credit.Installment {
	t.Helper()
	v, err := decimal.NewFromString(value)
	require.NoError(t, err)
	inst, err := credit.NewInstallment(uuid.New(), customerID, number, v, due)
	require.NoError(t, err)
	return inst
}

func TestCreditHandler_Pay(t *testing.T) {
	f := newCreditHandlerFixture()

	customer, err := partner.NewCustomer("Ana Costa", "+55 11 98888-0000")
	require.NoError(t, err)

	due := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	first := newInstallment(t, customer.ID, 1, "100.00", due)
	second := newInstallment(t, customer.ID, 2, "100.00", due.AddDate(0, 1, 0))

	f.installments.On("FindByID", mock.Anything, first.ID).Return(first, nil)
	f.customers.On("FindByIDForUpdate", mock.Anything, customer.ID).Return(customer, nil)
	f.installments.On("ListPending", mock.Anything, customer.ID).
		Return([]*credit.Installment{first, second}, nil)
	f.installments.On("Save", mock.Anything, mock.AnythingOfType("*credit.Installment")).Return(nil).Times(2)
	f.customers.On("SaveWithLock", mock.Anything, customer).Return(nil)
	f.receipts.On("Create", mock.Anything, mock.AnythingOfType("*credit.PaymentReceipt")).Return(nil)

	w := f.postPayment(t, gin.H{
		"installment_id": first.ID,
		"amount":         "150.00",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			InstallmentsProcessed int             `json:"installments_processed"`
			RemainingCredit       decimal.Decimal `json:"remaining_credit"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Data.InstallmentsProcessed)
	assert.True(t, resp.Data.RemainingCredit.IsZero())

	f.installments.AssertExpectations(t)
	f.customers.AssertExpectations(t)
	f.receipts.AssertExpectations(t)
}

func TestCreditHandler_Pay_InvalidAmount(t *testing.T) {
	f := newCreditHandlerFixture()

	w := f.postPayment(t, gin.H{
		"installment_id": uuid.New(),
		"amount":         "-10.00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_AMOUNT", resp.Error.Code)

	f.installments.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCreditHandler_Pay_UnknownInstallment(t *testing.T) {
	f := newCreditHandlerFixture()

	missing := uuid.New()
	f.installments.On("FindByID", mock.Anything, missing).Return(nil, shared.ErrNotFound)

	w := f.postPayment(t, gin.H{
		"installment_id": missing,
		"amount":         "50.00",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreditHandler_Pay_MalformedBody(t *testing.T) {
	f := newCreditHandlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/credit/payments", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreditHandler_GetInstallment_InvalidID(t *testing.T) {
	f := newCreditHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/credit/installments/not-a-uuid", nil)
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
