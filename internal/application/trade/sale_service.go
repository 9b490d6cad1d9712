package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/credit"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// SaleService handles sale creation and queries. Creating a sale decrements
// stock, increments the customer's bought counter when a customer is
// attached, and for credit sales generates the installment schedule, all in
// one transaction.
type SaleService struct {
	txScope  TransactionScope
	saleRepo trade.SaleRepository
	logger   *zap.Logger
}

// NewSaleService creates a new SaleService
func NewSaleService(txScope TransactionScope, saleRepo trade.SaleRepository, logger *zap.Logger) *SaleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaleService{
		txScope:  txScope,
		saleRepo: saleRepo,
		logger:   logger,
	}
}

// Create creates a sale. Unit prices are read from the catalog at creation
// time and frozen on the sale lines.
func (s *SaleService) Create(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error) {
	method := trade.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	}

	var response SaleResponse

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		items := make([]trade.SaleItem, 0, len(req.Items))
		for _, line := range req.Items {
			product, err := repos.Products().FindByID(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if err := product.DecrementStock(line.Quantity); err != nil {
				return err
			}
			if err := repos.Products().Save(ctx, product); err != nil {
				return err
			}
			items = append(items, trade.SaleItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.SalePrice,
			})
		}

		sale, err := trade.NewSale(req.CustomerID, items, method, req.InstallmentsCount)
		if err != nil {
			return err
		}

		if err := repos.Sales().Create(ctx, sale); err != nil {
			return err
		}

		// Any sale with a customer counts toward total_bought, credit or not.
		if sale.CustomerID != nil {
			customer, err := repos.Customers().FindByIDForUpdate(ctx, *sale.CustomerID)
			if err != nil {
				return err
			}

			if sale.IsCredit() {
				schedule, err := credit.GenerateSchedule(sale.ID, customer.ID, sale.TotalValue, sale.InstallmentsCount, sale.Date)
				if err != nil {
					return err
				}
				if err := repos.Installments().CreateBatch(ctx, schedule); err != nil {
					return err
				}
			}

			if err := customer.IncrementBought(sale.TotalValue); err != nil {
				return err
			}
			if err := repos.Customers().SaveWithLock(ctx, customer); err != nil {
				return err
			}
		}

		response = ToSaleResponse(sale)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sale created",
		zap.String("sale_id", response.ID.String()),
		zap.String("payment_method", response.PaymentMethod),
		zap.String("total_value", response.TotalValue.StringFixed(2)),
		zap.Int("installments_count", response.InstallmentsCount),
	)
	return &response, nil
}

// GetByID retrieves a sale by ID
func (s *SaleService) GetByID(ctx context.Context, saleID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// List retrieves sales matching the filter
func (s *SaleService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[SaleResponse], error) {
	sales, total, err := s.saleRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}

	result := shared.NewPaginated(responses, total, filter.Page, filter.Limit())
	return &result, nil
}

// ListByPeriod retrieves sales within [from, to)
func (s *SaleService) ListByPeriod(ctx context.Context, from, to time.Time) ([]SaleResponse, error) {
	sales, err := s.saleRepo.FindByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}
	return responses, nil
}
