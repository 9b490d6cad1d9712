package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/partner"
	"github.com/shop/backend/internal/domain/shared"
)

// CustomerService handles customer-related business operations.
// It only touches contact data; the cumulative bought/paid counters are
// written by the sale and allocation services respectively.
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	customer.BirthDate = req.BirthDate

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves customers matching the filter (search covers name and phone)
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[CustomerResponse], error) {
	customers, total, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}

	result := shared.NewPaginated(responses, total, filter.Page, filter.Limit())
	return &result, nil
}

// Update updates a customer's contact data
func (s *CustomerService) Update(ctx context.Context, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := customer.UpdateContact(req.Name, req.Phone, req.BirthDate); err != nil {
		return nil, err
	}

	if err := s.customerRepo.SaveWithLock(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, customerID uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, customerID)
}
