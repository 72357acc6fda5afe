package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/umalmyha/customer-directory/internal/model"
	"github.com/umalmyha/customer-directory/internal/repository"
)

// CustomerService represents behavior of customer service
type CustomerService interface {
	FindAll(context.Context) ([]*model.Customer, error)
	FindByID(context.Context, string) (*model.Customer, error)
	Create(context.Context, *model.NewCustomer) (*model.Customer, error)
	Update(context.Context, string, *model.PatchCustomer) (*model.Customer, error)
	DeleteByID(context.Context, string) error
}

type customerService struct {
	customerRps repository.CustomerRepository
	now         func() time.Time
}

// NewCustomerService builds new customer service
func NewCustomerService(customerRps repository.CustomerRepository) CustomerService {
	return &customerService{
		customerRps: customerRps,
		now:         now,
	}
}

// storage engines keep at most millisecond precision
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *customerService) FindAll(ctx context.Context) ([]*model.Customer, error) {
	return s.customerRps.FindAll(ctx)
}

func (s *customerService) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	return s.customerRps.FindByID(ctx, id)
}

func (s *customerService) Create(ctx context.Context, nc *model.NewCustomer) (*model.Customer, error) {
	createdAt := s.now()
	c := &model.Customer{
		ID:        uuid.NewString(),
		Name:      nc.Name,
		Phone:     nc.Phone,
		Address:   nc.Address,
		Home:      nc.Home,
		Road:      nc.Road,
		Block:     nc.Block,
		Town:      nc.Town,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	if err := s.customerRps.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) Update(ctx context.Context, id string, patch *model.PatchCustomer) (*model.Customer, error) {
	return s.customerRps.Update(ctx, id, patch, s.now())
}

func (s *customerService) DeleteByID(ctx context.Context, id string) error {
	return s.customerRps.DeleteByID(ctx, id)
}
