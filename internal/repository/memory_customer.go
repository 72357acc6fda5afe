package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/umalmyha/customer-directory/internal/model"
)

type memoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]model.Customer
}

// NewMemoryCustomerRepository builds customer repository which keeps customers in process memory
func NewMemoryCustomerRepository() CustomerRepository {
	return &memoryCustomerRepository{customers: make(map[string]model.Customer)}
}

func (r *memoryCustomerRepository) FindByID(_ context.Context, id string) (*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memoryCustomerRepository) FindAll(_ context.Context) ([]*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]*model.Customer, 0, len(r.customers))
	for id := range r.customers {
		c := r.customers[id]
		customers = append(customers, &c)
	}

	sort.Slice(customers, func(i, j int) bool {
		if !customers[i].CreatedAt.Equal(customers[j].CreatedAt) {
			return customers[i].CreatedAt.Before(customers[j].CreatedAt)
		}
		return customers[i].ID < customers[j].ID
	})
	return customers, nil
}

func (r *memoryCustomerRepository) Create(_ context.Context, c *model.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.customers[c.ID] = *c
	return nil
}

func (r *memoryCustomerRepository) Update(_ context.Context, id string, patch *model.PatchCustomer, updatedAt time.Time) (*model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.customers[id]
	if !ok {
		return nil, customerNotFound(id)
	}

	merged := existing.MergePatch(patch)
	merged.UpdatedAt = updatedAt
	r.customers[id] = merged
	return &merged, nil
}

func (r *memoryCustomerRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[id]; !ok {
		return customerNotFound(id)
	}
	delete(r.customers, id)
	return nil
}
