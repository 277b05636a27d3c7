package services

import (
	"shopgrid/internal/domain"
	"shopgrid/internal/store"
)

type OrderService struct {
	Store store.Storage
}

func NewOrderService(s store.Storage) *OrderService {
	return &OrderService{Store: s}
}

// Place stores the order verbatim: no total recomputation, no stock
// decrement, no linkage to the cart rows that produced it. Clearing the cart
// is the caller's separate, non-atomic follow-up.
func (s *OrderService) Place(o domain.Order) (domain.Order, error) {
	if o.Status == "" {
		o.Status = "pending"
	}
	return s.Store.CreateOrder(o)
}

func (s *OrderService) Get(id int) (domain.Order, bool, error) {
	return s.Store.GetOrder(id)
}
