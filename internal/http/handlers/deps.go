package handlers

import (
	"shopgrid/internal/services"
	"shopgrid/internal/store"
)

type Deps struct {
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	OrderHandler    *OrderHandler
	AccountHandler  *AccountHandler
}

func NewDeps(st store.Storage) *Deps {
	catalogSvc := services.NewCatalogService(st)
	cartSvc := services.NewCartService(st)
	orderSvc := services.NewOrderService(st)
	accountSvc := services.NewAccountService(st)

	return &Deps{
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		OrderHandler:    &OrderHandler{Order: orderSvc, Cart: cartSvc},
		AccountHandler:  &AccountHandler{Accounts: accountSvc},
	}
}
