// Package store defines the storage contract for the catalog, carts and
// orders, plus the default in-memory implementation. A sql-backed twin lives
// in the sqlstore subpackage; both honor the same semantics so either can sit
// behind the services.
package store

import (
	"github.com/shopspring/decimal"

	"shopgrid/internal/domain"
)

// ProductFilter predicates AND together. Nil pointer fields mean the
// predicate is not applied at all, which is different from a zero value.
type ProductFilter struct {
	Category  string // exact slug match; "" or "all" disables
	Search    string // case-insensitive substring over name/description/brand
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	Brand     string // exact match, case-insensitive
	MinRating *decimal.Decimal
	Featured  *bool
}

// Storage is the full catalog/cart/order contract. Point lookups report a
// missing record through the ok return, never through the error; errors are
// reserved for backend failures (the memory store never produces one).
type Storage interface {
	GetUser(id int) (domain.User, bool, error)
	GetUserByUsername(username string) (domain.User, bool, error)
	CreateUser(u domain.User) (domain.User, error)

	GetCategories() ([]domain.Category, error)
	GetCategoryBySlug(slug string) (domain.Category, bool, error)
	CreateCategory(c domain.Category) (domain.Category, error)

	GetProducts(f ProductFilter) ([]domain.Product, error)
	GetProduct(id int) (domain.Product, bool, error)
	CreateProduct(p domain.Product) (domain.Product, error)

	// GetCartItems joins every cart row for the session with its product.
	// Rows whose product no longer exists are dropped from the result.
	GetCartItems(sessionID string) ([]domain.CartLine, error)
	// AddToCart increments the existing (sessionID, productID) row by
	// item.Quantity, or inserts a new row when there is none.
	AddToCart(item domain.CartItem) (domain.CartItem, error)
	// UpdateCartItemQuantity overwrites the quantity and returns the updated
	// row. A quantity <= 0 deletes the row instead and returns (nil, true).
	// An unknown id returns (nil, false) with no side effects.
	UpdateCartItemQuantity(id, quantity int) (*domain.CartItem, bool, error)
	// RemoveFromCart reports whether a row was actually deleted.
	RemoveFromCart(id int) (bool, error)
	ClearCart(sessionID string) error

	CreateOrder(o domain.Order) (domain.Order, error)
	GetOrder(id int) (domain.Order, bool, error)
}
