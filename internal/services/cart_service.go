package services

import (
	"github.com/shopspring/decimal"

	"shopgrid/internal/domain"
	"shopgrid/internal/store"
)

// Flat rates; there is no tax-jurisdiction or carrier logic here.
var (
	shippingFlat = decimal.RequireFromString("9.99")
	taxRate      = decimal.RequireFromString("0.08")
)

type CartService struct {
	Store store.Storage
}

func NewCartService(s store.Storage) *CartService {
	return &CartService{Store: s}
}

// CartView is the joined cart plus derived totals, all decimal strings.
type CartView struct {
	Items     []domain.CartLine `json:"items"`
	ItemCount int               `json:"itemCount"`
	Subtotal  string            `json:"subtotal"`
	Shipping  string            `json:"shipping"`
	Tax       string            `json:"tax"`
	Total     string            `json:"total"`
}

func (s *CartService) View(sessionID string) (CartView, error) {
	items, err := s.Store.GetCartItems(sessionID)
	if err != nil {
		return CartView{}, err
	}

	subtotal := decimal.Zero
	count := 0
	for _, it := range items {
		price, err := decimal.NewFromString(it.Product.Price)
		if err != nil {
			continue // unpriceable rows contribute nothing to totals
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		count += it.Quantity
	}

	shipping := decimal.Zero
	tax := decimal.Zero
	if len(items) > 0 {
		shipping = shippingFlat
		tax = subtotal.Mul(taxRate)
	}
	total := subtotal.Add(shipping).Add(tax)

	return CartView{
		Items:     items,
		ItemCount: count,
		Subtotal:  subtotal.StringFixed(2),
		Shipping:  shipping.StringFixed(2),
		Tax:       tax.StringFixed(2),
		Total:     total.StringFixed(2),
	}, nil
}

// Add upserts: an existing (session, product) row has its quantity bumped,
// otherwise a new row is created. Product existence is not checked; an
// orphaned row surfaces only as a silently dropped line in View.
func (s *CartService) Add(sessionID string, productID, qty int) (domain.CartItem, error) {
	if qty < 1 {
		qty = 1
	}
	return s.Store.AddToCart(domain.CartItem{SessionID: sessionID, ProductID: productID, Quantity: qty})
}

func (s *CartService) UpdateQuantity(id, qty int) (*domain.CartItem, bool, error) {
	return s.Store.UpdateCartItemQuantity(id, qty)
}

func (s *CartService) Remove(id int) (bool, error) {
	return s.Store.RemoveFromCart(id)
}

func (s *CartService) Clear(sessionID string) error {
	return s.Store.ClearCart(sessionID)
}
