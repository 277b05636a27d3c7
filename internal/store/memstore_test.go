package store_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"shopgrid/internal/domain"
	"shopgrid/internal/store"
)

func seeded(t *testing.T) *store.MemStore {
	t.Helper()
	s := store.NewMemStore()
	if err := store.Seed(s); err != nil {
		t.Fatal(err)
	}
	return s
}

func dec(t *testing.T, v string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(v)
	if err != nil {
		t.Fatal(err)
	}
	return &d
}

func TestAddToCartMergesRows(t *testing.T) {
	s := seeded(t)

	first, err := s.AddToCart(domain.CartItem{SessionID: "abc", ProductID: 1, Quantity: 1})
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.AddToCart(domain.CartItem{SessionID: "abc", ProductID: 1, Quantity: 2})
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same row, got ids %d and %d", first.ID, second.ID)
	}
	if second.Quantity != 3 {
		t.Fatalf("want quantity 3, got %d", second.Quantity)
	}

	lines, err := s.GetCartItems("abc")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 {
		t.Fatalf("want one cart row, got %d", len(lines))
	}
	if lines[0].Quantity != 3 || lines[0].Product.ID != 1 {
		t.Fatalf("bad joined row: %+v", lines[0])
	}
	if lines[0].Product.Price != "129.99" {
		t.Fatalf("want joined price 129.99, got %s", lines[0].Product.Price)
	}
}

func TestAddToCartSeparateSessions(t *testing.T) {
	s := seeded(t)
	if _, err := s.AddToCart(domain.CartItem{SessionID: "a", ProductID: 1, Quantity: 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddToCart(domain.CartItem{SessionID: "b", ProductID: 1, Quantity: 1}); err != nil {
		t.Fatal(err)
	}
	la, _ := s.GetCartItems("a")
	lb, _ := s.GetCartItems("b")
	if len(la) != 1 || len(lb) != 1 {
		t.Fatalf("sessions must not share rows: a=%d b=%d", len(la), len(lb))
	}
}

func TestUpdateQuantity(t *testing.T) {
	s := seeded(t)
	item, _ := s.AddToCart(domain.CartItem{SessionID: "abc", ProductID: 2, Quantity: 2})

	updated, found, err := s.UpdateCartItemQuantity(item.ID, 5)
	if err != nil || !found || updated == nil {
		t.Fatalf("update failed: item=%v found=%v err=%v", updated, found, err)
	}
	if updated.Quantity != 5 {
		t.Fatalf("want quantity 5, got %d", updated.Quantity)
	}

	// zero or negative quantity deletes the row
	gone, found, err := s.UpdateCartItemQuantity(item.ID, 0)
	if err != nil || !found || gone != nil {
		t.Fatalf("want deletion signal, got item=%v found=%v err=%v", gone, found, err)
	}
	lines, _ := s.GetCartItems("abc")
	if len(lines) != 0 {
		t.Fatalf("row should be gone, cart has %d rows", len(lines))
	}

	// unknown id is not found, no side effects
	_, found, err = s.UpdateCartItemQuantity(9999, 1)
	if err != nil || found {
		t.Fatalf("unknown id: found=%v err=%v", found, err)
	}
}

func TestRemoveFromCartIdempotent(t *testing.T) {
	s := seeded(t)
	item, _ := s.AddToCart(domain.CartItem{SessionID: "abc", ProductID: 1, Quantity: 1})

	removed, err := s.RemoveFromCart(item.ID)
	if err != nil || !removed {
		t.Fatalf("first remove: removed=%v err=%v", removed, err)
	}
	removed, err = s.RemoveFromCart(item.ID)
	if err != nil || removed {
		t.Fatalf("second remove must report nothing deleted: removed=%v err=%v", removed, err)
	}
}

func TestClearCart(t *testing.T) {
	s := seeded(t)
	s.AddToCart(domain.CartItem{SessionID: "abc", ProductID: 1, Quantity: 1})
	s.AddToCart(domain.CartItem{SessionID: "abc", ProductID: 2, Quantity: 1})
	s.AddToCart(domain.CartItem{SessionID: "other", ProductID: 1, Quantity: 1})

	if err := s.ClearCart("abc"); err != nil {
		t.Fatal(err)
	}
	lines, _ := s.GetCartItems("abc")
	if len(lines) != 0 {
		t.Fatalf("cart not cleared: %d rows", len(lines))
	}
	other, _ := s.GetCartItems("other")
	if len(other) != 1 {
		t.Fatalf("other session touched: %d rows", len(other))
	}

	// clearing an empty cart still succeeds
	if err := s.ClearCart("abc"); err != nil {
		t.Fatal(err)
	}
}

func TestCartJoinDropsOrphanedRows(t *testing.T) {
	s := seeded(t)
	// a row referencing a product the store has never assigned
	if _, err := s.AddToCart(domain.CartItem{SessionID: "abc", ProductID: 9999, Quantity: 1}); err != nil {
		t.Fatal(err)
	}
	lines, err := s.GetCartItems("abc")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Fatalf("orphaned row must be dropped silently, got %d rows", len(lines))
	}
}

func TestGetProductUnknown(t *testing.T) {
	s := seeded(t)
	_, ok, err := s.GetProduct(9999)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("unknown id must report not found")
	}
}

func TestProductFilters(t *testing.T) {
	s := seeded(t)
	featured := true

	cases := []struct {
		name   string
		filter store.ProductFilter
		want   int
	}{
		{"all", store.ProductFilter{}, 8},
		{"category all sentinel", store.ProductFilter{Category: "all"}, 8},
		{"category", store.ProductFilter{Category: "electronics"}, 4},
		{"unknown category", store.ProductFilter{Category: "nope"}, 0},
		{"price range inclusive", store.ProductFilter{MinPrice: dec(t, "59.99"), MaxPrice: dec(t, "89.99")}, 3},
		{"price and category", store.ProductFilter{Category: "electronics", MinPrice: dec(t, "50"), MaxPrice: dec(t, "150")}, 3},
		{"search name", store.ProductFilter{Search: "earbuds"}, 1},
		{"search brand", store.ProductFilter{Search: "techpro"}, 1},
		{"search description", store.ProductFilter{Search: "noise cancellation"}, 1},
		{"brand exact case-insensitive", store.ProductFilter{Brand: "GAMETECH"}, 1},
		{"min rating", store.ProductFilter{MinRating: dec(t, "4.8")}, 3},
		{"featured", store.ProductFilter{Featured: &featured}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.GetProducts(tc.filter)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tc.want {
				t.Fatalf("want %d products, got %d", tc.want, len(got))
			}
		})
	}
}

func TestPriceRangeBoundariesInclusive(t *testing.T) {
	s := seeded(t)
	got, err := s.GetProducts(store.ProductFilter{MinPrice: dec(t, "129.99"), MaxPrice: dec(t, "129.99")})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Price != "129.99" {
		t.Fatalf("inclusive bounds must match the exact price, got %+v", got)
	}
}

func TestCreateOrderAssignsIDAndTimestamp(t *testing.T) {
	s := seeded(t)
	s.AddToCart(domain.CartItem{SessionID: "abc", ProductID: 1, Quantity: 1})

	o1, err := s.CreateOrder(domain.Order{CustomerName: "Pat", Email: "pat@example.com", Total: "123.45", Status: "pending"})
	if err != nil {
		t.Fatal(err)
	}
	if o1.ID != 1 || o1.CreatedAt == "" {
		t.Fatalf("bad order: %+v", o1)
	}
	o2, _ := s.CreateOrder(domain.Order{CustomerName: "Sam", Email: "sam@example.com", Total: "9.99", Status: "pending"})
	if o2.ID != 2 {
		t.Fatalf("ids must increase monotonically, got %d", o2.ID)
	}

	// creating an order alone does not touch the cart
	lines, _ := s.GetCartItems("abc")
	if len(lines) != 1 {
		t.Fatalf("order creation must leave the cart untouched, got %d rows", len(lines))
	}

	got, ok, err := s.GetOrder(o1.ID)
	if err != nil || !ok || got.Total != "123.45" {
		t.Fatalf("lookup failed: %+v ok=%v err=%v", got, ok, err)
	}
}

func TestUserLookup(t *testing.T) {
	s := store.NewMemStore()
	u, err := s.CreateUser(domain.User{Username: "pat", Password: "hash"})
	if err != nil {
		t.Fatal(err)
	}
	if u.ID != 1 {
		t.Fatalf("want id 1, got %d", u.ID)
	}
	got, ok, _ := s.GetUserByUsername("pat")
	if !ok || got.ID != u.ID {
		t.Fatalf("lookup by username failed: %+v ok=%v", got, ok)
	}
	if _, ok, _ := s.GetUserByUsername("nobody"); ok {
		t.Fatal("unknown username must report not found")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := seeded(t)
	if err := store.Seed(s); err != nil {
		t.Fatal(err)
	}
	products, _ := s.GetProducts(store.ProductFilter{})
	if len(products) != 8 {
		t.Fatalf("second seed must no-op, got %d products", len(products))
	}
	cats, _ := s.GetCategories()
	if len(cats) != 4 {
		t.Fatalf("want 4 categories, got %d", len(cats))
	}
	if _, ok, _ := s.GetCategoryBySlug("electronics"); !ok {
		t.Fatal("slug lookup failed after seed")
	}
}
