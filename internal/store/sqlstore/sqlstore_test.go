package sqlstore_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"shopgrid/internal/domain"
	"shopgrid/internal/store"
	"shopgrid/internal/store/sqlstore"
)

func memdb(t *testing.T) *sqlstore.SQLStore {
	t.Helper()
	s, err := sqlstore.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	if err := store.Seed(s); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSQLStoreUpsert(t *testing.T) {
	s := memdb(t)

	first, err := s.AddToCart(domain.CartItem{SessionID: "abc", ProductID: 1, Quantity: 1})
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.AddToCart(domain.CartItem{SessionID: "abc", ProductID: 1, Quantity: 2})
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != first.ID || second.Quantity != 3 {
		t.Fatalf("want merged row qty 3, got %+v", second)
	}

	lines, err := s.GetCartItems("abc")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Quantity != 3 || lines[0].Product.Price != "129.99" {
		t.Fatalf("bad joined cart: %+v", lines)
	}
}

func TestSQLStoreQuantityLifecycle(t *testing.T) {
	s := memdb(t)
	item, _ := s.AddToCart(domain.CartItem{SessionID: "abc", ProductID: 2, Quantity: 2})

	updated, found, err := s.UpdateCartItemQuantity(item.ID, 7)
	if err != nil || !found || updated == nil || updated.Quantity != 7 {
		t.Fatalf("update: item=%v found=%v err=%v", updated, found, err)
	}

	gone, found, err := s.UpdateCartItemQuantity(item.ID, -1)
	if err != nil || !found || gone != nil {
		t.Fatalf("non-positive update must delete: item=%v found=%v err=%v", gone, found, err)
	}

	if _, found, _ := s.UpdateCartItemQuantity(9999, 3); found {
		t.Fatal("unknown id must report not found")
	}

	removed, err := s.RemoveFromCart(item.ID)
	if err != nil || removed {
		t.Fatalf("row already gone: removed=%v err=%v", removed, err)
	}
}

func TestSQLStoreFilters(t *testing.T) {
	s := memdb(t)
	min := decimal.RequireFromString("50")
	max := decimal.RequireFromString("150")
	featured := true

	got, err := s.GetProducts(store.ProductFilter{Category: "electronics", MinPrice: &min, MaxPrice: &max})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3 electronics in [50,150], got %d", len(got))
	}

	got, err = s.GetProducts(store.ProductFilter{Search: "yoga", Featured: &featured})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("yoga mat is not featured, got %d", len(got))
	}

	got, err = s.GetProducts(store.ProductFilter{Brand: "techpro"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Brand != "TechPro" {
		t.Fatalf("brand match failed: %+v", got)
	}
}

func TestSQLStoreClearAndOrders(t *testing.T) {
	s := memdb(t)
	s.AddToCart(domain.CartItem{SessionID: "abc", ProductID: 1, Quantity: 1})
	s.AddToCart(domain.CartItem{SessionID: "abc", ProductID: 3, Quantity: 2})

	o, err := s.CreateOrder(domain.Order{CustomerName: "Pat", Email: "pat@example.com", Total: "123.45", Status: "pending"})
	if err != nil {
		t.Fatal(err)
	}
	if o.ID != 1 || o.CreatedAt == "" {
		t.Fatalf("bad order: %+v", o)
	}
	// order creation leaves the cart alone
	lines, _ := s.GetCartItems("abc")
	if len(lines) != 2 {
		t.Fatalf("cart touched by order create: %d rows", len(lines))
	}

	if err := s.ClearCart("abc"); err != nil {
		t.Fatal(err)
	}
	lines, _ = s.GetCartItems("abc")
	if len(lines) != 0 {
		t.Fatalf("cart not cleared: %d rows", len(lines))
	}

	got, ok, err := s.GetOrder(o.ID)
	if err != nil || !ok || got.Total != "123.45" {
		t.Fatalf("order lookup: %+v ok=%v err=%v", got, ok, err)
	}
	if _, ok, _ := s.GetOrder(999); ok {
		t.Fatal("unknown order must report not found")
	}
}

func TestSQLStoreUsers(t *testing.T) {
	s := memdb(t)
	u, err := s.CreateUser(domain.User{Username: "pat", Password: "hash"})
	if err != nil {
		t.Fatal(err)
	}
	got, ok, err := s.GetUserByUsername("pat")
	if err != nil || !ok || got.ID != u.ID {
		t.Fatalf("lookup: %+v ok=%v err=%v", got, ok, err)
	}
	got, ok, err = s.GetUser(u.ID)
	if err != nil || !ok || got.Username != "pat" {
		t.Fatalf("lookup by id: %+v ok=%v err=%v", got, ok, err)
	}
}
