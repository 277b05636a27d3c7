package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"shopgrid/internal/domain"
)

// MemStore keeps everything in process memory and resets on restart. One
// mutex serializes every operation so the add-to-cart check-then-act upsert
// cannot lose an update under concurrent requests.
type MemStore struct {
	mu sync.Mutex

	users      map[int]domain.User
	categories map[int]domain.Category
	products   map[int]domain.Product
	cartItems  map[int]domain.CartItem
	orders     map[int]domain.Order

	// per-entity id counters; ids are never reused
	nextUserID     int
	nextCategoryID int
	nextProductID  int
	nextCartItemID int
	nextOrderID    int
}

var _ Storage = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		users:          make(map[int]domain.User),
		categories:     make(map[int]domain.Category),
		products:       make(map[int]domain.Product),
		cartItems:      make(map[int]domain.CartItem),
		orders:         make(map[int]domain.Order),
		nextUserID:     1,
		nextCategoryID: 1,
		nextProductID:  1,
		nextCartItemID: 1,
		nextOrderID:    1,
	}
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }

// ---------- Users ----------

func (s *MemStore) GetUser(id int) (domain.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok, nil
}

func (s *MemStore) GetUserByUsername(username string) (domain.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true, nil
		}
	}
	return domain.User{}, false, nil
}

func (s *MemStore) CreateUser(u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextUserID
	s.nextUserID++
	s.users[u.ID] = u
	return u, nil
}

// ---------- Categories ----------

func (s *MemStore) GetCategories() ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) GetCategoryBySlug(slug string) (domain.Category, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Slug == slug {
			return c, true, nil
		}
	}
	return domain.Category{}, false, nil
}

func (s *MemStore) CreateCategory(c domain.Category) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories[c.ID] = c
	return c, nil
}

// ---------- Products ----------

func (s *MemStore) GetProducts(f ProductFilter) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if matchesFilter(p, f) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func matchesFilter(p domain.Product, f ProductFilter) bool {
	if f.Category != "" && f.Category != "all" && p.Category != f.Category {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) {
			return false
		}
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return false
		}
		if f.MinPrice != nil && price.LessThan(*f.MinPrice) {
			return false
		}
		if f.MaxPrice != nil && price.GreaterThan(*f.MaxPrice) {
			return false
		}
	}
	if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
		return false
	}
	if f.MinRating != nil {
		rating, err := decimal.NewFromString(p.Rating)
		if err != nil || rating.LessThan(*f.MinRating) {
			return false
		}
	}
	if f.Featured != nil && p.IsFeatured != *f.Featured {
		return false
	}
	return true
}

func (s *MemStore) GetProduct(id int) (domain.Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	return p, ok, nil
}

func (s *MemStore) CreateProduct(p domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextProductID
	s.nextProductID++
	p.CreatedAt = now()
	s.products[p.ID] = p
	return p, nil
}

// ---------- Cart ----------

func (s *MemStore) GetCartItems(sessionID string) ([]domain.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.CartLine{}
	for _, item := range s.cartItems {
		if item.SessionID != sessionID {
			continue
		}
		// tolerate orphaned rows: skip silently when the product is gone
		p, ok := s.products[item.ProductID]
		if !ok {
			continue
		}
		out = append(out, domain.CartLine{CartItem: item, Product: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) AddToCart(item domain.CartItem) (domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.cartItems {
		if existing.SessionID == item.SessionID && existing.ProductID == item.ProductID {
			existing.Quantity += item.Quantity
			s.cartItems[id] = existing
			return existing, nil
		}
	}
	item.ID = s.nextCartItemID
	s.nextCartItemID++
	s.cartItems[item.ID] = item
	return item, nil
}

func (s *MemStore) UpdateCartItemQuantity(id, quantity int) (*domain.CartItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.cartItems[id]
	if !ok {
		return nil, false, nil
	}
	if quantity <= 0 {
		delete(s.cartItems, id)
		return nil, true, nil
	}
	item.Quantity = quantity
	s.cartItems[id] = item
	return &item, true, nil
}

func (s *MemStore) RemoveFromCart(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.cartItems[id]
	delete(s.cartItems, id)
	return ok, nil
}

func (s *MemStore) ClearCart(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, item := range s.cartItems {
		if item.SessionID == sessionID {
			delete(s.cartItems, id)
		}
	}
	return nil
}

// ---------- Orders ----------

func (s *MemStore) CreateOrder(o domain.Order) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = s.nextOrderID
	s.nextOrderID++
	o.CreatedAt = now()
	s.orders[o.ID] = o
	return o, nil
}

func (s *MemStore) GetOrder(id int) (domain.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	return o, ok, nil
}
