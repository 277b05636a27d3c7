// Package sqlstore is the sqlite-backed implementation of store.Storage,
// for running with a catalog that survives restarts. Semantics mirror the
// in-memory store exactly.
package sqlstore

import (
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"shopgrid/internal/domain"
	"shopgrid/internal/store"
)

type SQLStore struct {
	db *sqlx.DB
}

var _ store.Storage = (*SQLStore)(nil)

// Open connects, bootstraps the schema and returns the store. Use ":memory:"
// for tests.
func Open(dsn string) (*SQLStore, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Close() error { return s.db.Close() }

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS users(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL,
  password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categories(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  slug TEXT NOT NULL,
  icon TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_categories_slug ON categories(slug);

CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price TEXT NOT NULL,
  original_price TEXT,
  image TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  brand TEXT NOT NULL DEFAULT '',
  rating TEXT NOT NULL DEFAULT '0',
  review_count INTEGER NOT NULL DEFAULT 0,
  in_stock INTEGER NOT NULL DEFAULT 1,
  is_featured INTEGER NOT NULL DEFAULT 0,
  is_on_sale INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);

CREATE TABLE IF NOT EXISTS cart_items(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  session_id TEXT NOT NULL,
  product_id INTEGER NOT NULL,
  quantity INTEGER NOT NULL CHECK (quantity >= 1),
  UNIQUE(session_id, product_id)
);
CREATE INDEX IF NOT EXISTS idx_cart_items_session ON cart_items(session_id);

CREATE TABLE IF NOT EXISTS orders(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  customer_name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  shipping_address TEXT NOT NULL DEFAULT '',
  city TEXT NOT NULL DEFAULT '',
  zip_code TEXT NOT NULL DEFAULT '',
  total TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }

// ---------- Users ----------

func (s *SQLStore) GetUser(id int) (domain.User, bool, error) {
	var u domain.User
	err := s.db.Get(&u, `SELECT id, username, password FROM users WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return domain.User{}, false, nil
	}
	return u, err == nil, err
}

func (s *SQLStore) GetUserByUsername(username string) (domain.User, bool, error) {
	var u domain.User
	err := s.db.Get(&u, `SELECT id, username, password FROM users WHERE username = ? ORDER BY id LIMIT 1`, username)
	if err == sql.ErrNoRows {
		return domain.User{}, false, nil
	}
	return u, err == nil, err
}

func (s *SQLStore) CreateUser(u domain.User) (domain.User, error) {
	res, err := s.db.Exec(`INSERT INTO users(username, password) VALUES(?, ?)`, u.Username, u.Password)
	if err != nil {
		return domain.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	u.ID = int(id)
	return u, nil
}

// ---------- Categories ----------

func (s *SQLStore) GetCategories() ([]domain.Category, error) {
	out := []domain.Category{}
	err := s.db.Select(&out, `SELECT id, name, slug, icon FROM categories ORDER BY id`)
	return out, err
}

func (s *SQLStore) GetCategoryBySlug(slug string) (domain.Category, bool, error) {
	var c domain.Category
	err := s.db.Get(&c, `SELECT id, name, slug, icon FROM categories WHERE slug = ? ORDER BY id LIMIT 1`, slug)
	if err == sql.ErrNoRows {
		return domain.Category{}, false, nil
	}
	return c, err == nil, err
}

func (s *SQLStore) CreateCategory(c domain.Category) (domain.Category, error) {
	res, err := s.db.Exec(`INSERT INTO categories(name, slug, icon) VALUES(?, ?, ?)`, c.Name, c.Slug, c.Icon)
	if err != nil {
		return domain.Category{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Category{}, err
	}
	c.ID = int(id)
	return c, nil
}

// ---------- Products ----------

const productCols = `
  id, name, description, price, COALESCE(original_price,'') AS original_price,
  image, category, brand, rating, review_count, in_stock, is_featured,
  is_on_sale, created_at`

func (s *SQLStore) GetProducts(f store.ProductFilter) ([]domain.Product, error) {
	where := `1=1`
	args := []any{}
	if f.Category != "" && f.Category != "all" {
		where += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.Search != "" {
		q := "%" + strings.ToLower(f.Search) + "%"
		where += ` AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ?)`
		args = append(args, q, q, q)
	}
	if f.MinPrice != nil {
		where += ` AND CAST(price AS REAL) >= ?`
		args = append(args, f.MinPrice.InexactFloat64())
	}
	if f.MaxPrice != nil {
		where += ` AND CAST(price AS REAL) <= ?`
		args = append(args, f.MaxPrice.InexactFloat64())
	}
	if f.Brand != "" {
		where += ` AND LOWER(brand) = LOWER(?)`
		args = append(args, f.Brand)
	}
	if f.MinRating != nil {
		where += ` AND CAST(rating AS REAL) >= ?`
		args = append(args, f.MinRating.InexactFloat64())
	}
	if f.Featured != nil {
		where += ` AND is_featured = ?`
		args = append(args, *f.Featured)
	}

	out := []domain.Product{}
	err := s.db.Select(&out, `SELECT `+productCols+` FROM products WHERE `+where+` ORDER BY id`, args...)
	return out, err
}

func (s *SQLStore) GetProduct(id int) (domain.Product, bool, error) {
	var p domain.Product
	err := s.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return domain.Product{}, false, nil
	}
	return p, err == nil, err
}

func (s *SQLStore) CreateProduct(p domain.Product) (domain.Product, error) {
	p.CreatedAt = now()
	res, err := s.db.Exec(`
	  INSERT INTO products(name, description, price, original_price, image, category,
	    brand, rating, review_count, in_stock, is_featured, is_on_sale, created_at)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		p.Name, p.Description, p.Price, nullable(p.OriginalPrice), p.Image, p.Category,
		p.Brand, p.Rating, p.ReviewCount, p.InStock, p.IsFeatured, p.IsOnSale, p.CreatedAt)
	if err != nil {
		return domain.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = int(id)
	return p, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// ---------- Cart ----------

type cartLineRow struct {
	domain.CartItem
	domain.Product `db:"p"`
}

func (s *SQLStore) GetCartItems(sessionID string) ([]domain.CartLine, error) {
	// the inner join drops rows whose product disappeared
	rows := []cartLineRow{}
	err := s.db.Select(&rows, `
	  SELECT ci.id "id", ci.session_id "session_id", ci.product_id "product_id", ci.quantity "quantity",
	         p.id "p.id", p.name "p.name", p.description "p.description", p.price "p.price",
	         COALESCE(p.original_price,'') "p.original_price", p.image "p.image",
	         p.category "p.category", p.brand "p.brand", p.rating "p.rating",
	         p.review_count "p.review_count", p.in_stock "p.in_stock",
	         p.is_featured "p.is_featured", p.is_on_sale "p.is_on_sale", p.created_at "p.created_at"
	  FROM cart_items ci JOIN products p ON p.id = ci.product_id
	  WHERE ci.session_id = ?
	  ORDER BY ci.id`, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CartLine, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.CartLine{CartItem: r.CartItem, Product: r.Product})
	}
	return out, nil
}

func (s *SQLStore) AddToCart(item domain.CartItem) (domain.CartItem, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return domain.CartItem{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var existing domain.CartItem
	err = tx.Get(&existing, `
	  SELECT id, session_id, product_id, quantity FROM cart_items
	  WHERE session_id = ? AND product_id = ?`, item.SessionID, item.ProductID)
	switch err {
	case nil:
		existing.Quantity += item.Quantity
		if _, err := tx.Exec(`UPDATE cart_items SET quantity = ? WHERE id = ?`, existing.Quantity, existing.ID); err != nil {
			return domain.CartItem{}, err
		}
		return existing, tx.Commit()
	case sql.ErrNoRows:
		res, err := tx.Exec(`INSERT INTO cart_items(session_id, product_id, quantity) VALUES(?,?,?)`,
			item.SessionID, item.ProductID, item.Quantity)
		if err != nil {
			return domain.CartItem{}, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return domain.CartItem{}, err
		}
		item.ID = int(id)
		return item, tx.Commit()
	default:
		return domain.CartItem{}, err
	}
}

func (s *SQLStore) UpdateCartItemQuantity(id, quantity int) (*domain.CartItem, bool, error) {
	var item domain.CartItem
	err := s.db.Get(&item, `SELECT id, session_id, product_id, quantity FROM cart_items WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if quantity <= 0 {
		if _, err := s.db.Exec(`DELETE FROM cart_items WHERE id = ?`, id); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}
	if _, err := s.db.Exec(`UPDATE cart_items SET quantity = ? WHERE id = ?`, quantity, id); err != nil {
		return nil, false, err
	}
	item.Quantity = quantity
	return &item, true, nil
}

func (s *SQLStore) RemoveFromCart(id int) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM cart_items WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (s *SQLStore) ClearCart(sessionID string) error {
	_, err := s.db.Exec(`DELETE FROM cart_items WHERE session_id = ?`, sessionID)
	return err
}

// ---------- Orders ----------

func (s *SQLStore) CreateOrder(o domain.Order) (domain.Order, error) {
	o.CreatedAt = now()
	res, err := s.db.Exec(`
	  INSERT INTO orders(customer_name, email, phone, shipping_address, city, zip_code, total, status, created_at)
	  VALUES(?,?,?,?,?,?,?,?,?)`,
		o.CustomerName, o.Email, o.Phone, o.ShippingAddress, o.City, o.ZipCode, o.Total, o.Status, o.CreatedAt)
	if err != nil {
		return domain.Order{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Order{}, err
	}
	o.ID = int(id)
	return o, nil
}

func (s *SQLStore) GetOrder(id int) (domain.Order, bool, error) {
	var o domain.Order
	err := s.db.Get(&o, `
	  SELECT id, customer_name, email, phone, shipping_address, city, zip_code, total, status, created_at
	  FROM orders WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return domain.Order{}, false, nil
	}
	return o, err == nil, err
}
