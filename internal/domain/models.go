package domain

type Category struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Slug string `db:"slug" json:"slug"`
	Icon string `db:"icon" json:"icon"`
}

// Product keeps price, originalPrice and rating as decimal strings; callers
// that need arithmetic parse them explicitly instead of trusting float64.
type Product struct {
	ID            int    `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Description   string `db:"description" json:"description"`
	Price         string `db:"price" json:"price"`
	OriginalPrice string `db:"original_price" json:"originalPrice,omitempty"`
	Image         string `db:"image" json:"image"`
	Category      string `db:"category" json:"category"` // category slug, not a foreign key
	Brand         string `db:"brand" json:"brand"`
	Rating        string `db:"rating" json:"rating"`
	ReviewCount   int    `db:"review_count" json:"reviewCount"`
	InStock       bool   `db:"in_stock" json:"inStock"`
	IsFeatured    bool   `db:"is_featured" json:"isFeatured"`
	IsOnSale      bool   `db:"is_on_sale" json:"isOnSale"`
	CreatedAt     string `db:"created_at" json:"createdAt"`
}

type CartItem struct {
	ID        int    `db:"id" json:"id"`
	SessionID string `db:"session_id" json:"sessionId"`
	ProductID int    `db:"product_id" json:"productId"`
	Quantity  int    `db:"quantity" json:"quantity"`
}

// CartLine is a cart row joined with its product record.
type CartLine struct {
	CartItem
	Product Product `json:"product"`
}

type Order struct {
	ID              int    `db:"id" json:"id"`
	CustomerName    string `db:"customer_name" json:"customerName"`
	Email           string `db:"email" json:"email"`
	Phone           string `db:"phone" json:"phone"`
	ShippingAddress string `db:"shipping_address" json:"shippingAddress"`
	City            string `db:"city" json:"city"`
	ZipCode         string `db:"zip_code" json:"zipCode"`
	Total           string `db:"total" json:"total"`
	Status          string `db:"status" json:"status"`
	CreatedAt       string `db:"created_at" json:"createdAt"`
}
