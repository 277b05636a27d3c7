package store

import (
	"log"

	"shopgrid/internal/domain"
)

// Seed loads the demo catalog into an empty store. Safe to call on every
// start: it no-ops once any category exists.
func Seed(s Storage) error {
	cats, err := s.GetCategories()
	if err != nil {
		return err
	}
	if len(cats) > 0 {
		return nil
	}
	log.Println("[seed] inserting demo categories/products")

	for _, c := range seedCategories {
		if _, err := s.CreateCategory(c); err != nil {
			return err
		}
	}
	for _, p := range seedProducts {
		if _, err := s.CreateProduct(p); err != nil {
			return err
		}
	}
	return nil
}

var seedCategories = []domain.Category{
	{Name: "Electronics", Slug: "electronics", Icon: "fas fa-laptop"},
	{Name: "Fashion", Slug: "fashion", Icon: "fas fa-tshirt"},
	{Name: "Home & Garden", Slug: "home", Icon: "fas fa-home"},
	{Name: "Sports", Slug: "sports", Icon: "fas fa-dumbbell"},
}

var seedProducts = []domain.Product{
	{
		Name:          "Premium Wireless Earbuds",
		Description:   "High-quality wireless earbuds with noise cancellation and premium sound quality.",
		Price:         "129.99",
		OriginalPrice: "159.99",
		Image:         "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=400&h=300",
		Category:      "electronics",
		Brand:         "TechPro",
		Rating:        "4.8",
		ReviewCount:   128,
		InStock:       true,
		IsFeatured:    true,
		IsOnSale:      true,
	},
	{
		Name:          "Smart Fitness Watch",
		Description:   "Advanced fitness tracking with heart rate monitor, GPS, and smartphone integration.",
		Price:         "249.99",
		OriginalPrice: "299.99",
		Image:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=300",
		Category:      "electronics",
		Brand:         "FitTech",
		Rating:        "4.6",
		ReviewCount:   89,
		InStock:       true,
		IsFeatured:    true,
		IsOnSale:      true,
	},
	{
		Name:        "Designer Laptop Bag",
		Description: "Stylish and durable laptop bag with multiple compartments and premium materials.",
		Price:       "89.99",
		Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=300",
		Category:    "fashion",
		Brand:       "StyleCraft",
		Rating:      "4.9",
		ReviewCount: 156,
		InStock:     true,
		IsFeatured:  true,
	},
	{
		Name:        "Mechanical Keyboard Pro",
		Description: "Professional mechanical keyboard with RGB lighting and customizable switches.",
		Price:       "149.99",
		Image:       "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=400&h=300",
		Category:    "electronics",
		Brand:       "KeyMaster",
		Rating:      "4.7",
		ReviewCount: 94,
		InStock:     true,
	},
	{
		Name:        "Designer Sunglasses",
		Description: "Premium sunglasses with UV protection and contemporary style.",
		Price:       "199.99",
		Image:       "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=400&h=300",
		Category:    "fashion",
		Brand:       "SunStyle",
		Rating:      "4.8",
		ReviewCount: 67,
		InStock:     true,
	},
	{
		Name:        "Premium Coffee Maker",
		Description: "Professional-grade coffee maker with multiple brewing options and temperature control.",
		Price:       "299.99",
		Image:       "https://images.unsplash.com/photo-1517256064527-09c73fc73e38?w=400&h=300",
		Category:    "home",
		Brand:       "BrewMaster",
		Rating:      "4.5",
		ReviewCount: 43,
		InStock:     true,
	},
	{
		Name:          "Wireless Gaming Mouse",
		Description:   "High-precision wireless gaming mouse with customizable DPI and RGB lighting.",
		Price:         "79.99",
		OriginalPrice: "99.99",
		Image:         "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400&h=300",
		Category:      "electronics",
		Brand:         "GameTech",
		Rating:        "4.6",
		ReviewCount:   112,
		InStock:       true,
		IsOnSale:      true,
	},
	{
		Name:        "Yoga Mat Pro",
		Description: "Premium non-slip yoga mat with excellent cushioning and eco-friendly materials.",
		Price:       "59.99",
		Image:       "https://images.unsplash.com/photo-1506629905627-b9f0e77d1e64?w=400&h=300",
		Category:    "sports",
		Brand:       "YogaLife",
		Rating:      "4.7",
		ReviewCount: 78,
		InStock:     true,
	},
}
