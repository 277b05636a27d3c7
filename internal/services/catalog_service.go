package services

import (
	"shopgrid/internal/domain"
	"shopgrid/internal/store"
)

type CatalogService struct {
	Store store.Storage
}

func NewCatalogService(s store.Storage) *CatalogService {
	return &CatalogService{Store: s}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Store.GetCategories()
}

func (s *CatalogService) CategoryBySlug(slug string) (domain.Category, bool, error) {
	return s.Store.GetCategoryBySlug(slug)
}

func (s *CatalogService) ListProducts(f store.ProductFilter) ([]domain.Product, error) {
	return s.Store.GetProducts(f)
}

func (s *CatalogService) GetProduct(id int) (domain.Product, bool, error) {
	return s.Store.GetProduct(id)
}
