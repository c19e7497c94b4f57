package services

import (
	"figure-store/models"
	"figure-store/repositories"
)

type ProductService struct {
	catalogRepo *repositories.CatalogRepository
}

func NewProductService(catalogRepo *repositories.CatalogRepository) *ProductService {
	return &ProductService{catalogRepo: catalogRepo}
}

func (s *ProductService) GetProducts(filter models.ProductFilter) []models.Product {
	return s.catalogRepo.List(filter)
}

func (s *ProductService) GetProductByID(id int) (*models.Product, error) {
	return s.catalogRepo.FindByID(id)
}

func (s *ProductService) GetCategories() []string {
	return s.catalogRepo.Categories()
}

func (s *ProductService) GetAnimeTitles() []string {
	return s.catalogRepo.AnimeTitles()
}
