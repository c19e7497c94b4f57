package services

import (
	"figure-store/models"
	"figure-store/repositories"
)

type CartService struct {
	cartRepo    *repositories.CartRepository
	catalogRepo *repositories.CatalogRepository
}

func NewCartService(cartRepo *repositories.CartRepository, catalogRepo *repositories.CatalogRepository) *CartService {
	return &CartService{cartRepo: cartRepo, catalogRepo: catalogRepo}
}

func (s *CartService) GetCart() ([]models.CartItem, float64) {
	return s.cartRepo.Items()
}

// AddToCart resolves the product and merges it into the cart. A product is
// only blocked when its stock is exactly zero; the requested quantity is not
// checked against remaining stock.
func (s *CartService) AddToCart(productID, quantity int) ([]models.CartItem, error) {
	product, err := s.catalogRepo.FindByID(productID)
	if err != nil {
		return nil, err
	}

	if product.Stock == 0 {
		return nil, ErrOutOfStock
	}

	return s.cartRepo.Add(*product, quantity), nil
}

func (s *CartService) UpdateQuantity(productID, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	return s.cartRepo.UpdateQuantity(productID, quantity)
}

func (s *CartService) RemoveFromCart(productID int) ([]models.CartItem, error) {
	return s.cartRepo.Remove(productID)
}

func (s *CartService) ClearCart() []models.CartItem {
	return s.cartRepo.Clear()
}
