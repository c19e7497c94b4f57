package repositories

import (
	"sync"

	"figure-store/models"
)

// CartRepository owns the single process-wide cart. There is no per-user
// scoping; every caller shares the same sequence. All methods return copies
// so the internal slice never escapes the lock.
type CartRepository struct {
	mu    sync.Mutex
	items []models.CartItem
}

func NewCartRepository() *CartRepository {
	return &CartRepository{items: []models.CartItem{}}
}

func (r *CartRepository) Items() ([]models.CartItem, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(), r.total()
}

// Add merges the product into the cart. A line already holding the product
// accumulates quantity; otherwise a new line is appended at the end.
func (r *CartRepository) Add(product models.Product, quantity int) []models.CartItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == product.ID {
			r.items[i].Quantity += quantity
			return r.snapshot()
		}
	}

	r.items = append(r.items, models.CartItem{Product: product, Quantity: quantity})
	return r.snapshot()
}

func (r *CartRepository) UpdateQuantity(productID, quantity int) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == productID {
			r.items[i].Quantity = quantity
			return r.snapshot(), nil
		}
	}
	return nil, ErrItemNotFound
}

func (r *CartRepository) Remove(productID int) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return r.snapshot(), nil
		}
	}
	return nil, ErrItemNotFound
}

func (r *CartRepository) Clear() []models.CartItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = []models.CartItem{}
	return r.snapshot()
}

func (r *CartRepository) snapshot() []models.CartItem {
	items := make([]models.CartItem, len(r.items))
	copy(items, r.items)
	return items
}

func (r *CartRepository) total() float64 {
	total := 0.0
	for _, item := range r.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
