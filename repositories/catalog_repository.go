package repositories

import (
	"strings"
	"sync"

	"figure-store/models"
)

// CatalogRepository owns the fixed product catalog. Products are seeded at
// construction and never added or deleted; the only mutation is the stock
// decrement performed at checkout.
type CatalogRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{products: seedProducts()}
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Nezuko Kamado Figure",
			Anime:       "Demon Slayer",
			Category:    "figures",
			Price:       89.99,
			Image:       "https://images.unsplash.com/photo-1607604276583-eef5d076aa5f?w=400",
			Stock:       15,
			Rating:      4.8,
			Reviews:     124,
			Description: "High-quality PVC figure of Nezuko Kamado from Demon Slayer anime series.",
		},
		{
			ID:          2,
			Name:        "Luffy Gear 4 Figure",
			Anime:       "One Piece",
			Category:    "figures",
			Price:       129.99,
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400",
			Stock:       8,
			Rating:      4.9,
			Reviews:     89,
			Description: "Premium collectible figure of Monkey D. Luffy in Gear 4 form.",
		},
		{
			ID:          3,
			Name:        "Goku Ultra Instinct",
			Anime:       "Dragon Ball Super",
			Category:    "figures",
			Price:       159.99,
			Image:       "https://images.unsplash.com/photo-1555400121-3ad13c532a5a?w=400",
			Stock:       5,
			Rating:      4.7,
			Reviews:     156,
			Description: "Detailed figure of Goku in Ultra Instinct form with special effects.",
		},
		{
			ID:          4,
			Name:        "Naruto Rasengan Figure",
			Anime:       "Naruto",
			Category:    "figures",
			Price:       94.99,
			Image:       "https://images.unsplash.com/photo-1578632767115-351597cf2477?w=400",
			Stock:       12,
			Rating:      4.6,
			Reviews:     203,
			Description: "Dynamic figure of Naruto Uzumaki performing the Rasengan jutsu.",
		},
		{
			ID:          5,
			Name:        "Attack on Titan Scout Regiment",
			Anime:       "Attack on Titan",
			Category:    "figures",
			Price:       74.99,
			Image:       "https://images.unsplash.com/photo-1566493199068-af10e675695b?w=400",
			Stock:       0,
			Rating:      4.5,
			Reviews:     78,
			Description: "Scout Regiment member figure with ODM gear accessories.",
		},
		{
			ID:          6,
			Name:        "Jujutsu Kaisen Gojo Figure",
			Anime:       "Jujutsu Kaisen",
			Category:    "figures",
			Price:       109.99,
			Image:       "https://images.unsplash.com/photo-1607604276583-eef5d076aa5f?w=400",
			Stock:       7,
			Rating:      4.9,
			Reviews:     95,
			Description: "Satoru Gojo figure with blindfold and special pose.",
		},
	}
}

// List returns products matching the filter in catalog insertion order.
// Category matches exactly (case-insensitive, "all" disables it), anime is a
// case-insensitive substring match, and search matches name or anime.
// Multiple filters combine with AND.
func (r *CatalogRepository) List(filter models.ProductFilter) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.Product{}
	for _, p := range r.products {
		if filter.Category != "" && !strings.EqualFold(filter.Category, "all") {
			if !strings.EqualFold(p.Category, filter.Category) {
				continue
			}
		}
		if filter.Anime != "" && !strings.EqualFold(filter.Anime, "all") {
			if !strings.Contains(strings.ToLower(p.Anime), strings.ToLower(filter.Anime)) {
				continue
			}
		}
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.Anime), search) {
				continue
			}
		}
		result = append(result, p)
	}
	return result
}

func (r *CatalogRepository) FindByID(id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

// Categories returns the unique category names in first-seen order.
func (r *CatalogRepository) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]bool{}
	categories := []string{}
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// AnimeTitles returns the unique anime names in first-seen order.
func (r *CatalogRepository) AnimeTitles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]bool{}
	titles := []string{}
	for _, p := range r.products {
		if !seen[p.Anime] {
			seen[p.Anime] = true
			titles = append(titles, p.Anime)
		}
	}
	return titles
}

// DecrementStock reduces a product's stock by qty, clamping at zero. It
// returns the remaining stock, or ErrProductNotFound for an unknown id;
// checkout treats that as a non-fatal warning rather than a failure.
func (r *CatalogRepository) DecrementStock(id, qty int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			stock := r.products[i].Stock - qty
			if stock < 0 {
				stock = 0
			}
			r.products[i].Stock = stock
			return stock, nil
		}
	}
	return 0, ErrProductNotFound
}
