package repositories

import (
	"fmt"
	"sync"
	"time"

	"figure-store/models"
)

// OrderRepository owns the order list. Orders are append-only; after
// creation only Status and UpdatedAt ever change.
type OrderRepository struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: []models.Order{}}
}

// Create assigns the sequential id and derived order number under the lock,
// appends the order, and returns the stored copy.
func (r *OrderRepository) Create(order models.Order) models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = len(r.orders) + 1
	order.OrderNumber = fmt.Sprintf("ORD-%d-%04d", time.Now().UnixMilli(), order.ID)
	r.orders = append(r.orders, order)
	return order
}

func (r *OrderRepository) All() []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	return orders
}

func (r *OrderRepository) FindByID(id int) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *OrderRepository) FindByUser(userID int) []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := []models.Order{}
	for _, o := range r.orders {
		if o.UserID != nil && *o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders
}

// UpdateStatus sets a new status on an order. Only enum membership is
// enforced; any recognized status may follow any other.
func (r *OrderRepository) UpdateStatus(id int, status string) (*models.Order, error) {
	if !models.IsValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = time.Now()
			order := r.orders[i]
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}
