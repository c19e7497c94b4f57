package models

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists the recognized statuses. Any status may follow any
// other; only membership is enforced.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderItem snapshots a product line at checkout time. Later catalog
// mutations must not show through, so it holds values, not references.
type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Anime    string  `json:"anime"`
	Category string  `json:"category"`
	Subtotal float64 `json:"subtotal"`
}

type ShippingInfo struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   Address `json:"address"`
}

// PaymentInfo carries the card number as received; the client masks it
// before it ever reaches the server.
type PaymentInfo struct {
	CardholderName string  `json:"cardholderName"`
	CardNumber     string  `json:"cardNumber"`
	BillingAddress Address `json:"billingAddress"`
}

type OrderSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type Order struct {
	ID           int          `json:"id"`
	OrderNumber  string       `json:"orderNumber"`
	UserID       *int         `json:"userId"`
	Items        []OrderItem  `json:"items"`
	ShippingInfo ShippingInfo `json:"shippingInfo"`
	PaymentInfo  PaymentInfo  `json:"paymentInfo"`
	OrderSummary OrderSummary `json:"orderSummary"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// OrderConfirmation is the trimmed projection returned on checkout. The
// full order stays retrievable by id.
type OrderConfirmation struct {
	ID          int       `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	Total       float64   `json:"total"`
	CreatedAt   time.Time `json:"createdAt"`
}
