package models

type SignupRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Phone     string  `json:"phone"`
	Address   Address `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest uses pointers so "field omitted" and "field set to
// empty" stay distinguishable. A nil field keeps the stored value.
type UpdateProfileRequest struct {
	FirstName *string  `json:"firstName"`
	LastName  *string  `json:"lastName"`
	Email     *string  `json:"email"`
	Phone     *string  `json:"phone"`
	Address   *Address `json:"address"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type AddToCartRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutItemRequest struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Anime    string  `json:"anime"`
	Category string  `json:"category"`
}

type OrderSummaryRequest struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type CheckoutRequest struct {
	Items        []CheckoutItemRequest `json:"items"`
	ShippingInfo *ShippingInfo         `json:"shippingInfo"`
	PaymentInfo  *PaymentInfo          `json:"paymentInfo"`
	OrderSummary *OrderSummaryRequest  `json:"orderSummary"`
	UserID       *int                  `json:"userId"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
