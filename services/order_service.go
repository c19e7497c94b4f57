package services

import (
	"log"
	"time"

	"figure-store/models"
	"figure-store/repositories"
)

type OrderService struct {
	orderRepo    *repositories.OrderRepository
	catalogRepo  *repositories.CatalogRepository
	emailService *models.EmailService
}

func NewOrderService(orderRepo *repositories.OrderRepository, catalogRepo *repositories.CatalogRepository) *OrderService {
	svc := &OrderService{orderRepo: orderRepo, catalogRepo: catalogRepo}

	emailService, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service not configured, order confirmations disabled")
	} else {
		svc.emailService = emailService
	}

	return svc
}

// Checkout validates the request, records the order, and decrements stock
// for each line. Validation happens before any mutation; the stock decrement
// afterwards is best-effort and an unknown product id is logged, not
// surfaced to the caller.
func (s *OrderService) Checkout(req models.CheckoutRequest) (*models.OrderConfirmation, error) {
	if len(req.Items) == 0 {
		return nil, validationError("Order items are required")
	}
	if req.ShippingInfo == nil || req.ShippingInfo.FirstName == "" ||
		req.ShippingInfo.LastName == "" || req.ShippingInfo.Email == "" {
		return nil, validationError("Shipping information is required")
	}
	if req.PaymentInfo == nil || req.PaymentInfo.CardNumber == "" ||
		req.PaymentInfo.CardholderName == "" {
		return nil, validationError("Payment information is required")
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	computed := 0.0
	for _, item := range req.Items {
		subtotal := item.Price * float64(item.Quantity)
		computed += subtotal
		items = append(items, models.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Image:    item.Image,
			Price:    item.Price,
			Quantity: item.Quantity,
			Anime:    item.Anime,
			Category: item.Category,
			Subtotal: subtotal,
		})
	}

	now := time.Now()
	order := models.Order{
		UserID:       req.UserID,
		Items:        items,
		ShippingInfo: *req.ShippingInfo,
		PaymentInfo:  *req.PaymentInfo,
		OrderSummary: buildOrderSummary(req.OrderSummary, computed),
		Status:       models.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created := s.orderRepo.Create(order)

	for _, item := range created.Items {
		if _, err := s.catalogRepo.DecrementStock(item.ID, item.Quantity); err != nil {
			log.Printf("Skipping stock decrement for unknown product %d on order %s", item.ID, created.OrderNumber)
		}
	}

	if s.emailService != nil {
		go func(email, orderNumber string, total float64) {
			if err := s.emailService.SendOrderConfirmationEmail(email, orderNumber, total); err != nil {
				log.Println("Failed to send order confirmation:", err)
			}
		}(created.ShippingInfo.Email, created.OrderNumber, created.OrderSummary.Total)
	}

	return &models.OrderConfirmation{
		ID:          created.ID,
		OrderNumber: created.OrderNumber,
		Status:      created.Status,
		Total:       created.OrderSummary.Total,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// buildOrderSummary fills summary fields the way the storefront client
// expects: subtotal and total fall back to the computed line sum when absent
// or zero, shipping and tax default to zero.
func buildOrderSummary(req *models.OrderSummaryRequest, computed float64) models.OrderSummary {
	summary := models.OrderSummary{
		Subtotal: computed,
		Total:    computed,
	}
	if req == nil {
		return summary
	}

	if req.Subtotal != 0 {
		summary.Subtotal = req.Subtotal
	}
	summary.Shipping = req.Shipping
	summary.Tax = req.Tax
	if req.Total != 0 {
		summary.Total = req.Total
	}
	return summary
}

func (s *OrderService) GetOrders() []models.Order {
	return s.orderRepo.All()
}

func (s *OrderService) GetOrderByID(id int) (*models.Order, error) {
	return s.orderRepo.FindByID(id)
}

func (s *OrderService) GetOrdersByUser(userID int) []models.Order {
	return s.orderRepo.FindByUser(userID)
}

func (s *OrderService) UpdateStatus(id int, status string) (*models.Order, error) {
	return s.orderRepo.UpdateStatus(id, status)
}
