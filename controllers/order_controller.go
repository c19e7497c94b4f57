package controllers

import (
	"errors"
	"strconv"
	"strings"

	"figure-store/models"
	"figure-store/repositories"
	"figure-store/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder godoc
// @Summary Create order
// @Description Place an order from the checkout payload and decrement stock
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	confirmation, err := ctrl.orderService.Checkout(req)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			c.JSON(400, gin.H{"success": false, "message": ve.Message})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Error creating order", "error": err.Error()})
		return
	}

	// Stock changed, cached listings are stale.
	invalidateProductCache()

	c.JSON(201, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"data":    gin.H{"order": confirmation},
	})
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Get every order on record
// @Tags Orders
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "data": ctrl.orderService.GetOrders()})
}

// GetUserOrders godoc
// @Summary Get current user's orders
// @Description Get orders belonging to the authenticated user
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /orders/user [get]
func (ctrl *OrderController) GetUserOrders(c *gin.Context) {
	userID := c.GetInt("user_id")
	c.JSON(200, gin.H{"success": true, "data": ctrl.orderService.GetOrdersByUser(userID)})
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Description Get the full order record
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := ctrl.orderService.GetOrderByID(id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "data": order})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Set an order status; any recognized status may follow any other
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/status [put]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	order, err := ctrl.orderService.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrInvalidStatus):
			c.JSON(400, gin.H{
				"success": false,
				"message": "Invalid status. Valid statuses are: " + strings.Join(models.OrderStatuses, ", "),
			})
		case errors.Is(err, repositories.ErrOrderNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Error updating order status", "error": err.Error()})
		}
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order status updated successfully", "data": order})
}
