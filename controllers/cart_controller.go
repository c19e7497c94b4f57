package controllers

import (
	"errors"
	"strconv"

	"figure-store/models"
	"figure-store/repositories"
	"figure-store/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the cart contents and running total
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	items, total := ctrl.cartService.GetCart()
	c.JSON(200, gin.H{"success": true, "data": items, "total": total})
}

// AddToCart godoc
// @Summary Add product to cart
// @Description Add a product to the cart, accumulating quantity for repeats
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Add request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if req.ProductID == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Product ID is required"})
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	items, err := ctrl.cartService.AddToCart(req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrProductNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		case errors.Is(err, services.ErrOutOfStock):
			c.JSON(400, gin.H{"success": false, "message": "Product is out of stock"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Error adding to cart", "error": err.Error()})
		}
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product added to cart", "data": items})
}

// UpdateCartItem godoc
// @Summary Update cart item quantity
// @Description Set the quantity of a cart line
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{id} [put]
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	items, err := ctrl.cartService.UpdateQuantity(productID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(400, gin.H{"success": false, "message": "Quantity must be at least 1"})
		case errors.Is(err, repositories.ErrItemNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Item not found in cart"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Error updating cart", "error": err.Error()})
		}
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": items})
}

// RemoveFromCart godoc
// @Summary Remove item from cart
// @Description Remove a cart line by its product id
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{id} [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("id"))

	items, err := ctrl.cartService.RemoveFromCart(productID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Item not found in cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Item removed from cart", "data": items})
}

// ClearCart godoc
// @Summary Clear cart
// @Description Remove every item from the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	items := ctrl.cartService.ClearCart()
	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": items})
}
