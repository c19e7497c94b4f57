package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"figure-store/models"
	"figure-store/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService *services.ProductService
}

func NewProductController(productService *services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

func productCacheKey(filter models.ProductFilter) string {
	return fmt.Sprintf("products_list_c%s_a%s_s%s", filter.Category, filter.Anime, filter.Search)
}

// invalidateProductCache drops every cached product listing. Called after
// checkout mutates stock.
func invalidateProductCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// GetProducts godoc
// @Summary Get all products
// @Description Get products filtered by category, anime, and search term
// @Tags Products
// @Produce json
// @Param category query string false "Category (exact match, 'all' disables)"
// @Param anime query string false "Anime title (substring match)"
// @Param search query string false "Search in name or anime"
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	filter := models.ProductFilter{
		Category: c.Query("category"),
		Anime:    c.Query("anime"),
		Search:   c.Query("search"),
	}

	cacheKey := productCacheKey(filter)
	ctx := context.Background()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products := ctrl.productService.GetProducts(filter)

	response := gin.H{
		"success": true,
		"data":    products,
		"total":   len(products),
	}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// GetProductByID godoc
// @Summary Get product by ID
// @Description Get a single product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	product, err := ctrl.productService.GetProductByID(id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "data": product})
}

// GetCategories godoc
// @Summary Get all categories
// @Description Get the unique product categories
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetCategories(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "data": ctrl.productService.GetCategories()})
}

// GetAnime godoc
// @Summary Get all anime titles
// @Description Get the unique anime titles in the catalog
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /anime [get]
func (ctrl *ProductController) GetAnime(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "data": ctrl.productService.GetAnimeTitles()})
}
