package routes

import (
	"figure-store/controllers"
	"figure-store/middleware"
	"figure-store/repositories"
	"figure-store/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	catalogRepo := repositories.NewCatalogRepository()
	cartRepo := repositories.NewCartRepository()
	orderRepo := repositories.NewOrderRepository()
	userRepo := repositories.NewUserRepository()

	productCtrl := controllers.NewProductController(services.NewProductService(catalogRepo))
	cartCtrl := controllers.NewCartController(services.NewCartService(cartRepo, catalogRepo))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(orderRepo, catalogRepo))
	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "OK", "message": "Server is running!"})
		})

		api.POST("/auth/signup", authCtrl.Signup)
		api.POST("/auth/login", authCtrl.Login)
		api.POST("/auth/logout", authCtrl.Logout)

		api.GET("/products", productCtrl.GetProducts)
		api.GET("/products/:id", productCtrl.GetProductByID)
		api.GET("/categories", productCtrl.GetCategories)
		api.GET("/anime", productCtrl.GetAnime)

		api.GET("/cart", cartCtrl.GetCart)
		api.POST("/cart", cartCtrl.AddToCart)
		api.PUT("/cart/:id", cartCtrl.UpdateCartItem)
		api.DELETE("/cart/:id", cartCtrl.RemoveFromCart)
		api.DELETE("/cart", cartCtrl.ClearCart)

		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders", orderCtrl.GetAllOrders)
		api.GET("/orders/:id", orderCtrl.GetOrderByID)
		api.PUT("/orders/:id/status", orderCtrl.UpdateOrderStatus)

		auth := api.Group("/")
		auth.Use(middleware.AuthMiddleware())
		{
			auth.PUT("/auth/profile", authCtrl.UpdateProfile)
			auth.PUT("/auth/change-password", authCtrl.ChangePassword)
			auth.GET("/orders/user", orderCtrl.GetUserOrders)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"success": false, "message": "Route not found"})
	})
}
