package router

import (
	"store-service/internal/handlers"
	"store-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Router(store *service.Store, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	h := handlers.NewHandler(store, log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	api.GET("/countries", h.ListCountries)
	api.POST("/countries", h.CreateCountry)
	api.DELETE("/countries/:id", h.DeleteCountry)

	api.GET("/customers", h.ListCustomers)
	api.POST("/customers", h.CreateCustomer)
	api.DELETE("/customers/:id", h.DeleteCustomer)

	api.GET("/categories", h.ListCategories)
	api.POST("/categories", h.CreateCategory)
	api.DELETE("/categories/:id", h.DeleteCategory)

	api.GET("/products", h.ListProducts)
	api.POST("/products", h.CreateProduct)
	api.DELETE("/products/:id", h.DeleteProduct)

	api.GET("/warehouses", h.ListWarehouses)
	api.POST("/warehouses", h.CreateWarehouse)
	api.DELETE("/warehouses/:id", h.DeleteWarehouse)

	api.GET("/inventories", h.ListInventories)
	api.POST("/inventories", h.CreateInventory)
	api.DELETE("/inventories/:productID/:warehouseID", h.DeleteInventory)

	api.GET("/orders", h.ListOrders)
	api.POST("/orders", h.CreateOrder)
	api.DELETE("/orders/:id", h.DeleteOrder)

	api.POST("/storefront/login", h.Login)
	api.POST("/storefront/logout", h.Logout)
	api.GET("/storefront/catalog", h.Catalog)
	api.PUT("/storefront/catalog/:productID/quantity", h.SelectQuantity)
	api.POST("/storefront/purchase", h.Purchase)

	api.GET("/admin/orders", h.AdminOrders)
	api.PATCH("/admin/orders/:id/status", h.UpdateOrderStatus)
	api.GET("/admin/charts", h.Charts)

	return r
}
