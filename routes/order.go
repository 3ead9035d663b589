package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/raushkum4590/foodify/controllers/order"
	"github.com/raushkum4590/foodify/middleware"
)

func SetupOrderRoutes(r *gin.Engine, assembler *orderControllers.Assembler) {
	orders := r.Group("/orders")
	{
		// Direct order submission
		orders.POST("/place", middleware.ValidateToken, orderControllers.PlaceOrderHandler(assembler))

		// Live feed of confirmed orders
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Order history for a user
		orders.GET("/user/:email", middleware.ValidateToken, orderControllers.GetUserOrdersHandler(assembler))

		// Admin export of a user's order history
		orders.GET("/user/:email/export", middleware.ValidateAPIKey, orderControllers.ExportUserOrdersToExcel(assembler))
	}
}
