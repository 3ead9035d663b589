package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raushkum4590/foodify/hygraph"
	"github.com/raushkum4590/foodify/models"
)

// -------- Handlers --------

// POST /orders/place
// Direct order submission (the checkout orchestrator is the normal path;
// this exists for clients that assemble the order themselves).
func PlaceOrderHandler(a *Assembler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.OrderInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if in.Email == "" || in.Items == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and items are required"})
			return
		}

		order, err := a.CreateOrder(c.Request.Context(), in)
		if err != nil {
			if hygraph.IsConfig(err) {
				// Non-retryable: the orders table is not provisioned upstream.
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Orders feature not yet configured"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to place order. Please try again."})
			return
		}

		BroadcastOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders/user/:email
func GetUserOrdersHandler(a *Assembler) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		orders, err := a.ListOrders(c.Request.Context(), email)
		if err != nil {
			if hygraph.IsConfig(err) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Orders feature not yet configured"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
