package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	checkoutControllers "github.com/raushkum4590/foodify/controllers/checkout"
	"github.com/raushkum4590/foodify/middleware"
)

func SetupCheckoutRoutes(r *gin.Engine, db *gorm.DB, orchestrator *checkoutControllers.Orchestrator) {
	checkout := r.Group("/checkout")
	{
		checkout.POST("/place", middleware.ValidateToken, checkoutControllers.PlaceCheckoutHandler(orchestrator, db))
	}

	payment := r.Group("/payment")
	{
		// Webhook endpoint: middleware handles sandbox/prod verification
		payment.POST("/webhook",
			middleware.StripeWebhookAuth(),
			checkoutControllers.StripeWebhookHandler(),
		)
	}
}
