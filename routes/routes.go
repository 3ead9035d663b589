package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	checkoutControllers "github.com/raushkum4590/foodify/controllers/checkout"
	orderControllers "github.com/raushkum4590/foodify/controllers/order"
	"github.com/raushkum4590/foodify/hygraph"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, api *hygraph.Client) {
	assembler := orderControllers.NewAssembler(api)
	orchestrator := checkoutControllers.NewOrchestrator(assembler, checkoutControllers.NewStripeGateway())
	orchestrator.OnOrder = orderControllers.BroadcastOrder
	checkoutControllers.SetOrderNotifier(orderControllers.BroadcastOrder)

	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public catalog routes
	SetupCatalogRoutes(r, api)

	// User routes (JWT-protected): profile + cart
	SetupUserRoutes(r, db, api)

	// Orders: read side, direct placement, websocket feed, admin export
	SetupOrderRoutes(r, assembler)

	// Checkout + payment webhook
	SetupCheckoutRoutes(r, db, orchestrator)
}
