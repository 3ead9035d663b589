package checkoutControllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/raushkum4590/foodify/controllers/cart"
	"github.com/raushkum4590/foodify/models"
)

type PlaceCheckoutInput struct {
	Email          string              `json:"email" binding:"required,email"`
	RestaurantName string              `json:"restaurantName" binding:"required"`
	DeliveryInfo   models.DeliveryInfo `json:"deliveryInfo"`
	PaymentMethod  string              `json:"paymentMethod" binding:"required"`
	SuccessURL     string              `json:"successUrl"`
	CancelURL      string              `json:"cancelUrl"`
}

// POST /checkout/place
// The server-side cart is authoritative: items come from the subject's
// snapshot, not the request body.
func PlaceCheckoutHandler(o *Orchestrator, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		var in PlaceCheckoutInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if in.PaymentMethod != models.PaymentMethodStripe && in.PaymentMethod != models.PaymentMethodCash {
			c.JSON(http.StatusBadRequest, gin.H{"error": "paymentMethod must be stripe or cash"})
			return
		}

		store := cartControllers.NewStore(userID, &cartControllers.GormPersistence{DB: db})

		result := o.Run(c.Request.Context(), Request{
			Email:          in.Email,
			RestaurantName: in.RestaurantName,
			Items:          store.Items(),
			Delivery:       in.DeliveryInfo,
			PaymentMethod:  in.PaymentMethod,
			SuccessURL:     in.SuccessURL,
			CancelURL:      in.CancelURL,
		}, store)

		switch result.State {
		case StateIdle:
			c.JSON(http.StatusBadRequest, gin.H{"error": result.Message, "field": result.Field})
		case StateRedirected:
			c.JSON(http.StatusOK, gin.H{
				"payment_url": result.RedirectURL,
				"session_id":  result.SessionID,
				"reference":   result.Reference,
			})
		case StateConfirmed:
			c.JSON(http.StatusOK, gin.H{
				"message":   result.Message,
				"reference": result.Reference,
				"order":     result.Order,
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": result.Message})
		}
	}
}

// Webhook event shapes, just the fields the handler reads.
type stripeEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string `json:"id"`
			Metadata struct {
				OrderID        string `json:"orderId"`
				Email          string `json:"email"`
				RestaurantName string `json:"restaurantName"`
				Items          string `json:"items"`
			} `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// POST /payment/webhook
// Signature verification happens in middleware. Order-status update on
// webhook receipt is an extension point; today the handler logs and
// broadcasts the completed session on the order feed.
func StripeWebhookHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var event stripeEvent
		if err := json.NewDecoder(c.Request.Body).Decode(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse event"})
			return
		}

		switch event.Type {
		case "checkout.session.completed":
			obj := event.Data.Object
			log.Println("payment succeeded:", obj.ID)
			// TODO: update the order record upstream once the content API
			// exposes a status field on orders.
			notifyOrderCompleted(models.Order{
				ID:             obj.Metadata.OrderID,
				Email:          obj.Metadata.Email,
				RestaurantName: obj.Metadata.RestaurantName,
				Items:          obj.Metadata.Items,
				PaymentMethod:  models.PaymentMethodStripe,
				CreatedAt:      time.Now(),
			})
		case "payment_intent.payment_failed":
			log.Println("payment failed:", event.Data.Object.ID)
		default:
			log.Println("unhandled event type:", event.Type)
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

// notifyOrderCompleted is replaced at wire-up time with the websocket
// broadcast; a variable keeps the handler testable.
var notifyOrderCompleted = func(models.Order) {}

// SetOrderNotifier installs the completed-order callback.
func SetOrderNotifier(fn func(models.Order)) {
	if fn != nil {
		notifyOrderCompleted = fn
	}
}
