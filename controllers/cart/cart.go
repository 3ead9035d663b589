package cartControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raushkum4590/foodify/hygraph"
	"github.com/raushkum4590/foodify/models"
)

type AddItemInput struct {
	models.CartLineItem
	Email string `json:"email"`
}

type UpdateQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func subjectStore(c *gin.Context, db *gorm.DB) (*Store, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	userID, _ := userIDVal.(string)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return NewStore(userID, &GormPersistence{DB: db}), true
}

// GET /user/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := subjectStore(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items": store.Items(),
			"total": store.Total(),
		})
	}
}

// POST /user/cart
func AddCartItem(db *gorm.DB, api *hygraph.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := subjectStore(c, db)
		if !ok {
			return
		}

		var in AddItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		qty := in.Quantity
		if qty < 1 {
			qty = 1
		}
		store.Add(in.CartLineItem, qty)

		// Best-effort add-to-cart history record upstream; the snapshot store
		// is authoritative for the cart itself.
		if in.Email != "" {
			if _, err := api.CreateUserCart(c.Request.Context(), hygraph.CartHistoryInput{
				Email:       in.Email,
				Price:       in.Price,
				Description: in.Description,
				Image:       in.ProductImage,
				Name:        in.Name,
			}); err != nil {
				log.Println("cart history record failed:", err)
			}
		}

		c.JSON(http.StatusCreated, gin.H{
			"items": store.Items(),
			"total": store.Total(),
		})
	}
}

// PUT /user/cart/:item_id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := subjectStore(c, db)
		if !ok {
			return
		}
		var in UpdateQuantityInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		store.SetQuantity(c.Param("item_id"), *in.Quantity)
		c.JSON(http.StatusOK, gin.H{
			"items": store.Items(),
			"total": store.Total(),
		})
	}
}

// DELETE /user/cart/:item_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := subjectStore(c, db)
		if !ok {
			return
		}
		store.Remove(c.Param("item_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := subjectStore(c, db)
		if !ok {
			return
		}
		store.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
