package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/raushkum4590/foodify/controllers/cart"
	catalogControllers "github.com/raushkum4590/foodify/controllers/catalog"
	userControllers "github.com/raushkum4590/foodify/controllers/user"
	"github.com/raushkum4590/foodify/hygraph"
	"github.com/raushkum4590/foodify/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, api *hygraph.Client) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(db))
			cartGroup.POST("/", cartControllers.AddCartItem(db, api))
			cartGroup.PUT("/:item_id", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearCart(db))
		}

		userGroup.POST("/reviews", catalogControllers.AddReview(api))
		userGroup.POST("/favorites", catalogControllers.AddFavorite(api))
		userGroup.GET("/favorites", catalogControllers.GetUserFavorites(api))
	}
}
