package routes

import (
	"github.com/gin-gonic/gin"

	catalogControllers "github.com/raushkum4590/foodify/controllers/catalog"
	"github.com/raushkum4590/foodify/hygraph"
)

// SetupCatalogRoutes registers the public browse endpoints. All data is
// read through the content API; failures degrade rather than error.
func SetupCatalogRoutes(r *gin.Engine, api *hygraph.Client) {
	r.GET("/categories", catalogControllers.GetCategories(api))

	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", catalogControllers.GetRestaurants(api))
		restaurants.GET("/search", catalogControllers.SearchRestaurants(api))
		restaurants.GET("/category/:slug", catalogControllers.GetRestaurantsByCategory(api))
		restaurants.GET("/:slug", catalogControllers.GetRestaurantBySlug(api))
		restaurants.GET("/:slug/reviews", catalogControllers.GetRestaurantReviews(api))
	}
}
