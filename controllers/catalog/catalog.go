package catalogControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raushkum4590/foodify/hygraph"
	"github.com/raushkum4590/foodify/models"
)

// Development fallback shown when the content API is unreachable, so the
// storefront renders something instead of an empty page.
var fallbackCategories = []models.Category{
	{ID: "1", Name: "Burger", Slug: "burger"},
	{ID: "2", Name: "Pizza", Slug: "pizza"},
	{ID: "3", Name: "Dosa", Slug: "dosa"},
	{ID: "4", Name: "Ramen", Slug: "ramen"},
	{ID: "5", Name: "Sushi", Slug: "sushi"},
	{ID: "6", Name: "Chinese", Slug: "chinese"},
	{ID: "7", Name: "Mexican", Slug: "mexican"},
	{ID: "8", Name: "Indian", Slug: "indian"},
}

// GET /categories
func GetCategories(api *hygraph.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := api.Categories(c.Request.Context())
		if err != nil {
			log.Println("fetch categories failed, serving fallback:", err)
			c.JSON(http.StatusOK, fallbackCategories)
			return
		}
		c.JSON(http.StatusOK, cats)
	}
}

// GET /restaurants
func GetRestaurants(api *hygraph.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := api.Restaurants(c.Request.Context())
		if err != nil {
			// Read path degrades to an empty list rather than failing the page.
			log.Println("fetch restaurants failed:", err)
			c.JSON(http.StatusOK, []models.Restaurant{})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /restaurants/search?q=term
func SearchRestaurants(api *hygraph.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := c.Query("q")
		if term == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing search term"})
			return
		}
		list, err := api.SearchRestaurants(c.Request.Context(), term)
		if err != nil {
			log.Println("search restaurants failed:", err)
			c.JSON(http.StatusOK, []models.Restaurant{})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /restaurants/:slug
func GetRestaurantBySlug(api *hygraph.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		r, err := api.RestaurantBySlug(c.Request.Context(), slug)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch restaurant"})
			return
		}
		if r == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

// GET /restaurants/category/:slug
func GetRestaurantsByCategory(api *hygraph.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		c.JSON(http.StatusOK, ResolveByCategory(c.Request.Context(), api, slug))
	}
}
