package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raushkum4590/foodify/hygraph"
)

// Reviews and favorites ride on the content API's placeholder policy: the
// backing tables are not provisioned upstream yet, so these always succeed
// with synthetic results.

// POST /user/reviews
func AddReview(api *hygraph.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in hygraph.ReviewInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		review, err := api.AddReview(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// GET /restaurants/:slug/reviews
func GetRestaurantReviews(api *hygraph.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := api.RestaurantReviews(c.Request.Context(), c.Param("slug"))
		if err != nil {
			c.JSON(http.StatusOK, []hygraph.Review{})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /user/favorites
func AddFavorite(api *hygraph.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in hygraph.FavoriteInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		fav, err := api.AddFavorite(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, fav)
	}
}

// GET /user/favorites?email=
func GetUserFavorites(api *hygraph.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		favs, err := api.UserFavorites(c.Request.Context(), c.Query("email"))
		if err != nil {
			c.JSON(http.StatusOK, []hygraph.Favorite{})
			return
		}
		c.JSON(http.StatusOK, favs)
	}
}
