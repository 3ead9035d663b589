package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raushkum4590/foodify/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/google", auth.GoogleUserLoginHandler(db))
		authGroup.POST("/guest", auth.CreateGuestUser(db))
	}
}
