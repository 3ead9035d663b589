package auth

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	firebase "firebase.google.com/go"
	firebaseauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	cartControllers "github.com/raushkum4590/foodify/controllers/cart"
	"github.com/raushkum4590/foodify/models"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *firebaseauth.Client
	projectID    string
)

func init() {
	_ = godotenv.Load()

	ctx := context.Background()

	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		log.Fatal("FIREBASE_CREDENTIALS_JSON must be set")
	}

	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		log.Fatal("FIREBASE_PROJECT_ID must be set")
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	config := &firebase.Config{ProjectID: projectID}

	var err error
	firebaseApp, err = firebase.NewApp(ctx, config, opt)
	if err != nil {
		log.Fatalf("Error initializing Firebase app: %v", err)
	}

	firebaseAuth, err = firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Error getting Firebase Auth client: %v", err)
	}
}

// POST /auth/google
// Verifies the identity provider's ID token, upserts the user row, merges a
// pending guest cart into the user's cart, and issues a session token.
func GoogleUserLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDToken string `json:"idToken" binding:"required"`
			GuestID string `json:"guest_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		ctx := c.Request.Context()

		token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Firebase ID token"})
			return
		}
		if token.Audience != projectID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token audience"})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		firebaseUserID := token.UID

		var user models.User
		err = db.Where("id = ?", firebaseUserID).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				ID:       firebaseUserID,
				Email:    email,
				Name:     name,
				Picture:  picture,
				Provider: "google",
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		} else if err == nil {
			db.Model(&user).Updates(models.User{Name: name, Picture: picture})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		// Merge the guest cart snapshot into the user's, if one exists.
		mergeStatus := "no-guest-cart"
		if req.GuestID != "" {
			p := &cartControllers.GormPersistence{DB: db}
			userCart := cartControllers.NewStore(user.ID, p)
			guestCart := cartControllers.NewStore(req.GuestID, p)
			if cartControllers.MergeInto(userCart, guestCart) {
				mergeStatus = "merged-success"
			} else {
				mergeStatus = "guest-cart-empty"
			}
		}

		sessionToken, err := issueSessionToken(user.ID, "user")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"merge_status": mergeStatus,
			"user":         user,
			"token":        sessionToken,
		})
	}
}

func issueSessionToken(id, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": id,
		"role":    role,
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
