package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"tailorpro-backend/db"
	"tailorpro-backend/models"
	"tailorpro-backend/subscription"
	"tailorpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

func extractJwtClaims(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")

	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
		c.Abort()
		return nil, false
	}

	authHeader = strings.Trim(authHeader, "\"' ")

	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		authHeader = "Bearer " + authHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format, expected: Bearer <token>"})
		c.Abort()
		return nil, false
	}

	tokenString := strings.Trim(parts[1], "\"' ")

	claims, err := utils.DecodeJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
		c.Abort()
		return nil, false
	}

	return claims, true
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		c.Set("user_id", claims["user_id"])
		c.Set("role", claims["role"])
		c.Next()
	}
}

func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		c.Set("user_id", claims["user_id"])
		c.Set("role", claims["role"])

		role, exists := claims["role"]
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
			c.Abort()
			return
		}

		if role != string(models.AdminRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: admin role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSubscription gates the app behind the subscription engine. Runs
// after JWTAuth.
func RequireSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		if user.Role == models.AdminRole {
			c.Next()
			return
		}

		var payments []models.PaymentRecord
		if err := db.DB.Where("user_id = ?", user.ID).Order("submitted_at ASC").Find(&payments).Error; err != nil {
			utils.LogErrorWithUser(user.ID, err, "Error loading payment history in RequireSubscription")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading subscription"})
			c.Abort()
			return
		}
		user.Subscription.Payments = payments

		now := time.Now()
		if !subscription.HasAccess(&user.Subscription, user.Role, now) {
			status := subscription.EvaluateStatus(&user.Subscription, now)

			message := "Your subscription has expired"
			switch status {
			case models.SubscriptionExpired:
				if user.Subscription.Status == models.SubscriptionTrial {
					message = "Your free trial has ended. Please subscribe to continue."
				} else {
					message = "Your subscription has expired. Please make a payment to continue."
				}
			case models.SubscriptionRestricted:
				message = "Your account is restricted. Please make a payment to continue."
			}

			c.JSON(http.StatusForbidden, gin.H{
				"error":           message,
				"redirectTo":      "/payment",
				"requiresPayment": true,
				"subscription": gin.H{
					"status":           status,
					"trialEndDate":     user.Subscription.TrialEndDate,
					"currentPeriodEnd": user.Subscription.CurrentPeriodEnd,
				},
			})
			c.Abort()
			return
		}

		// Heads-up when a payment is due within the next 3 days.
		if user.Subscription.Status == models.SubscriptionActive && user.Subscription.NextPaymentDueDate != nil {
			daysUntilDue := int(time.Until(*user.Subscription.NextPaymentDueDate).Hours() / 24)
			if daysUntilDue >= 0 && daysUntilDue <= 3 {
				c.Header("X-Payment-Warning", fmt.Sprintf("Payment due in %d days", daysUntilDue))
			}
		}

		c.Next()
	}
}
