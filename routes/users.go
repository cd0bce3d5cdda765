package routes

import (
	"tailorpro-backend/handlers/users"
	"tailorpro-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	userRoutes := r.Group("/users")
	userRoutes.Use(middleware.JWTAuth())
	{
		userRoutes.GET("/profile", users.GetUserProfile)
		userRoutes.PUT("/profile", users.UpdateUserProfile)
		userRoutes.PUT("/settings", users.UpdateSettings)
	}
}
