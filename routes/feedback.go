package routes

import (
	"tailorpro-backend/handlers/feedback"
	"tailorpro-backend/middleware"

	"github.com/gin-gonic/gin"
)

func FeedbackRoutes(r *gin.Engine) {
	feedbackRoutes := r.Group("/feedback")
	feedbackRoutes.Use(middleware.JWTAuth())
	{
		feedbackRoutes.POST("", feedback.CreateFeedback)
		feedbackRoutes.GET("/admin", middleware.AdminAuth(), feedback.GetAllFeedback)
		feedbackRoutes.POST("/:feedbackId/respond", middleware.AdminAuth(), feedback.RespondFeedback)
	}
}
