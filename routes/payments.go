package routes

import (
	"tailorpro-backend/handlers/payments"
	"tailorpro-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentsRoutes(r *gin.Engine) {
	// Payment routes only require authentication, not an active
	// subscription: an expired tenant must still be able to pay.
	paymentRoutes := r.Group("/payments")
	paymentRoutes.Use(middleware.JWTAuth())
	{
		paymentRoutes.POST("", payments.CreatePayment)
		paymentRoutes.GET("", payments.GetUserPayments)
		paymentRoutes.GET("/status", payments.GetPaymentStatus)
		paymentRoutes.GET("/admin", middleware.AdminAuth(), payments.GetAllPayments)
		paymentRoutes.PUT("/:paymentId/approve", middleware.AdminAuth(), payments.ApprovePayment)
		paymentRoutes.PUT("/:paymentId/decline", middleware.AdminAuth(), payments.DeclinePayment)
	}
}
