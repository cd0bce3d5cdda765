package routes

import (
	"tailorpro-backend/handlers/clients"
	"tailorpro-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ClientsRoutes(r *gin.Engine) {
	clientRoutes := r.Group("/clients")
	clientRoutes.Use(middleware.JWTAuth(), middleware.RequireSubscription())
	{
		clientRoutes.POST("", clients.CreateClient)
		clientRoutes.GET("", clients.GetClients)
		clientRoutes.GET("/:clientId", clients.GetClient)
		clientRoutes.PUT("/:clientId", clients.UpdateClient)
		clientRoutes.PUT("/:clientId/measurements", clients.UpdateMeasurements)
		clientRoutes.DELETE("/:clientId", clients.DeleteClient)
	}
}
