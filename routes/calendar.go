package routes

import (
	"tailorpro-backend/handlers/calendar"
	"tailorpro-backend/middleware"

	"github.com/gin-gonic/gin"
)

func CalendarRoutes(r *gin.Engine) {
	calendarRoutes := r.Group("/calendar")
	calendarRoutes.Use(middleware.JWTAuth(), middleware.RequireSubscription())
	{
		calendarRoutes.POST("", calendar.CreateEvent)
		calendarRoutes.GET("", calendar.GetEvents)
		calendarRoutes.PUT("/:eventId", calendar.UpdateEvent)
		calendarRoutes.DELETE("/:eventId", calendar.DeleteEvent)
	}
}
