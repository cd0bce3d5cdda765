package main

import (
	"log"
	"os"

	"tailorpro-backend/db"
	_ "tailorpro-backend/docs"
	"tailorpro-backend/jobs"
	"tailorpro-backend/routes"
	"tailorpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title TailorPro API
// @version 1.0
// @description Backend API for the TailorPro tailoring management platform
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Receipt uploads will not work properly.")
	}

	jobs.StartScheduler()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
