package db

import (
	"os"

	"tailorpro-backend/models"
	"tailorpro-backend/utils"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.LogError(err, "Warning: unable to load the .env file")
		utils.LogInfo("The environment variable DB_URL must be defined in the system environment")
	}

	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		utils.LogError(nil, "DB_URL variable not set")
		panic("Database URL not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("Could not connect to the database")
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.PaymentRecord{},
		&models.Client{},
		&models.CalendarEvent{},
		&models.Feedback{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("Could not migrate database")
	}

	// At most one pending payment per tenant; this also closes the race
	// between two concurrent submissions passing the in-memory check.
	err = DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_payment_records_one_pending
		ON payment_records (user_id) WHERE status = 'PENDING'`).Error
	if err != nil {
		utils.LogError(err, "Error creating the single-pending-payment index")
		panic("Could not create the single-pending-payment index")
	}

	utils.LogSuccess("Database connection successful")
}
