package users

import (
	"net/http"

	"tailorpro-backend/db"
	"tailorpro-backend/models"
	"tailorpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetUserProfile returns the connected tenant's account
// @Summary Get own profile
// @Description Return the connected account with its subscription snapshot
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/profile [get]
func GetUserProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfileInput is the editable subset of the account.
type UpdateProfileInput struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	BusinessName string `json:"businessName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// UpdateUserProfile updates the tenant's business information
// @Summary Update own profile
// @Description Update name, business name, phone and address
// @Tags users
// @Accept json
// @Produce json
// @Param user body UpdateProfileInput true "Profile fields"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message"
// @Router /users/profile [put]
func UpdateUserProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	err := db.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"first_name":    input.FirstName,
		"last_name":     input.LastName,
		"business_name": input.BusinessName,
		"phone":         input.Phone,
		"address":       input.Address,
	}).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating the profile in UpdateUserProfile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the profile"})
		return
	}

	utils.LogSuccessWithUser(userID, "Profile updated in UpdateUserProfile")
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// UpdateSettings updates notification and UI preferences
// @Summary Update own settings
// @Description Update dark mode and notification preferences
// @Tags users
// @Accept json
// @Produce json
// @Param settings body models.Settings true "Settings"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message"
// @Router /users/settings [put]
func UpdateSettings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.Settings
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	err := db.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"settings_dark_mode":           input.DarkMode,
		"settings_email_notifications": input.EmailNotifications,
		"settings_calendar_reminders":  input.CalendarReminders,
		"settings_payment_reminders":   input.PaymentReminders,
	}).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating the settings in UpdateSettings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
}
