package feedback

import (
	"net/http"
	"strings"
	"time"

	"tailorpro-backend/db"
	"tailorpro-backend/models"
	"tailorpro-backend/utils"
	mailsmodels "tailorpro-backend/utils/mails-models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateFeedback stores a message from the connected tenant
// @Summary Submit feedback
// @Description Send a feedback message to the platform team
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedback body models.FeedbackCreate true "Feedback content"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message, id"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Router /feedback [post]
func CreateFeedback(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.FeedbackCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "User not found in CreateFeedback")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	feedback := models.Feedback{
		UserID:    user.ID,
		UserName:  strings.TrimSpace(user.FirstName + " " + user.LastName),
		UserEmail: user.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    models.FeedbackPending,
	}

	if result := db.DB.Create(&feedback); result.Error != nil {
		utils.LogErrorWithUser(userID, result.Error, "Error creating the feedback in CreateFeedback")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error submitting the feedback",
		})
		return
	}

	utils.LogSuccessWithUser(userID, "Feedback submitted in CreateFeedback")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Feedback submitted successfully",
		"id":      feedback.ID,
	})
}

// GetAllFeedback lists every feedback message for admin review
// @Summary List all feedback
// @Description Return every feedback message across tenants, newest first (admin only)
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Feedback
// @Router /feedback/admin [get]
func GetAllFeedback(c *gin.Context) {
	var feedback []models.Feedback
	if err := db.DB.Order("created_at DESC").Find(&feedback).Error; err != nil {
		utils.LogError(err, "Error fetching feedback in GetAllFeedback")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": feedback})
}

// RespondFeedback records an admin response and mails it to the sender
// @Summary Respond to feedback
// @Description Record a response to a feedback message and send it to the tenant by mail (admin only)
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedbackId path string true "ID of the feedback"
// @Param response body models.FeedbackRespond true "Response content"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message, feedback"
// @Failure 404 {object} map[string]string "error: Feedback not found"
// @Router /feedback/{feedbackId}/respond [post]
func RespondFeedback(c *gin.Context) {
	feedbackID := c.Param("feedbackId")
	if _, err := uuid.Parse(feedbackID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback ID"})
		return
	}

	adminID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.FeedbackRespond
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	var feedback models.Feedback
	if err := db.DB.First(&feedback, "id = ?", feedbackID).Error; err != nil {
		utils.LogErrorWithUser(adminID, err, "Feedback not found in RespondFeedback")
		c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		return
	}

	now := time.Now()
	feedback.Status = models.FeedbackResponded
	feedback.Response = input.Message
	feedback.RespondedAt = &now
	if id, ok := adminID.(string); ok {
		feedback.RespondedBy = id
	}

	if err := db.DB.Save(&feedback).Error; err != nil {
		utils.LogErrorWithUser(adminID, err, "Error saving the response in RespondFeedback")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving the response"})
		return
	}

	mailsmodels.FeedbackResponse(feedback.UserEmail, feedback.Subject, feedback.Message, feedback.Response)

	utils.LogSuccessWithUser(adminID, "Feedback responded in RespondFeedback")
	c.JSON(http.StatusOK, gin.H{
		"message":  "Response sent successfully",
		"feedback": feedback,
	})
}
