package calendar

import (
	"net/http"
	"time"

	"tailorpro-backend/db"
	"tailorpro-backend/models"
	"tailorpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateEvent adds a calendar entry
// @Summary Create a calendar event
// @Description Create a deadline, fitting or collection date
// @Tags calendar
// @Accept json
// @Produce json
// @Param event body models.CalendarEvent true "Event information"
// @Security BearerAuth
// @Success 201 {object} models.CalendarEvent
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Router /calendar [post]
func CreateEvent(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var event models.CalendarEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if event.StartDate.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Start date is required"})
		return
	}

	event.ID = ""
	event.UserID = userID.(string)
	event.ReminderSent = false
	if event.Type == "" {
		event.Type = models.EventOther
	}
	if event.Status == "" {
		event.Status = models.EventPending
	}

	if result := db.DB.Create(&event); result.Error != nil {
		utils.LogErrorWithUser(userID, result.Error, "Error creating the event in CreateEvent")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"event":   event,
	})
}

// GetEvents lists the tailor's events, optionally within a date range
// @Summary List calendar events
// @Description Return the connected tailor's events, optionally restricted to [from, to]
// @Tags calendar
// @Produce json
// @Param from query string false "Range start (RFC 3339)"
// @Param to query string false "Range end (RFC 3339)"
// @Security BearerAuth
// @Success 200 {array} models.CalendarEvent
// @Router /calendar [get]
func GetEvents(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	query := db.DB.Where("user_id = ?", userID)

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date"})
			return
		}
		query = query.Where("start_date >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date"})
			return
		}
		query = query.Where("start_date <= ?", t)
	}

	var events []models.CalendarEvent
	if err := query.Order("start_date ASC").Find(&events).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error fetching events in GetEvents")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// UpdateEvent updates a calendar entry
// @Summary Update a calendar event
// @Description Update an event of the connected tailor
// @Tags calendar
// @Accept json
// @Produce json
// @Param eventId path string true "ID of the event"
// @Param event body models.CalendarEvent true "Event fields"
// @Security BearerAuth
// @Success 200 {object} models.CalendarEvent
// @Failure 404 {object} map[string]string "error: Event not found"
// @Router /calendar/{eventId} [put]
func UpdateEvent(c *gin.Context) {
	event, ok := findOwnEvent(c)
	if !ok {
		return
	}

	var input models.CalendarEvent
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	event.Title = input.Title
	event.Description = input.Description
	event.ClientID = input.ClientID
	event.ClientName = input.ClientName
	event.StartDate = input.StartDate
	event.EndDate = input.EndDate
	event.AllDay = input.AllDay
	if input.Type != "" {
		event.Type = input.Type
	}
	if input.Status != "" {
		event.Status = input.Status
	}

	if err := db.DB.Save(event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully",
		"event":   event,
	})
}

// DeleteEvent removes a calendar entry
// @Summary Delete a calendar event
// @Description Delete an event of the connected tailor
// @Tags calendar
// @Produce json
// @Param eventId path string true "ID of the event"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message"
// @Failure 404 {object} map[string]string "error: Event not found"
// @Router /calendar/{eventId} [delete]
func DeleteEvent(c *gin.Context) {
	event, ok := findOwnEvent(c)
	if !ok {
		return
	}

	if err := db.DB.Delete(event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting the event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func findOwnEvent(c *gin.Context) (*models.CalendarEvent, bool) {
	eventID := c.Param("eventId")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return nil, false
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}

	var event models.CalendarEvent
	if err := db.DB.First(&event, "id = ? AND user_id = ?", eventID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return nil, false
	}

	return &event, true
}
