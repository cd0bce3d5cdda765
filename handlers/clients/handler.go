package clients

import (
	"net/http"
	"time"

	"tailorpro-backend/db"
	"tailorpro-backend/models"
	"tailorpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateClient adds a customer to the connected tailor's book
// @Summary Create a client
// @Description Create a client with optional initial measurements
// @Tags clients
// @Accept json
// @Produce json
// @Param client body models.Client true "Client information"
// @Security BearerAuth
// @Success 201 {object} models.Client
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Router /clients [post]
func CreateClient(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	client.ID = ""
	client.UserID = userID.(string)
	if client.Measurements != (models.Measurements{}) {
		now := time.Now()
		client.LastMeasurementDate = &now
	}

	if result := db.DB.Create(&client); result.Error != nil {
		utils.LogErrorWithUser(userID, result.Error, "Error creating the client in CreateClient")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the client"})
		return
	}

	utils.LogSuccessWithUser(userID, "Client created in CreateClient")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Client created successfully",
		"client":  client,
	})
}

// GetClients lists the tailor's clients, optionally filtered by a search term
// @Summary List clients
// @Description Return the connected tailor's clients, optionally filtered by name, phone or email
// @Tags clients
// @Produce json
// @Param search query string false "Search term"
// @Security BearerAuth
// @Success 200 {array} models.Client
// @Router /clients [get]
func GetClients(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	query := db.DB.Where("user_id = ?", userID)
	if search := c.Query("search"); search != "" {
		term := "%" + search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR phone ILIKE ? OR email ILIKE ?", term, term, term, term)
	}

	var clients []models.Client
	if err := query.Order("created_at DESC").Find(&clients).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error fetching clients in GetClients")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching clients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// GetClient returns one client
// @Summary Client detail
// @Description Return one client of the connected tailor
// @Tags clients
// @Produce json
// @Param clientId path string true "ID of the client"
// @Security BearerAuth
// @Success 200 {object} models.Client
// @Failure 404 {object} map[string]string "error: Client not found"
// @Router /clients/{clientId} [get]
func GetClient(c *gin.Context) {
	client, ok := findOwnClient(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": client})
}

// UpdateClient updates a client's contact information and preferences
// @Summary Update a client
// @Description Update a client of the connected tailor
// @Tags clients
// @Accept json
// @Produce json
// @Param clientId path string true "ID of the client"
// @Param client body models.Client true "Client fields"
// @Security BearerAuth
// @Success 200 {object} models.Client
// @Failure 404 {object} map[string]string "error: Client not found"
// @Router /clients/{clientId} [put]
func UpdateClient(c *gin.Context) {
	client, ok := findOwnClient(c)
	if !ok {
		return
	}

	var input models.Client
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	client.FirstName = input.FirstName
	client.LastName = input.LastName
	client.Gender = input.Gender
	client.Phone = input.Phone
	client.Email = input.Email
	client.Address = input.Address
	client.BodyType = input.BodyType
	client.FitPreference = input.FitPreference
	client.StyleNotes = input.StyleNotes

	if err := db.DB.Save(client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Client updated successfully",
		"client":  client,
	})
}

// UpdateMeasurements replaces a client's measurement sheet
// @Summary Update measurements
// @Description Replace the client's measurement sheet and stamp the measurement date
// @Tags clients
// @Accept json
// @Produce json
// @Param clientId path string true "ID of the client"
// @Param measurements body models.Measurements true "Measurements in centimetres"
// @Security BearerAuth
// @Success 200 {object} models.Client
// @Failure 404 {object} map[string]string "error: Client not found"
// @Router /clients/{clientId}/measurements [put]
func UpdateMeasurements(c *gin.Context) {
	client, ok := findOwnClient(c)
	if !ok {
		return
	}

	var input struct {
		Measurements     models.Measurements `json:"measurements"`
		MeasurementNotes string              `json:"measurementNotes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	now := time.Now()
	client.Measurements = input.Measurements
	client.MeasurementNotes = input.MeasurementNotes
	client.LastMeasurementDate = &now

	if err := db.DB.Save(client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the measurements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Measurements updated successfully",
		"client":  client,
	})
}

// DeleteClient removes a client
// @Summary Delete a client
// @Description Delete a client of the connected tailor
// @Tags clients
// @Produce json
// @Param clientId path string true "ID of the client"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message"
// @Failure 404 {object} map[string]string "error: Client not found"
// @Router /clients/{clientId} [delete]
func DeleteClient(c *gin.Context) {
	client, ok := findOwnClient(c)
	if !ok {
		return
	}

	if err := db.DB.Delete(client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting the client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

// findOwnClient loads the path client and checks it belongs to the
// connected tailor. Writes the error response itself when it fails.
func findOwnClient(c *gin.Context) (*models.Client, bool) {
	clientID := c.Param("clientId")
	if _, err := uuid.Parse(clientID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return nil, false
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}

	var client models.Client
	if err := db.DB.First(&client, "id = ? AND user_id = ?", clientID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return nil, false
	}

	return &client, true
}
