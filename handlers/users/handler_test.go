package users

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"tailorpro-backend/models"
	"tailorpro-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const testUserID = "123e4567-e89b-12d3-a456-426614174000"

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestGetUserProfile_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "password", "first_name", "business_name", "role",
			"subscription_status", "subscription_trial_end_date",
			"settings_dark_mode",
		}).AddRow(
			testUserID, "ade@example.com", "hashedpassword", "Ade", "Okafor Bespoke",
			string(models.TailorRole),
			string(models.SubscriptionTrial), now.Add(5*24*time.Hour),
			true,
		))

	r := testutils.SetupTestRouter()
	r.GET("/users/profile", func(c *gin.Context) {
		c.Set("user_id", testUserID)
		GetUserProfile(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/users/profile", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]models.User
	json.Unmarshal(resp.Body.Bytes(), &respBody)

	user := respBody["user"]
	assert.Equal(t, "ade@example.com", user.Email)
	assert.Equal(t, "Okafor Bespoke", user.BusinessName)
	assert.Equal(t, models.SubscriptionTrial, user.Subscription.Status)
	assert.True(t, user.Settings.DarkMode)
	assert.Empty(t, user.Password)
}

func TestGetUserProfile_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/users/profile", func(c *gin.Context) {
		c.Set("user_id", testUserID)
		GetUserProfile(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/users/profile", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetUserProfile_NotAuthenticated(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/users/profile", GetUserProfile)

	req, _ := http.NewRequest(http.MethodGet, "/users/profile", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestUpdateUserProfile_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/users/profile", func(c *gin.Context) {
		c.Set("user_id", testUserID)
		UpdateUserProfile(c)
	})

	profile := map[string]string{
		"firstName":    "Ade",
		"lastName":     "Okafor",
		"businessName": "Okafor Bespoke Tailoring",
		"phone":        "+2348012345678",
		"address":      "12 Allen Avenue, Ikeja",
	}
	jsonData, _ := json.Marshal(profile)

	req, _ := http.NewRequest(http.MethodPut, "/users/profile", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Profile updated successfully", respBody["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserProfile_DatabaseError(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users"`).
		WillReturnError(gorm.ErrInvalidDB)
	mock.ExpectRollback()

	r := testutils.SetupTestRouter()
	r.PUT("/users/profile", func(c *gin.Context) {
		c.Set("user_id", testUserID)
		UpdateUserProfile(c)
	})

	jsonData, _ := json.Marshal(map[string]string{"firstName": "Ade"})

	req, _ := http.NewRequest(http.MethodPut, "/users/profile", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestUpdateSettings_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/users/settings", func(c *gin.Context) {
		c.Set("user_id", testUserID)
		UpdateSettings(c)
	})

	settings := map[string]bool{
		"darkMode":           true,
		"emailNotifications": false,
		"calendarReminders":  true,
		"paymentReminders":   true,
	}
	jsonData, _ := json.Marshal(settings)

	req, _ := http.NewRequest(http.MethodPut, "/users/settings", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Settings updated successfully", respBody["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
