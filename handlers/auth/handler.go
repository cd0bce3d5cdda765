package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"tailorpro-backend/db"
	"tailorpro-backend/models"
	"tailorpro-backend/subscription"
	"tailorpro-backend/utils"
	mailsmodels "tailorpro-backend/utils/mails-models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Register creates a tenant account with a fresh trial
// @Summary Register a new tailor account
// @Description Create a tailor account. The subscription starts as a free trial seeded from the configured trial length.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.UserRegister true "Account information"
// @Success 201 {object} map[string]interface{} "token, user"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 409 {object} map[string]string "error: Email already used"
// @Router /register [post]
func Register(c *gin.Context) {
	var input models.UserRegister

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if !utils.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email format",
		})
		return
	}

	if msg := passwordPolicyError(input.Password); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var existingUser models.User
	if err := db.DB.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "This email is already used",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error when checking the email existence",
		})
		return
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error hashing the password"})
		return
	}

	now := time.Now()
	user := models.User{
		Email:             strings.ToLower(strings.TrimSpace(input.Email)),
		Password:          passwordHash,
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		BusinessName:      input.BusinessName,
		Phone:             input.Phone,
		Role:              models.TailorRole,
		VerificationToken: uuid.NewString(),
		Subscription:      subscription.NewTrial(now),
		Settings: models.Settings{
			EmailNotifications: true,
			CalendarReminders:  true,
			PaymentReminders:   true,
		},
	}

	if result := db.DB.Create(&user); result.Error != nil {
		utils.LogError(result.Error, "Error creating the user in Register")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	trialDays := int(subscription.TrialDuration().Hours() / 24)
	mailsmodels.Welcome(user.Email, user.FirstName, user.VerificationToken, trialDays)

	token, err := utils.GenerateJWT(user, 72)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error generating the token"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "User registered in Register")
	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

// Login authenticates a tenant
// @Summary Login
// @Description Authenticate with email and password, returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.UserLogin true "Credentials"
// @Success 200 {object} map[string]interface{} "token, user"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Wrong credentials"
// @Router /login [post]
func Login(c *gin.Context) {
	var input models.UserLogin

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if !utils.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email format",
		})
		return
	}

	var user models.User
	result := db.DB.Where("email = ?", strings.ToLower(input.Email)).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Wrong credentials",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Database error: " + result.Error.Error(),
			})
		}
		return
	}

	if !samePassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Wrong credentials",
		})
		return
	}

	token, err := utils.GenerateJWT(user, 72)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error generating the token"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "User logged in")
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// VerifyEmail flags the account as verified
// @Summary Verify an email address
// @Description Verify an account with the token sent by mail
// @Tags auth
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} map[string]string "message"
// @Failure 404 {object} map[string]string "error: Invalid verification token"
// @Router /verify-email [get]
func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing verification token"})
		return
	}

	var user models.User
	if err := db.DB.Where("verification_token = ?", token).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid verification token"})
		return
	}

	err := db.DB.Model(&user).Updates(map[string]interface{}{
		"is_verified":        true,
		"verification_token": "",
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error verifying the email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

// ForgotPassword starts a password reset by mailing a short-lived token
// @Summary Request a password reset
// @Description Send a password reset link by mail. The response is the same whether or not the email exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body map[string]string true "email: account email address"
// @Success 200 {object} map[string]string "message"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Router /forgot-password [post]
func ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	// The response never reveals whether the email exists.
	genericResponse := gin.H{"message": "If an account exists with this email, a password reset link will be sent."}

	var user models.User
	result := db.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, genericResponse)
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	token, err := newResetToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating the reset token"})
		return
	}

	// Only the hash is stored; the mailed token is the single copy of the secret.
	expire := time.Now().Add(10 * time.Minute)
	err = db.DB.Model(&user).Updates(map[string]interface{}{
		"reset_password_token":  hashResetToken(token),
		"reset_password_expire": expire,
	}).Error
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error saving the reset token in ForgotPassword")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving the reset token"})
		return
	}

	mailsmodels.ResetPassword(user.Email, token)

	utils.LogSuccessWithUser(user.ID, "Password reset requested in ForgotPassword")
	c.JSON(http.StatusOK, genericResponse)
}

// ResetPassword sets a new password from a mailed reset token
// @Summary Reset the password
// @Description Set a new password using the token received by mail
// @Tags auth
// @Accept json
// @Produce json
// @Param body body map[string]string true "token: reset token, password: new password"
// @Success 200 {object} map[string]string "message"
// @Failure 400 {object} map[string]string "error: Invalid or expired reset token"
// @Router /reset-password [post]
func ResetPassword(c *gin.Context) {
	var input struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if msg := passwordPolicyError(input.Password); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var user models.User
	result := db.DB.Where("reset_password_token = ? AND reset_password_expire > ?",
		hashResetToken(input.Token), time.Now()).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset token"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error hashing the password"})
		return
	}

	err = db.DB.Model(&user).Updates(map[string]interface{}{
		"password":              passwordHash,
		"reset_password_token":  "",
		"reset_password_expire": nil,
	}).Error
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error saving the new password in ResetPassword")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving the new password"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "Password reset in ResetPassword")
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}

func passwordPolicyError(password string) string {
	if len(password) < 6 {
		return "The password must contain at least 6 characters"
	}

	hasLower := strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz")
	hasUpper := strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	hasDigit := strings.ContainsAny(password, "0123456789")

	if !hasLower || !hasUpper || !hasDigit {
		return "The password must contain at least one lowercase, one uppercase and one digit"
	}
	return ""
}

func newResetToken() (string, error) {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func samePassword(formPassword string, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(formPassword))
	return err == nil
}
