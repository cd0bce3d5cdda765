package payments

import (
	"errors"
	"fmt"
	"math"
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
	"gorm.io/gorm"
)

// Cloudinary calls go through package variables so tests can run the
// submission path without a real account.
var (
	uploadReceipt = utils.UploadReceipt
	deleteReceipt = utils.DeleteReceipt
)

// loadSubscriber fetches a tenant with its payment history attached, ready
// for the subscription engine.
func loadSubscriber(userID interface{}) (*models.User, error) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	var payments []models.PaymentRecord
	if err := db.DB.Where("user_id = ?", user.ID).Order("submitted_at ASC").Find(&payments).Error; err != nil {
		return nil, err
	}
	user.Subscription.Payments = payments
	return &user, nil
}

func refusalMessage(refusal *subscription.PaymentNotAllowedError, now time.Time) string {
	switch refusal.Reason {
	case subscription.ReasonAdminAccount:
		return "Admin accounts do not require a subscription"
	case subscription.ReasonPendingExists:
		return "You already have a pending payment. Please wait for approval."
	case subscription.ReasonNotYetDue:
		daysUntilDue := int(math.Ceil(refusal.DueAt.Sub(now).Hours() / 24))
		return fmt.Sprintf("Your next payment is due in %d days. You can only pay when due.", daysUntilDue)
	case subscription.ReasonTrialActive:
		return "Your free trial is still running. You can subscribe once it ends."
	}
	return "You cannot make a payment at this time"
}

// CreatePayment submits a bank-transfer receipt for admin review
// @Summary Submit a payment receipt
// @Description Upload a bank-transfer receipt for the monthly subscription. The payment stays pending until an admin approves or declines it.
// @Tags payments
// @Accept multipart/form-data
// @Produce json
// @Param receipt formData file true "Receipt image"
// @Param transactionReference formData string false "Bank transaction reference"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message, payment"
// @Failure 400 {object} map[string]string "error: submission refused"
// @Failure 409 {object} map[string]string "error: a pending payment already exists"
// @Router /payments [post]
func CreatePayment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := loadSubscriber(userID)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "User not found in CreatePayment")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	file, err := c.FormFile("receipt")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a receipt"})
		return
	}

	now := time.Now()
	rec, err := subscription.SubmitPayment(&user.Subscription, user.Role, now, subscription.MonthlyFee)
	if err != nil {
		var refusal *subscription.PaymentNotAllowedError
		if errors.As(err, &refusal) {
			utils.LogErrorWithUser(userID, err, "Payment submission refused in CreatePayment")
			c.JSON(http.StatusBadRequest, gin.H{"error": refusalMessage(refusal, now)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	receiptURL, receiptPublicID, err := uploadReceipt(file)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Receipt upload failed in CreatePayment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading the receipt"})
		return
	}

	rec.UserID = user.ID
	rec.ReceiptURL = receiptURL
	rec.ReceiptPublicID = receiptPublicID
	rec.TransactionReference = c.PostForm("transactionReference")

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("subscription_status", user.Subscription.Status).Error
	})
	if err != nil {
		// The record was never stored, so the uploaded asset would be orphaned.
		if cleanupErr := deleteReceipt(receiptPublicID); cleanupErr != nil {
			utils.LogErrorWithUser(userID, cleanupErr, "Error deleting the orphaned receipt in CreatePayment")
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			// The partial unique index caught a concurrent submission.
			c.JSON(http.StatusConflict, gin.H{"error": "You already have a pending payment. Please wait for approval."})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error saving the payment in CreatePayment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving the payment"})
		return
	}

	utils.LogSuccessWithUser(userID, "Payment receipt submitted in CreatePayment")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment receipt uploaded successfully. Awaiting approval.",
		"payment": rec,
	})
}

// ApprovePayment marks a pending payment as approved and activates the period it paid for
// @Summary Approve a payment
// @Description Approve a pending payment: the record is marked approved and the tenant's paid period advances to the one the payment covers.
// @Tags payments
// @Accept json
// @Produce json
// @Param paymentId path string true "ID of the payment"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message, payment"
// @Failure 404 {object} map[string]string "error: Payment not found"
// @Failure 409 {object} map[string]string "error: Payment already resolved"
// @Router /payments/{paymentId}/approve [put]
func ApprovePayment(c *gin.Context) {
	resolvePayment(c, subscription.DecisionApproved)
}

// DeclinePayment marks a pending payment as declined
// @Summary Decline a payment
// @Description Decline a pending payment with an optional reason. The tenant falls back to expired, or restricted when no payment was ever approved.
// @Tags payments
// @Accept json
// @Produce json
// @Param paymentId path string true "ID of the payment"
// @Param body body map[string]string false "reason: why the payment was declined"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message, payment"
// @Failure 404 {object} map[string]string "error: Payment not found"
// @Failure 409 {object} map[string]string "error: Payment already resolved"
// @Router /payments/{paymentId}/decline [put]
func DeclinePayment(c *gin.Context) {
	resolvePayment(c, subscription.DecisionDeclined)
}

// resolvePayment is the shared approve/decline path; the two admin actions
// only differ by the engine decision and the outgoing mail.
func resolvePayment(c *gin.Context, decision subscription.Decision) {
	paymentID := c.Param("paymentId")
	if _, err := uuid.Parse(paymentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	adminID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var rec models.PaymentRecord
	if err := db.DB.First(&rec, "id = ?", paymentID).Error; err != nil {
		utils.LogErrorWithUser(adminID, err, "Payment not found in resolvePayment")
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	user, err := loadSubscriber(rec.UserID)
	if err != nil {
		utils.LogErrorWithUser(adminID, err, "Payment owner not found in resolvePayment")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var input struct {
		Reason string `json:"reason"`
	}
	if decision == subscription.DecisionDeclined {
		// The body is optional; a decline without a reason is valid.
		_ = c.ShouldBindJSON(&input)
	}

	now := time.Now()
	if err := subscription.ResolvePayment(&user.Subscription, &rec, decision, now, input.Reason); err != nil {
		if errors.Is(err, subscription.ErrAlreadyResolved) {
			c.JSON(http.StatusConflict, gin.H{"error": "Payment already resolved"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if id, ok := adminID.(string); ok {
		rec.ProcessedBy = id
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&rec).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
			"subscription_status":                user.Subscription.Status,
			"subscription_last_payment_date":     user.Subscription.LastPaymentDate,
			"subscription_current_period_start":  user.Subscription.CurrentPeriodStart,
			"subscription_current_period_end":    user.Subscription.CurrentPeriodEnd,
			"subscription_next_payment_due_date": user.Subscription.NextPaymentDueDate,
		}).Error
	})
	if err != nil {
		utils.LogErrorWithUser(adminID, err, "Error saving the resolution in resolvePayment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving the payment resolution"})
		return
	}

	if decision == subscription.DecisionApproved {
		mailsmodels.PaymentApproved(user.Email, rec.Amount, rec.PeriodEnd)
		utils.LogSuccessWithUser(adminID, "Payment approved in resolvePayment")
		c.JSON(http.StatusOK, gin.H{
			"message": "Payment approved successfully",
			"payment": rec,
		})
		return
	}

	mailsmodels.PaymentDeclined(user.Email, rec.Amount, rec.DeclineReason)
	utils.LogSuccessWithUser(adminID, "Payment declined in resolvePayment")
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment declined",
		"payment": rec,
	})
}

// GetUserPayments lists the connected tenant's payment history
// @Summary List own payments
// @Description Return the connected tenant's payment history, newest first
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PaymentRecord
// @Router /payments [get]
func GetUserPayments(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var payments []models.PaymentRecord
	if err := db.DB.Where("user_id = ?", userID).Order("submitted_at DESC").Find(&payments).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error fetching payments in GetUserPayments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// GetAllPayments lists every payment for admin review
// @Summary List all payments
// @Description Return every payment across tenants, newest first (admin only)
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PaymentRecord
// @Router /payments/admin [get]
func GetAllPayments(c *gin.Context) {
	var payments []models.PaymentRecord
	if err := db.DB.Order("submitted_at DESC").Find(&payments).Error; err != nil {
		utils.LogError(err, "Error fetching payments in GetAllPayments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// GetPaymentStatus reports the subscription snapshot the payment page needs
// @Summary Subscription and payment status
// @Description Return the evaluated subscription status, access and payability flags, and the bank transfer details for manual payment.
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /payments/status [get]
func GetPaymentStatus(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := loadSubscriber(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	now := time.Now()
	hasPending := false
	for i := range user.Subscription.Payments {
		if user.Subscription.Payments[i].Status == models.PaymentPending {
			hasPending = true
			break
		}
	}

	status := gin.H{
		// The stored status may be stale; always report the evaluated one.
		"subscription":         subscription.EvaluateStatus(&user.Subscription, now),
		"trialEndDate":         user.Subscription.TrialEndDate,
		"currentPeriodEnd":     user.Subscription.CurrentPeriodEnd,
		"nextPaymentDue":       user.Subscription.NextPaymentDueDate,
		"canMakePayment":       subscription.CanSubmitPayment(&user.Subscription, user.Role, now),
		"hasAccess":            subscription.HasAccess(&user.Subscription, user.Role, now),
		"hasPendingPayment":    hasPending,
		"daysUntilNextPayment": nil,
		"amount":               subscription.MonthlyFee,
		"currency":             subscription.Currency,
		"bankDetails": gin.H{
			"accountName":   "TailorPro Solutions",
			"accountNumber": "0123456789",
			"bankName":      "Access Bank",
		},
	}

	if user.Subscription.NextPaymentDueDate != nil {
		status["daysUntilNextPayment"] = int(math.Ceil(user.Subscription.NextPaymentDueDate.Sub(now).Hours() / 24))
	}

	c.JSON(http.StatusOK, status)
}
