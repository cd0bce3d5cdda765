// Package jobs runs the scheduled sweeps: the daily subscription
// reconciliation, the payment-due reminders and the calendar event
// reminders. Each sweep is idempotent and treats tenants independently, so
// a crash mid-sweep loses nothing; the next run re-evaluates from current
// time.
package jobs

import (
	"fmt"
	"math"
	"time"

	"tailorpro-backend/db"
	"tailorpro-backend/models"
	"tailorpro-backend/subscription"
	"tailorpro-backend/utils"
	mailsmodels "tailorpro-backend/utils/mails-models"

	"github.com/robfig/cron/v3"
)

// StartScheduler registers the sweeps and starts them in the background.
func StartScheduler() *cron.Cron {
	c := cron.New()

	// Midnight: persist drifted subscription statuses and remind tenants
	// whose payment is due within 3 days.
	c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		ReconcileSubscriptions(now)
		SendPaymentReminders(now)
	})

	// 8 AM: remind tailors of tomorrow's events.
	c.AddFunc("0 8 * * *", func() {
		SendEventReminders(time.Now())
	})

	c.Start()
	utils.LogSuccess("Scheduler started")
	return c
}

// ReconcileSubscriptions persists the evaluated status for every tenant
// whose stored status may have silently drifted (trial ran out, period
// ended, review grace elapsed).
func ReconcileSubscriptions(now time.Time) {
	var users []models.User
	err := db.DB.Where("role <> ?", models.AdminRole).
		Where("subscription_status IN ?", []models.SubscriptionStatus{
			models.SubscriptionTrial,
			models.SubscriptionActive,
			models.SubscriptionPending,
		}).
		Find(&users).Error
	if err != nil {
		utils.LogError(err, "Error loading tenants in ReconcileSubscriptions")
		return
	}

	reconciled := 0
	for i := range users {
		if reconcileTenant(&users[i], now) {
			reconciled++
		}
	}

	if reconciled > 0 {
		utils.LogSuccess(fmt.Sprintf("Reconciliation sweep updated %d tenants", reconciled))
	}
}

func reconcileTenant(user *models.User, now time.Time) bool {
	oldStatus := user.Subscription.Status

	if oldStatus == models.SubscriptionPending {
		var payments []models.PaymentRecord
		if err := db.DB.Where("user_id = ?", user.ID).Order("submitted_at ASC").Find(&payments).Error; err != nil {
			utils.LogErrorWithUser(user.ID, err, "Error loading payments in reconcileTenant")
			return false
		}
		user.Subscription.Payments = payments
	}

	newStatus := subscription.EvaluateStatus(&user.Subscription, now)
	if newStatus == oldStatus {
		return false
	}

	// Guard on the old status so a concurrent payment submission is never
	// overwritten by a stale sweep result.
	res := db.DB.Model(&models.User{}).
		Where("id = ? AND subscription_status = ?", user.ID, oldStatus).
		Update("subscription_status", newStatus)
	if res.Error != nil {
		utils.LogErrorWithUser(user.ID, res.Error, "Error persisting the status in reconcileTenant")
		return false
	}
	if res.RowsAffected == 0 {
		// Raced with a mutating operation; the next sweep catches up.
		return false
	}

	if user.Settings.EmailNotifications {
		switch oldStatus {
		case models.SubscriptionTrial:
			mailsmodels.TrialExpired(user.Email)
		case models.SubscriptionActive:
			mailsmodels.SubscriptionExpired(user.Email)
		}
	}

	utils.LogSuccessWithUser(user.ID, "Subscription status reconciled to "+string(newStatus))
	return true
}

// SendPaymentReminders mails active tenants whose next payment is due
// within the next 3 days.
func SendPaymentReminders(now time.Time) {
	threeDaysFromNow := now.Add(3 * 24 * time.Hour)

	var users []models.User
	err := db.DB.Where("role <> ?", models.AdminRole).
		Where("subscription_status = ?", models.SubscriptionActive).
		Where("subscription_next_payment_due_date > ? AND subscription_next_payment_due_date <= ?", now, threeDaysFromNow).
		Find(&users).Error
	if err != nil {
		utils.LogError(err, "Error loading tenants in SendPaymentReminders")
		return
	}

	for i := range users {
		user := &users[i]
		if !user.Settings.PaymentReminders {
			continue
		}
		due := *user.Subscription.NextPaymentDueDate
		daysUntilDue := int(math.Ceil(due.Sub(now).Hours() / 24))
		mailsmodels.PaymentReminder(user.Email, daysUntilDue, due)
	}
}

// SendEventReminders mails tailors about tomorrow's calendar events, once
// per event.
func SendEventReminders(now time.Time) {
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	dayAfter := tomorrow.Add(24 * time.Hour)

	var events []models.CalendarEvent
	err := db.DB.Where("start_date >= ? AND start_date < ?", tomorrow, dayAfter).
		Where("reminder_sent = ?", false).
		Where("status = ?", models.EventPending).
		Find(&events).Error
	if err != nil {
		utils.LogError(err, "Error loading events in SendEventReminders")
		return
	}

	for i := range events {
		event := events[i]

		var user models.User
		if err := db.DB.First(&user, "id = ?", event.UserID).Error; err != nil {
			continue
		}
		if !user.Settings.CalendarReminders {
			continue
		}

		mailsmodels.EventReminder(user.Email, event)

		err := db.DB.Model(&models.CalendarEvent{}).Where("id = ?", event.ID).
			Update("reminder_sent", true).Error
		if err != nil {
			utils.LogError(err, "Error flagging the reminder in SendEventReminders")
		}
	}
}
