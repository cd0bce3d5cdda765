package jobs

import (
	"io"
	"log"
	"os"
	"testing"
	"time"

	"tailorpro-backend/models"
	"tailorpro-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestReconcileSubscriptions_TrialExpired(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	userID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "role",
			"subscription_status", "subscription_trial_start_date", "subscription_trial_end_date",
			"settings_email_notifications",
		}).AddRow(
			userID, "tailor@example.com", string(models.TailorRole),
			string(models.SubscriptionTrial), now.Add(-10*24*time.Hour), now.Add(-3*24*time.Hour),
			false,
		))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "subscription_status"`).
		WithArgs(string(models.SubscriptionExpired), sqlmock.AnyArg(), userID, string(models.SubscriptionTrial)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ReconcileSubscriptions(now)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReconcileSubscriptions_ActiveStillCurrent(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "role",
			"subscription_status", "subscription_current_period_end",
		}).AddRow(
			"123e4567-e89b-12d3-a456-426614174000", "tailor@example.com", string(models.TailorRole),
			string(models.SubscriptionActive), now.Add(12*24*time.Hour),
		))

	ReconcileSubscriptions(now)

	// Nothing drifted, no UPDATE issued.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReconcileSubscriptions_RacedUpdateSkipped(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	userID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "role",
			"subscription_status", "subscription_trial_end_date",
			"settings_email_notifications",
		}).AddRow(
			userID, "tailor@example.com", string(models.TailorRole),
			string(models.SubscriptionTrial), now.Add(-24*time.Hour),
			true,
		))

	// The tenant submitted a payment between the SELECT and the UPDATE: the
	// guarded update matches nothing and the sweep must leave the row alone.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "subscription_status"`).
		WithArgs(string(models.SubscriptionExpired), sqlmock.AnyArg(), userID, string(models.SubscriptionTrial)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	ReconcileSubscriptions(now)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReconcileSubscriptions_PendingGraceElapsed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	userID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "role",
			"subscription_status", "subscription_trial_end_date",
			"settings_email_notifications",
		}).AddRow(
			userID, "tailor@example.com", string(models.TailorRole),
			string(models.SubscriptionPending), now.Add(-20*24*time.Hour),
			false,
		))

	// The only payment on file has been awaiting review for longer than the
	// grace window and the trial is long over: the tenant drops to RESTRICTED.
	mock.ExpectQuery(`SELECT (.+) FROM "payment_records"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "amount", "status", "submitted_at",
		}).AddRow(
			"223e4567-e89b-12d3-a456-426614174000", userID, 1500,
			string(models.PaymentPending), now.Add(-5*24*time.Hour),
		))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "subscription_status"`).
		WithArgs(string(models.SubscriptionRestricted), sqlmock.AnyArg(), userID, string(models.SubscriptionPending)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ReconcileSubscriptions(now)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReconcileSubscriptions_QueryError(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnError(assert.AnError)

	ReconcileSubscriptions(time.Now())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendPaymentReminders_NoneDue(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	SendPaymentReminders(time.Now())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendPaymentReminders_DueSoon(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	dueDate := now.Add(2 * 24 * time.Hour)

	// The mail itself is a no-op without SMTP configuration; the reminder
	// sweep only has to pick the right tenants.
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "role",
			"subscription_status", "subscription_next_payment_due_date",
			"settings_payment_reminders",
		}).AddRow(
			"123e4567-e89b-12d3-a456-426614174000", "tailor@example.com", string(models.TailorRole),
			string(models.SubscriptionActive), dueDate,
			true,
		))

	SendPaymentReminders(now)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendEventReminders_FlagsReminder(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	userID := "123e4567-e89b-12d3-a456-426614174000"
	eventID := "323e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "calendar_events"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "title", "start_date", "status", "reminder_sent",
		}).AddRow(
			eventID, userID, "Fitting with Mrs. Adeyemi",
			time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC), string(models.EventPending), false,
		))

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "settings_calendar_reminders",
		}).AddRow(userID, "tailor@example.com", true))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "calendar_events" SET "reminder_sent"`).
		WithArgs(true, sqlmock.AnyArg(), eventID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	SendEventReminders(now)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendEventReminders_RespectsOptOut(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	userID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "calendar_events"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "title", "start_date", "status", "reminder_sent",
		}).AddRow(
			"323e4567-e89b-12d3-a456-426614174000", userID, "Collection",
			time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC), string(models.EventPending), false,
		))

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "settings_calendar_reminders",
		}).AddRow(userID, "tailor@example.com", false))

	// Opted out: no mail, and the flag stays down so a later opt-in still
	// gets future reminders.
	SendEventReminders(now)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartScheduler_RegistersJobs(t *testing.T) {
	c := StartScheduler()
	defer c.Stop()

	assert.Len(t, c.Entries(), 2)
}
