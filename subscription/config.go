package subscription

import (
	"os"
	"strconv"
	"time"

	"tailorpro-backend/models"
)

const (
	// PeriodLength is the paid access window bought by one approved payment.
	PeriodLength = 30 * 24 * time.Hour

	// GracePeriod is how long a tenant keeps access after submitting a
	// receipt while an admin reviews it.
	GracePeriod = 3 * 24 * time.Hour

	// MonthlyFee is the flat subscription price in minor currency units.
	MonthlyFee = 1500

	// Currency applied to every payment record.
	Currency = "NGN"

	defaultTrialDays = 7
)

// TrialDuration returns the trial window for new accounts. TRIAL_DAYS
// overrides the default so deployments can run 7-day or 30-day trials.
func TrialDuration() time.Duration {
	if v := os.Getenv("TRIAL_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	return defaultTrialDays * 24 * time.Hour
}

// NewTrial seeds the subscription for a freshly registered tenant.
func NewTrial(now time.Time) models.Subscription {
	return models.Subscription{
		Status:         models.SubscriptionTrial,
		TrialStartDate: now,
		TrialEndDate:   now.Add(TrialDuration()),
	}
}
