package subscription

import (
	"errors"
	"testing"
	"time"

	"tailorpro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func trialSub(start time.Time, days int) models.Subscription {
	return models.Subscription{
		Status:         models.SubscriptionTrial,
		TrialStartDate: start,
		TrialEndDate:   start.Add(time.Duration(days) * day),
	}
}

func activeSub(trialEnd, periodStart, periodEnd time.Time) models.Subscription {
	start := periodStart
	end := periodEnd
	return models.Subscription{
		Status:             models.SubscriptionActive,
		TrialStartDate:     trialEnd.Add(-7 * day),
		TrialEndDate:       trialEnd,
		CurrentPeriodStart: &start,
		CurrentPeriodEnd:   &end,
	}
}

func approvedRecord(submitted, periodStart, periodEnd time.Time) models.PaymentRecord {
	approval := submitted.Add(day)
	return models.PaymentRecord{
		ID:           "rec-approved",
		Amount:       MonthlyFee,
		Status:       models.PaymentApproved,
		SubmittedAt:  submitted,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		ApprovalDate: &approval,
	}
}

func TestCanSubmitPayment_AdminNeverPays(t *testing.T) {
	sub := trialSub(t0, 7)
	sub.Status = models.SubscriptionExpired

	assert.False(t, CanSubmitPayment(&sub, models.AdminRole, t0.Add(30*day)))
}

func TestCanSubmitPayment_TrialCannotPrepay(t *testing.T) {
	sub := trialSub(t0, 7)

	assert.False(t, CanSubmitPayment(&sub, models.TailorRole, t0))
	assert.False(t, CanSubmitPayment(&sub, models.TailorRole, t0.Add(6*day)))
}

func TestCanSubmitPayment_ExpiredAndRestrictedAlwaysPayable(t *testing.T) {
	for _, status := range []models.SubscriptionStatus{models.SubscriptionExpired, models.SubscriptionRestricted} {
		sub := trialSub(t0, 7)
		sub.Status = status
		assert.True(t, CanSubmitPayment(&sub, models.TailorRole, t0.Add(100*day)), "status %s must be payable", status)
	}
}

func TestCanSubmitPayment_ActiveOnlyWhenDue(t *testing.T) {
	sub := activeSub(t0, t0, t0.Add(30*day))
	due := t0.Add(25 * day)
	sub.NextPaymentDueDate = &due

	assert.False(t, CanSubmitPayment(&sub, models.TailorRole, t0.Add(24*day)))
	assert.True(t, CanSubmitPayment(&sub, models.TailorRole, due))
	assert.True(t, CanSubmitPayment(&sub, models.TailorRole, t0.Add(29*day)))
}

func TestCanSubmitPayment_DueDateFallsBackToPeriodEnd(t *testing.T) {
	sub := activeSub(t0, t0, t0.Add(30*day))

	assert.False(t, CanSubmitPayment(&sub, models.TailorRole, t0.Add(29*day)))
	assert.True(t, CanSubmitPayment(&sub, models.TailorRole, t0.Add(30*day)))
}

func TestSubmitPayment_SecondSubmissionRefused(t *testing.T) {
	sub := trialSub(t0.Add(-10*day), 7)
	sub.Status = models.SubscriptionExpired

	_, err := SubmitPayment(&sub, models.TailorRole, t0, MonthlyFee)
	require.NoError(t, err)

	_, err = SubmitPayment(&sub, models.TailorRole, t0.Add(time.Hour), MonthlyFee)
	var refusal *PaymentNotAllowedError
	require.ErrorAs(t, err, &refusal)
	assert.Equal(t, ReasonPendingExists, refusal.Reason)
}

func TestSubmitPayment_ReactivationResetsClock(t *testing.T) {
	for _, status := range []models.SubscriptionStatus{models.SubscriptionExpired, models.SubscriptionRestricted} {
		sub := trialSub(t0.Add(-60*day), 7)
		sub.Status = status
		staleEnd := t0.Add(-20 * day)
		sub.CurrentPeriodEnd = &staleEnd

		rec, err := SubmitPayment(&sub, models.TailorRole, t0, MonthlyFee)
		require.NoError(t, err)
		assert.True(t, rec.PeriodStart.Equal(t0), "reactivation must not backdate from the stale period")
		assert.True(t, rec.PeriodEnd.Equal(t0.Add(30*day)))
	}
}

func TestSubmitPayment_RenewalChainsOffCurrentPeriod(t *testing.T) {
	periodEnd := t0.Add(30 * day)
	sub := activeSub(t0, t0, periodEnd)

	rec, err := SubmitPayment(&sub, models.TailorRole, periodEnd.Add(2*day), MonthlyFee)
	require.NoError(t, err)
	assert.True(t, rec.PeriodStart.Equal(periodEnd))
	assert.True(t, rec.PeriodEnd.Equal(periodEnd.Add(30*day)))
}

func TestSubmitPayment_SetsOptimisticHold(t *testing.T) {
	sub := trialSub(t0.Add(-10*day), 7)
	sub.Status = models.SubscriptionExpired

	rec, err := SubmitPayment(&sub, models.TailorRole, t0, MonthlyFee)
	require.NoError(t, err)

	assert.Equal(t, models.SubscriptionPending, sub.Status)
	assert.Equal(t, models.PaymentPending, rec.Status)
	assert.Equal(t, MonthlyFee, rec.Amount)
	assert.Nil(t, sub.CurrentPeriodEnd, "period must not advance before approval")
	assert.Len(t, sub.Payments, 1)
}

func TestResolvePayment_ApprovalActivatesAndAdvancesPeriod(t *testing.T) {
	sub := trialSub(t0.Add(-10*day), 7)
	sub.Status = models.SubscriptionExpired

	rec, err := SubmitPayment(&sub, models.TailorRole, t0, MonthlyFee)
	require.NoError(t, err)

	resolvedAt := t0.Add(day)
	require.NoError(t, ResolvePayment(&sub, rec, DecisionApproved, resolvedAt, ""))

	assert.Equal(t, models.PaymentApproved, rec.Status)
	require.NotNil(t, rec.ApprovalDate)
	assert.True(t, rec.ApprovalDate.Equal(resolvedAt))

	assert.Equal(t, models.SubscriptionActive, sub.Status)
	require.NotNil(t, sub.LastPaymentDate)
	assert.True(t, sub.LastPaymentDate.Equal(resolvedAt))
	require.NotNil(t, sub.CurrentPeriodStart)
	assert.True(t, sub.CurrentPeriodStart.Equal(rec.PeriodStart))
	require.NotNil(t, sub.CurrentPeriodEnd)
	assert.True(t, sub.CurrentPeriodEnd.Equal(rec.PeriodEnd))
	require.NotNil(t, sub.NextPaymentDueDate)
	assert.True(t, sub.NextPaymentDueDate.Equal(rec.PeriodEnd))
}

func TestResolvePayment_PeriodEndNeverShrinks(t *testing.T) {
	sub := trialSub(t0.Add(-40*day), 7)
	sub.Status = models.SubscriptionExpired

	ends := make([]time.Time, 0, 3)
	for i := 0; i < 3; i++ {
		now := t0.Add(time.Duration(i*30) * day)
		rec, err := SubmitPayment(&sub, models.TailorRole, now, MonthlyFee)
		require.NoError(t, err)
		require.NoError(t, ResolvePayment(&sub, rec, DecisionApproved, now.Add(time.Hour), ""))
		ends = append(ends, *sub.CurrentPeriodEnd)
	}

	for i := 1; i < len(ends); i++ {
		assert.False(t, ends[i].Before(ends[i-1]), "currentPeriodEnd must be monotonic")
	}
}

func TestResolvePayment_DeclineWithNoApprovedHistoryRestricts(t *testing.T) {
	sub := trialSub(t0.Add(-10*day), 7)
	sub.Status = models.SubscriptionExpired

	rec, err := SubmitPayment(&sub, models.TailorRole, t0, MonthlyFee)
	require.NoError(t, err)
	require.NoError(t, ResolvePayment(&sub, rec, DecisionDeclined, t0.Add(day), "no receipt visible"))

	assert.Equal(t, models.SubscriptionRestricted, sub.Status)
	assert.Equal(t, models.PaymentDeclined, rec.Status)
	assert.Equal(t, "no receipt visible", rec.DeclineReason)
}

func TestResolvePayment_DeclineWithApprovedHistoryExpires(t *testing.T) {
	sub := trialSub(t0.Add(-60*day), 7)
	sub.Status = models.SubscriptionExpired
	sub.Payments = []models.PaymentRecord{approvedRecord(t0.Add(-50*day), t0.Add(-50*day), t0.Add(-20*day))}

	rec, err := SubmitPayment(&sub, models.TailorRole, t0, MonthlyFee)
	require.NoError(t, err)
	require.NoError(t, ResolvePayment(&sub, rec, DecisionDeclined, t0.Add(day), ""))

	assert.Equal(t, models.SubscriptionExpired, sub.Status)
}

func TestResolvePayment_AlreadyResolvedMutatesNothing(t *testing.T) {
	sub := trialSub(t0.Add(-10*day), 7)
	sub.Status = models.SubscriptionExpired

	rec, err := SubmitPayment(&sub, models.TailorRole, t0, MonthlyFee)
	require.NoError(t, err)
	require.NoError(t, ResolvePayment(&sub, rec, DecisionApproved, t0.Add(day), ""))

	before := *rec
	subBefore := sub.Status

	err = ResolvePayment(&sub, rec, DecisionDeclined, t0.Add(2*day), "second look")
	assert.True(t, errors.Is(err, ErrAlreadyResolved))
	assert.Equal(t, before, *rec)
	assert.Equal(t, subBefore, sub.Status)
}

func TestHasAccess_AdminAlways(t *testing.T) {
	sub := trialSub(t0.Add(-100*day), 7)
	sub.Status = models.SubscriptionRestricted

	assert.True(t, HasAccess(&sub, models.AdminRole, t0))
}

func TestHasAccess_GraceWindowIsInclusive(t *testing.T) {
	sub := trialSub(t0.Add(-10*day), 7)
	sub.Status = models.SubscriptionExpired
	_, err := SubmitPayment(&sub, models.TailorRole, t0, MonthlyFee)
	require.NoError(t, err)

	assert.True(t, HasAccess(&sub, models.TailorRole, t0))
	assert.True(t, HasAccess(&sub, models.TailorRole, t0.Add(day)))
	assert.True(t, HasAccess(&sub, models.TailorRole, t0.Add(GracePeriod)))
	assert.False(t, HasAccess(&sub, models.TailorRole, t0.Add(GracePeriod+time.Second)))
}

func TestHasAccess_PendingWithoutRecordDenied(t *testing.T) {
	sub := trialSub(t0, 7)
	sub.Status = models.SubscriptionPending

	assert.False(t, HasAccess(&sub, models.TailorRole, t0))
}

func TestHasAccess_ExpiredAndRestrictedDenied(t *testing.T) {
	for _, status := range []models.SubscriptionStatus{models.SubscriptionExpired, models.SubscriptionRestricted} {
		sub := trialSub(t0, 7)
		sub.Status = status
		assert.False(t, HasAccess(&sub, models.TailorRole, t0))
	}
}

func TestEvaluateStatus_TrialExpiry(t *testing.T) {
	sub := trialSub(t0, 7)

	assert.Equal(t, models.SubscriptionTrial, EvaluateStatus(&sub, t0.Add(7*day)))
	assert.Equal(t, models.SubscriptionExpired, EvaluateStatus(&sub, t0.Add(7*day+time.Minute)))
}

func TestEvaluateStatus_ActiveExpiry(t *testing.T) {
	sub := activeSub(t0, t0, t0.Add(30*day))

	assert.Equal(t, models.SubscriptionActive, EvaluateStatus(&sub, t0.Add(30*day)))
	assert.Equal(t, models.SubscriptionExpired, EvaluateStatus(&sub, t0.Add(31*day)))
}

func TestEvaluateStatus_ActiveWithoutPeriodEndExpires(t *testing.T) {
	sub := trialSub(t0, 7)
	sub.Status = models.SubscriptionActive

	assert.Equal(t, models.SubscriptionExpired, EvaluateStatus(&sub, t0))
}

func TestEvaluateStatus_PendingGraceElapsed(t *testing.T) {
	sub := trialSub(t0.Add(-10*day), 7)
	sub.Status = models.SubscriptionExpired
	_, err := SubmitPayment(&sub, models.TailorRole, t0, MonthlyFee)
	require.NoError(t, err)

	assert.Equal(t, models.SubscriptionPending, EvaluateStatus(&sub, t0.Add(2*day)))
	// No approved payment ever and the trial has passed: restricted.
	assert.Equal(t, models.SubscriptionRestricted, EvaluateStatus(&sub, t0.Add(4*day)))

	sub.Payments = append([]models.PaymentRecord{approvedRecord(t0.Add(-9*day), t0.Add(-9*day), t0.Add(21*day))}, sub.Payments...)
	assert.Equal(t, models.SubscriptionExpired, EvaluateStatus(&sub, t0.Add(4*day)))
}

func TestEvaluateStatus_Idempotent(t *testing.T) {
	graceOver := trialSub(t0.Add(-10*day), 7)
	graceOver.Status = models.SubscriptionExpired
	_, err := SubmitPayment(&graceOver, models.TailorRole, t0.Add(-5*day), MonthlyFee)
	require.NoError(t, err)

	subs := []models.Subscription{
		trialSub(t0, 7),
		trialSub(t0.Add(-10*day), 7),
		activeSub(t0, t0, t0.Add(30*day)),
		activeSub(t0.Add(-60*day), t0.Add(-60*day), t0.Add(-30*day)),
		graceOver,
	}
	times := []time.Time{t0, t0.Add(5 * day), t0.Add(40 * day), t0.Add(400 * day)}

	for _, sub := range subs {
		for _, now := range times {
			s := sub
			first := EvaluateStatus(&s, now)
			s.Status = first
			assert.Equal(t, first, EvaluateStatus(&s, now))
		}
	}
}

// Trial account created at T0 with a 7-day window: access throughout the
// trial, none after, and no way to prepay.
func TestScenario_TrialLifecycle(t *testing.T) {
	sub := trialSub(t0, 7)

	assert.True(t, HasAccess(&sub, models.TailorRole, t0.Add(6*day)))
	assert.False(t, CanSubmitPayment(&sub, models.TailorRole, t0.Add(6*day)))

	sub.Status = EvaluateStatus(&sub, t0.Add(8*day))
	assert.Equal(t, models.SubscriptionExpired, sub.Status)
	assert.False(t, HasAccess(&sub, models.TailorRole, t0.Add(8*day)))
	assert.True(t, CanSubmitPayment(&sub, models.TailorRole, t0.Add(8*day)))
}

// Active account renewing at the period boundary: the new period chains off
// the old one and approval activates it.
func TestScenario_ActiveRenewal(t *testing.T) {
	periodEnd := t0.Add(30 * day)
	sub := activeSub(t0, t0, periodEnd)

	assert.False(t, CanSubmitPayment(&sub, models.TailorRole, t0.Add(29*day)))
	assert.True(t, CanSubmitPayment(&sub, models.TailorRole, periodEnd))

	rec, err := SubmitPayment(&sub, models.TailorRole, periodEnd, MonthlyFee)
	require.NoError(t, err)
	assert.True(t, rec.PeriodStart.Equal(periodEnd))
	assert.True(t, rec.PeriodEnd.Equal(t0.Add(60*day)))
	assert.Equal(t, models.SubscriptionPending, sub.Status)

	require.NoError(t, ResolvePayment(&sub, rec, DecisionApproved, t0.Add(31*day), ""))
	assert.Equal(t, models.SubscriptionActive, sub.Status)
	assert.True(t, sub.CurrentPeriodEnd.Equal(t0.Add(60*day)))
}

// Expired account with one earlier approved payment gets declined again:
// back to expired, never restricted, and the reason is kept.
func TestScenario_DeclineAfterEarlierApproval(t *testing.T) {
	sub := trialSub(t0.Add(-90*day), 7)
	sub.Status = models.SubscriptionExpired
	sub.Payments = []models.PaymentRecord{approvedRecord(t0.Add(-80*day), t0.Add(-80*day), t0.Add(-50*day))}

	rec, err := SubmitPayment(&sub, models.TailorRole, t0, MonthlyFee)
	require.NoError(t, err)

	require.NoError(t, ResolvePayment(&sub, rec, DecisionDeclined, t0.Add(2*day), "no receipt visible"))
	assert.Equal(t, models.SubscriptionExpired, sub.Status)
	assert.Equal(t, "no receipt visible", rec.DeclineReason)
}
