// Package subscription implements the billing lifecycle for tenant
// accounts: trial conversion, payment submission windows, admin
// approval and decline outcomes, grace periods and period arithmetic.
//
// Every function here is a pure computation over an in-memory snapshot
// (models.Subscription with its payment history loaded) and an explicit
// clock value. Persisting the mutated snapshot is the caller's job, inside
// whatever transaction wraps the operation.
package subscription

import (
	"time"

	"tailorpro-backend/models"
)

// Decision is the admin verdict on a pending payment record.
type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionDeclined Decision = "DECLINED"
)

// pendingRecord returns the most recently submitted record still awaiting
// review, or nil.
func pendingRecord(sub *models.Subscription) *models.PaymentRecord {
	for i := len(sub.Payments) - 1; i >= 0; i-- {
		if sub.Payments[i].Status == models.PaymentPending {
			return &sub.Payments[i]
		}
	}
	return nil
}

func hasApprovedPayment(sub *models.Subscription) bool {
	for i := range sub.Payments {
		if sub.Payments[i].Status == models.PaymentApproved {
			return true
		}
	}
	return false
}

// effectiveDueDate is the authoritative "pay again after this" marker,
// falling back to the current period end when no due date was set.
func effectiveDueDate(sub *models.Subscription) *time.Time {
	if sub.NextPaymentDueDate != nil {
		return sub.NextPaymentDueDate
	}
	return sub.CurrentPeriodEnd
}

// fallbackStatus is where a tenant lands when a pending payment is declined
// or its grace window elapses without approval: RESTRICTED when the trial
// has passed and no payment was ever approved, EXPIRED otherwise.
func fallbackStatus(sub *models.Subscription, now time.Time) models.SubscriptionStatus {
	if now.After(sub.TrialEndDate) && !hasApprovedPayment(sub) {
		return models.SubscriptionRestricted
	}
	return models.SubscriptionExpired
}

// EvaluateStatus recomputes the lifecycle status from the snapshot and the
// clock, honouring whatever the last mutating operation durably set. It is
// idempotent and side-effect free; the reconciliation sweep persists the
// result for tenants whose stored status silently drifted.
func EvaluateStatus(sub *models.Subscription, now time.Time) models.SubscriptionStatus {
	switch sub.Status {
	case models.SubscriptionPending:
		if rec := pendingRecord(sub); rec != nil && !now.After(rec.SubmittedAt.Add(GracePeriod)) {
			return models.SubscriptionPending
		}
		// Grace ran out with no approval: same landing state as a decline.
		return fallbackStatus(sub, now)
	case models.SubscriptionTrial:
		if now.After(sub.TrialEndDate) {
			return models.SubscriptionExpired
		}
	case models.SubscriptionActive:
		if sub.CurrentPeriodEnd == nil || now.After(*sub.CurrentPeriodEnd) {
			return models.SubscriptionExpired
		}
	}
	return sub.Status
}

// HasAccess is the gate consulted by every protected route.
func HasAccess(sub *models.Subscription, role models.Role, now time.Time) bool {
	if role == models.AdminRole {
		return true
	}
	switch sub.Status {
	case models.SubscriptionTrial:
		return !now.After(sub.TrialEndDate)
	case models.SubscriptionActive:
		return sub.CurrentPeriodEnd != nil && !now.After(*sub.CurrentPeriodEnd)
	case models.SubscriptionPending:
		// Access is kept for the review grace window. A PENDING status
		// without a pending record should not happen, but deny rather
		// than assume.
		rec := pendingRecord(sub)
		return rec != nil && !now.After(rec.SubmittedAt.Add(GracePeriod))
	}
	return false
}

// CanSubmitPayment reports whether the tenant may submit a receipt now.
func CanSubmitPayment(sub *models.Subscription, role models.Role, now time.Time) bool {
	return checkSubmit(sub, role, now) == nil
}

func checkSubmit(sub *models.Subscription, role models.Role, now time.Time) *PaymentNotAllowedError {
	if role == models.AdminRole {
		return &PaymentNotAllowedError{Reason: ReasonAdminAccount}
	}
	if pendingRecord(sub) != nil {
		return &PaymentNotAllowedError{Reason: ReasonPendingExists}
	}
	switch sub.Status {
	case models.SubscriptionActive:
		if due := effectiveDueDate(sub); due != nil && now.Before(*due) {
			return &PaymentNotAllowedError{Reason: ReasonNotYetDue, DueAt: *due}
		}
	case models.SubscriptionTrial:
		// No prepaying during the trial.
		return &PaymentNotAllowedError{Reason: ReasonTrialActive}
	}
	return nil
}

// SubmitPayment appends a PENDING payment record covering the next period
// and places the subscription on an optimistic review hold. The paid-for
// period only advances once the record is approved.
func SubmitPayment(sub *models.Subscription, role models.Role, now time.Time, amount int) (*models.PaymentRecord, error) {
	if refusal := checkSubmit(sub, role, now); refusal != nil {
		return nil, refusal
	}

	var periodStart time.Time
	switch sub.Status {
	case models.SubscriptionExpired, models.SubscriptionRestricted:
		// Reactivation starts a fresh clock, no backdating.
		periodStart = now
	default:
		// Renewal chains off the existing period so an early approval
		// never shrinks it.
		if sub.CurrentPeriodEnd != nil {
			periodStart = *sub.CurrentPeriodEnd
		} else {
			periodStart = now
		}
	}

	rec := models.PaymentRecord{
		Amount:      amount,
		Currency:    Currency,
		Status:      models.PaymentPending,
		SubmittedAt: now,
		PeriodStart: periodStart,
		PeriodEnd:   periodStart.Add(PeriodLength),
	}
	sub.Payments = append(sub.Payments, rec)
	sub.Status = models.SubscriptionPending
	return &sub.Payments[len(sub.Payments)-1], nil
}

// ResolvePayment applies the admin verdict to a pending record. A record
// resolves exactly once; a second call fails with ErrAlreadyResolved and
// mutates nothing.
func ResolvePayment(sub *models.Subscription, rec *models.PaymentRecord, decision Decision, now time.Time, reason string) error {
	if rec.Status != models.PaymentPending {
		return ErrAlreadyResolved
	}

	if decision == DecisionApproved {
		approvedAt := now
		rec.Status = models.PaymentApproved
		rec.ApprovalDate = &approvedAt
		syncHistory(sub, rec)

		start := rec.PeriodStart
		end := rec.PeriodEnd
		due := rec.PeriodEnd
		sub.Status = models.SubscriptionActive
		sub.LastPaymentDate = &approvedAt
		sub.CurrentPeriodStart = &start
		sub.CurrentPeriodEnd = &end
		sub.NextPaymentDueDate = &due
		return nil
	}

	rec.Status = models.PaymentDeclined
	rec.DeclineReason = reason
	syncHistory(sub, rec)
	sub.Status = fallbackStatus(sub, now)
	return nil
}

// syncHistory mirrors a resolution onto the copy held in the in-memory
// history, which may have been loaded separately from the record itself.
func syncHistory(sub *models.Subscription, rec *models.PaymentRecord) {
	for i := range sub.Payments {
		if &sub.Payments[i] == rec {
			return
		}
		if (rec.ID != "" && sub.Payments[i].ID == rec.ID) ||
			(rec.ID == "" && sub.Payments[i].Status == models.PaymentPending && sub.Payments[i].SubmittedAt.Equal(rec.SubmittedAt)) {
			sub.Payments[i] = *rec
			return
		}
	}
}
