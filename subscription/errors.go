package subscription

import (
	"errors"
	"time"
)

// RefusalReason tells the caller why a payment submission was refused, so
// the HTTP layer can surface a specific message.
type RefusalReason string

const (
	ReasonAdminAccount  RefusalReason = "admin_account"
	ReasonPendingExists RefusalReason = "pending_exists"
	ReasonNotYetDue     RefusalReason = "not_yet_due"
	ReasonTrialActive   RefusalReason = "trial_active"
)

// PaymentNotAllowedError is returned by SubmitPayment when the submission
// preconditions do not hold.
type PaymentNotAllowedError struct {
	Reason RefusalReason

	// DueAt is set when Reason is ReasonNotYetDue.
	DueAt time.Time
}

func (e *PaymentNotAllowedError) Error() string {
	switch e.Reason {
	case ReasonAdminAccount:
		return "payment not allowed: admin accounts are not billed"
	case ReasonPendingExists:
		return "payment not allowed: a pending payment is already awaiting review"
	case ReasonNotYetDue:
		return "payment not allowed: the current period has not ended"
	case ReasonTrialActive:
		return "payment not allowed: the trial period is still running"
	}
	return "payment not allowed"
}

// ErrAlreadyResolved is returned when resolving a payment record that was
// already approved or declined. The record is never overwritten.
var ErrAlreadyResolved = errors.New("payment record already resolved")
