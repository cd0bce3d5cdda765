package models

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionTrial      SubscriptionStatus = "TRIAL"
	SubscriptionActive     SubscriptionStatus = "ACTIVE"
	SubscriptionPending    SubscriptionStatus = "PENDING"
	SubscriptionExpired    SubscriptionStatus = "EXPIRED"
	SubscriptionRestricted SubscriptionStatus = "RESTRICTED"
)

// Subscription is the billing state embedded in each tenant account.
// Status is the last durably persisted lifecycle state; reads that must not
// trust it recompute through subscription.EvaluateStatus.
type Subscription struct {
	Status             SubscriptionStatus `json:"status" gorm:"type:varchar(20);default:'TRIAL'"`
	TrialStartDate     time.Time          `json:"trialStartDate"`
	TrialEndDate       time.Time          `json:"trialEndDate"`
	CurrentPeriodStart *time.Time         `json:"currentPeriodStart"`
	CurrentPeriodEnd   *time.Time         `json:"currentPeriodEnd"`
	LastPaymentDate    *time.Time         `json:"lastPaymentDate"`
	NextPaymentDueDate *time.Time         `json:"nextPaymentDueDate"`

	// Payment history lives in its own table. Callers load it before
	// handing the subscription to the engine.
	Payments []PaymentRecord `json:"payments,omitempty" gorm:"-"`
}
