package models

import (
	"time"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentApproved PaymentStatus = "APPROVED"
	PaymentDeclined PaymentStatus = "DECLINED"
)

// PaymentRecord is one submitted bank-transfer receipt. Records are
// append-only: a record is created PENDING and resolves exactly once to
// APPROVED or DECLINED, never reopened. A partial unique index created in
// db.InitDB keeps at most one PENDING record per tenant.
type PaymentRecord struct {
	ID                   string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID               string        `json:"userId" gorm:"type:uuid;not null;index"`
	Amount               int           `json:"amount"`
	Currency             string        `json:"currency" gorm:"type:varchar(3);default:'NGN'"`
	Status               PaymentStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	SubmittedAt          time.Time     `json:"submittedAt"`
	PeriodStart          time.Time     `json:"periodStart"`
	PeriodEnd            time.Time     `json:"periodEnd"`
	ApprovalDate         *time.Time    `json:"approvalDate"`
	DeclineReason        string        `json:"declineReason,omitempty"`
	ReceiptURL           string        `json:"receiptUrl"`
	ReceiptPublicID      string        `json:"-"`
	TransactionReference string        `json:"transactionReference,omitempty"`
	ProcessedBy          string        `json:"processedBy,omitempty"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}
