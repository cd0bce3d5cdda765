package models

import (
	"time"
)

type FeedbackStatus string

const (
	FeedbackPending   FeedbackStatus = "PENDING"
	FeedbackResponded FeedbackStatus = "RESPONDED"
)

// Feedback is an in-app message from a tenant to the platform team. The
// sender's name and email are denormalized at submission time so the
// thread stays readable even if the account is later renamed or deleted.
type Feedback struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID      string         `json:"userId" gorm:"type:uuid;index"`
	UserName    string         `json:"userName"`
	UserEmail   string         `json:"userEmail"`
	Subject     string         `json:"subject"`
	Message     string         `json:"message"`
	Status      FeedbackStatus `json:"status" gorm:"type:varchar(10);default:'PENDING'"`
	Response    string         `json:"response"`
	RespondedAt *time.Time     `json:"respondedAt"`
	RespondedBy string         `json:"respondedBy"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (Feedback) TableName() string {
	return "feedback"
}

// FeedbackCreate is the request body for submitting feedback.
type FeedbackCreate struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// FeedbackRespond is the request body for an admin response.
type FeedbackRespond struct {
	Message string `json:"message" binding:"required"`
}
