package models

import (
	"time"
)

type EventType string

const (
	EventCollection EventType = "COLLECTION"
	EventFitting    EventType = "FITTING"
	EventDeadline   EventType = "DEADLINE"
	EventOther      EventType = "OTHER"
)

type EventStatus string

const (
	EventPending   EventStatus = "PENDING"
	EventCompleted EventStatus = "COMPLETED"
	EventCancelled EventStatus = "CANCELLED"
)

// CalendarEvent is a deadline, fitting or collection date on a tailor's
// calendar. ReminderSent keeps the daily reminder sweep from mailing twice.
type CalendarEvent struct {
	ID           string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID       string      `json:"userId" gorm:"type:uuid;not null;index"`
	ClientID     *string     `json:"clientId" gorm:"type:uuid"`
	ClientName   string      `json:"clientName"`
	Title        string      `json:"title" binding:"required"`
	Description  string      `json:"description"`
	Type         EventType   `json:"type" gorm:"type:varchar(20);default:'OTHER'"`
	StartDate    time.Time   `json:"startDate"`
	EndDate      *time.Time  `json:"endDate"`
	AllDay       bool        `json:"allDay" gorm:"default:true"`
	Status       EventStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	ReminderSent bool        `json:"reminderSent" gorm:"default:false"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
