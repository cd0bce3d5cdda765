package models

import (
	"time"
)

type Role string

const (
	AdminRole  Role = "ADMIN"
	TailorRole Role = "TAILOR"
)

// Settings holds the per-tenant notification and UI preferences.
type Settings struct {
	DarkMode           bool `json:"darkMode" gorm:"default:false"`
	EmailNotifications bool `json:"emailNotifications" gorm:"default:true"`
	CalendarReminders  bool `json:"calendarReminders" gorm:"default:true"`
	PaymentReminders   bool `json:"paymentReminders" gorm:"default:true"`
}

// User is a tenant account: a tailoring business, or an admin reviewing
// payments. The subscription lives on the user rather than as a separate
// resource; it is created with the account and deleted with it.
type User struct {
	ID                  string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email               string       `json:"email" gorm:"uniqueIndex;not null" binding:"required,email"`
	Password            string       `json:"-"`
	FirstName           string       `json:"firstName"`
	LastName            string       `json:"lastName"`
	BusinessName        string       `json:"businessName"`
	Phone               string       `json:"phone"`
	Address             string       `json:"address"`
	Role                Role         `json:"role" gorm:"type:varchar(10);default:'TAILOR'"`
	IsVerified          bool         `json:"isVerified" gorm:"default:false"`
	VerificationToken   string       `json:"-"`
	ResetPasswordToken  string       `json:"-"`
	ResetPasswordExpire *time.Time   `json:"-"`
	Subscription        Subscription `json:"subscription" gorm:"embedded;embeddedPrefix:subscription_"`
	Settings            Settings     `json:"settings" gorm:"embedded;embeddedPrefix:settings_"`
	CreatedAt           time.Time    `json:"createdAt"`
	UpdatedAt           time.Time    `json:"updatedAt"`
}

// UserRegister is the request body for account creation.
type UserRegister struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	BusinessName string `json:"businessName"`
	Phone        string `json:"phone"`
}

// UserLogin is the request body for login.
type UserLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
