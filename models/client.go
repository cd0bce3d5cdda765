package models

import (
	"time"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Measurements is the body measurement sheet kept per client, in
// centimetres. Male and female sets share the struct; unused fields stay
// zero.
type Measurements struct {
	Chest        float64 `json:"chest"`
	Waist        float64 `json:"waist"`
	Hips         float64 `json:"hips"`
	Shoulder     float64 `json:"shoulder"`
	SleeveLength float64 `json:"sleeveLength"`
	BackLength   float64 `json:"backLength"`
	Neck         float64 `json:"neck"`
	Bicep        float64 `json:"bicep"`
	Wrist        float64 `json:"wrist"`
	Inseam       float64 `json:"inseam"`
	Outseam      float64 `json:"outseam"`
	Bust         float64 `json:"bust"`
	UnderBust    float64 `json:"underBust"`
	DressLength  float64 `json:"dressLength"`
	Thigh        float64 `json:"thigh"`
	Knee         float64 `json:"knee"`
	Ankle        float64 `json:"ankle"`
}

// Client is a customer of one tailoring business.
type Client struct {
	ID                  string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID              string       `json:"userId" gorm:"type:uuid;not null;index"`
	FirstName           string       `json:"firstName" binding:"required"`
	LastName            string       `json:"lastName" binding:"required"`
	Gender              Gender       `json:"gender" gorm:"type:varchar(10)"`
	Phone               string       `json:"phone"`
	Email               string       `json:"email"`
	Address             string       `json:"address"`
	Measurements        Measurements `json:"measurements" gorm:"embedded;embeddedPrefix:measurement_"`
	MeasurementNotes    string       `json:"measurementNotes"`
	BodyType            string       `json:"bodyType" gorm:"type:varchar(20);default:'average'"`
	FitPreference       string       `json:"fitPreference" gorm:"type:varchar(20);default:'regular'"`
	StyleNotes          string       `json:"styleNotes"`
	LastMeasurementDate *time.Time   `json:"lastMeasurementDate"`
	CreatedAt           time.Time    `json:"createdAt"`
	UpdatedAt           time.Time    `json:"updatedAt"`
}
