package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment stores the booking exactly as the wizard confirmed it:
// service and professional fields are denormalized so later catalog edits
// never rewrite history. Date is a plain ISO calendar date and Time one of
// the fixed half-hour slots, both without timezone.
type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID    string `gorm:"size:36;index" json:"user_id"`
	UserName  string `gorm:"size:100" json:"user_name"`
	UserEmail string `gorm:"size:100" json:"user_email"`

	ServiceID       string `gorm:"size:100" json:"service_id"`
	ServiceName     string `gorm:"size:100" json:"service_name"`
	ServicePrice    int    `json:"service_price"`
	ServiceDuration string `gorm:"size:20" json:"service_duration"`

	ProfessionalID   string `gorm:"size:100;index" json:"professional_id"`
	ProfessionalName string `gorm:"size:100" json:"professional_name"`

	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	Status    string `gorm:"size:20;default:'confirmed'" json:"status"`
	Currency  string `gorm:"size:10" json:"currency"`
	Reference string `gorm:"size:20" json:"reference"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
