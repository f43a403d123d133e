package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a client testimonial. Image may be empty, in which case the
// frontend falls back to initials. UserID is set for self-service reviews
// (one per user) and empty for admin-created ones.
type Review struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Text    string `gorm:"size:1000" json:"text"`
	Rating  int    `gorm:"not null" json:"rating"`
	Service string `gorm:"size:100" json:"service"`
	Image   string `gorm:"size:255" json:"image"`

	UserID string `gorm:"size:36;index" json:"user_id"`
	// No column default: a zero value with a default tag would make an
	// explicit active=false impossible to insert.
	Active bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
