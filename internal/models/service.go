package models

import "time"

// Service is one bookable prestation from the catalog. The ID doubles as
// the translation key for the display name, so it is a caller-chosen slug
// rather than a generated key.
type Service struct {
	ID string `gorm:"primaryKey;size:100" json:"id"`

	Name     string `gorm:"size:100" json:"name"`
	Price    int    `gorm:"not null" json:"price"`
	Duration string `gorm:"size:20" json:"duration"`
	Icon     string `gorm:"size:100" json:"icon"`
	Category string `gorm:"size:50" json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
