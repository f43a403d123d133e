package models

import "time"

// TeamMember is a professional clients can book with. Appointments keep a
// denormalized copy of the name; deleting a member does not cascade.
type TeamMember struct {
	ID string `gorm:"primaryKey;size:100" json:"id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	RoleID string `gorm:"size:50" json:"role_id"`
	Bio    string `gorm:"size:500" json:"bio"`
	Image  string `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
