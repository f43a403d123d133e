package models

import "time"

// PasswordReset is a single-use token handed out by the forgot-password
// flow. UsedAt stays nil until the token is redeemed.
type PasswordReset struct {
	Token string `gorm:"primaryKey;size:36" json:"token"`

	UserID    string     `gorm:"size:36;index;not null" json:"user_id"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`

	CreatedAt time.Time `json:"created_at"`
}
