// Package model defines database models
package model

import "time"

type User struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	Email        string  `gorm:"unique;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	DisplayName  *string `json:"display_name"`
	TwitchURL    *string `json:"twitch_url"`
	LogoURL      *string `json:"logo_url"`

	CreatedAt time.Time `json:"created_at"`

	Plannings []Planning `gorm:"foreignKey:UserID" json:"-"`
}
