package models

import "time"

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Location     string `gorm:"size:100" json:"location"`
	ProfilePhoto string `gorm:"size:255" json:"profile_photo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
