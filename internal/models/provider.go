package models

import "time"

type Provider struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Category    string  `gorm:"size:50" json:"category"`
	SubCategory string  `gorm:"size:50" json:"sub_category"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	Available   bool    `gorm:"default:true" json:"available"`

	Location     string `gorm:"size:100" json:"location"`
	ProfilePhoto string `gorm:"size:255" json:"profile_photo"`

	// Running review aggregate. Rating is the rounded mean of all
	// submitted ratings; RatingTotal is their sum.
	Rating      int `gorm:"default:0" json:"rating"`
	ReviewCount int `gorm:"default:0" json:"review_count"`
	RatingTotal int `gorm:"default:0" json:"-"`

	Tiers []MembershipTier `gorm:"constraint:OnDelete:CASCADE;" json:"tiers"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
