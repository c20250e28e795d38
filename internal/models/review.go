package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID   uint `gorm:"index" json:"client_id"`
	ProviderID uint `gorm:"index" json:"provider_id"`
	RequestID  uint `gorm:"index" json:"request_id"`

	ServiceName  string `gorm:"size:100" json:"service_name"`
	ProviderName string `gorm:"size:100" json:"provider_name"`
	ClientName   string `gorm:"size:100" json:"client_name"`
	ClientPhoto  string `gorm:"size:255" json:"client_photo"`

	Rating    int    `gorm:"default:0" json:"rating"`
	Comment   string `gorm:"size:1000" json:"comment"`
	Completed bool   `gorm:"default:false" json:"completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
