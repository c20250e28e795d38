package models

import "time"

type ChatRoom struct {
	// Deterministic UUID derived from the (client, provider) pair, so room
	// creation is idempotent.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID   uint `gorm:"index" json:"client_id"`
	ProviderID uint `gorm:"index" json:"provider_id"`

	CreatedAt time.Time `json:"created_at"`
}

type ChatMessage struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	RoomID string `gorm:"size:36;index" json:"room_id"`

	SenderRole string `gorm:"size:10" json:"sender_role"`
	Text       string `gorm:"size:1000" json:"text"`

	CreatedAt time.Time `json:"created_at"`
}
