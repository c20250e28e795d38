package models

import "time"

type Request struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ProviderID uint     `gorm:"index" json:"provider_id"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Snapshot of the provider and client at booking time. The request keeps
	// these terms even if the profiles change later (rebooking does not
	// refresh them).
	ServiceName    string  `gorm:"size:100" json:"service_name"`
	ProviderName   string  `gorm:"size:100" json:"provider_name"`
	Description    string  `gorm:"size:255" json:"description"`
	Price          float64 `json:"price"`
	ClientName     string  `gorm:"size:100" json:"client_name"`
	ClientLocation string  `gorm:"size:100" json:"client_location"`
	ClientPhoto    string  `gorm:"size:255" json:"client_photo"`

	// The two halves of the status pair are always written together by the
	// same transition.
	UserStatus    string `gorm:"size:20;default:'pending'" json:"user_status"`
	ServiceStatus string `gorm:"size:20;default:''" json:"service_status"`

	Paid          string `gorm:"size:10;default:''" json:"paid"`
	PaymentMethod string `gorm:"size:10" json:"payment_method,omitempty"`
	// Stored as entered; never serialized. Read paths expose CardLast4 only.
	CardNumber string `gorm:"size:20" json:"-"`
	UpiID      string `gorm:"size:100" json:"upi_id,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}

func (r *Request) CardLast4() string {
	if len(r.CardNumber) < 4 {
		return ""
	}
	return r.CardNumber[len(r.CardNumber)-4:]
}
