package models

import (
	"math"
	"time"
)

const (
	TierBasic        = "basic"
	TierProfessional = "professional"
	TierElite        = "elite"
)

type MembershipTier struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ProviderID uint   `gorm:"index:idx_provider_tier,unique" json:"provider_id"`
	Tier       string `gorm:"size:20;index:idx_provider_tier,unique" json:"tier"`

	Services     string `gorm:"size:255" json:"services"`
	Frequency    string `gorm:"size:50" json:"frequency"`
	ResponseTime string `gorm:"size:50" json:"response_time"`
	Benefits     string `gorm:"type:text" json:"benefits"`

	MonthlyPrice float64 `json:"monthly_price"`
	YearlyPrice  float64 `json:"yearly_price"`
	SavePercent  int     `json:"save_percent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SavePercentage derives how much a yearly subscription saves against
// twelve monthly payments, clamped at zero for yearly prices that cost more.
func SavePercentage(monthly, yearly float64) int {
	if monthly <= 0 {
		return 0
	}
	full := monthly * 12
	pct := math.Round(100 * (full - yearly) / full)
	if pct < 0 {
		return 0
	}
	return int(pct)
}
