package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/httpresp"
	"github.com/smartserve-app/smartserve-api/internal/middleware"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

type ProviderHandler struct {
	db *gorm.DB
}

func NewProviderHandler(db *gorm.DB) *ProviderHandler {
	return &ProviderHandler{db: db}
}

// ======================================================
// PUBLIC BROWSING
// ======================================================

func (h *ProviderHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Provider{})

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if sub := c.Query("sub_category"); sub != "" {
		q = q.Where("sub_category = ?", sub)
	}
	if c.Query("available") == "true" {
		q = q.Where("available = ?", true)
	}

	var providers []models.Provider
	if err := q.Order("rating DESC").Find(&providers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_providers", "Could not load providers.")
		return
	}

	httpresp.List(c, providers)
}

func (h *ProviderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var provider models.Provider
	if err := h.db.Preload("Tiers").First(&provider, id).Error; err != nil {
		httperr.NotFound(c, "provider_not_found", "Provider not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provider": providerJSON(&provider),
		"tiers":    provider.Tiers,
	})
}

// ======================================================
// PROFILE (provider)
// ======================================================

type UpdateProviderRequest struct {
	FullName    *string  `json:"full_name"`
	Category    *string  `json:"category"`
	SubCategory *string  `json:"sub_category"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Available   *bool    `json:"available"`
	Location    *string  `json:"location"`
}

func (h *ProviderHandler) UpdateMe(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	var provider models.Provider
	if err := h.db.First(&provider, providerID).Error; err != nil {
		httperr.NotFound(c, "provider_not_found", "Provider not found.")
		return
	}

	if req.FullName != nil {
		provider.FullName = *req.FullName
	}
	if req.Category != nil {
		provider.Category = *req.Category
	}
	if req.SubCategory != nil {
		provider.SubCategory = *req.SubCategory
	}
	if req.Description != nil {
		provider.Description = *req.Description
	}
	if req.Price != nil {
		provider.Price = *req.Price
	}
	if req.Available != nil {
		provider.Available = *req.Available
	}
	if req.Location != nil {
		provider.Location = *req.Location
	}

	if err := h.db.Save(&provider).Error; err != nil {
		httperr.Internal(c, "failed_to_update_provider", "Could not update profile.")
		return
	}

	httpresp.OK(c, providerJSON(&provider))
}

// ======================================================
// MEMBERSHIP TIERS
// ======================================================

type MembershipTierRequest struct {
	Tier         string   `json:"tier" binding:"required,oneof=basic professional elite"`
	Services     string   `json:"services"`
	Frequency    string   `json:"frequency"`
	ResponseTime string   `json:"response_time"`
	Benefits     []string `json:"benefits"`
	MonthlyPrice float64  `json:"monthly_price"`
	YearlyPrice  float64  `json:"yearly_price"`
}

type UpdateMembershipRequest struct {
	Tiers []MembershipTierRequest `json:"tiers" binding:"required,len=3,dive"`
}

// UpdateMembership replaces the provider's three published tiers. The save
// percentage is derived server-side, never taken from the payload.
func (h *ProviderHandler) UpdateMembership(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	seen := map[string]bool{}
	for _, tier := range req.Tiers {
		if seen[tier.Tier] {
			httperr.BadRequest(c, "duplicate_tier", "Each tier may appear once.")
			return
		}
		seen[tier.Tier] = true
	}

	tiers := make([]models.MembershipTier, 0, len(req.Tiers))
	for _, t := range req.Tiers {
		benefits, _ := json.Marshal(t.Benefits)

		tiers = append(tiers, models.MembershipTier{
			ProviderID:   providerID,
			Tier:         t.Tier,
			Services:     t.Services,
			Frequency:    t.Frequency,
			ResponseTime: t.ResponseTime,
			Benefits:     string(benefits),
			MonthlyPrice: t.MonthlyPrice,
			YearlyPrice:  t.YearlyPrice,
			SavePercent:  models.SavePercentage(t.MonthlyPrice, t.YearlyPrice),
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("provider_id = ?", providerID).
			Delete(&models.MembershipTier{}).Error; err != nil {
			return err
		}
		return tx.Create(&tiers).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_membership", "Could not update membership tiers.")
		return
	}

	httpresp.List(c, tiers)
}

func (h *ProviderHandler) GetMembership(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	var tiers []models.MembershipTier
	if err := h.db.
		Where("provider_id = ?", providerID).
		Order("monthly_price ASC").
		Find(&tiers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_membership", "Could not load membership tiers.")
		return
	}

	httpresp.List(c, tiers)
}
