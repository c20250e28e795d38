package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/middleware"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	switch role {
	case middleware.RoleClient:
		var client models.Client
		if err := h.db.First(&client, userID).Error; err != nil {
			writeBusinessError(c, httperr.ErrBusiness("client_not_found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": role, "user": clientJSON(&client)})

	case middleware.RoleProvider:
		var provider models.Provider
		if err := h.db.Preload("Tiers").First(&provider, userID).Error; err != nil {
			writeBusinessError(c, httperr.ErrBusiness("provider_not_found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": role, "user": providerJSON(&provider), "tiers": provider.Tiers})

	default:
		httperr.Unauthorized(c, "unknown_role", "Unrecognized role claim.")
	}
}
