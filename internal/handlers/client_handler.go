package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/httpresp"
	"github.com/smartserve-app/smartserve-api/internal/middleware"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type UpdateClientRequest struct {
	FullName *string `json:"full_name"`
	Location *string `json:"location"`
}

func (h *ClientHandler) UpdateMe(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, clientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	if req.FullName != nil {
		client.FullName = *req.FullName
	}
	if req.Location != nil {
		client.Location = *req.Location
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Could not update profile.")
		return
	}

	httpresp.OK(c, clientJSON(&client))
}
