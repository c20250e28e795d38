package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/middleware"
	"github.com/smartserve-app/smartserve-api/internal/models"
	"github.com/smartserve-app/smartserve-api/internal/storage"
)

const maxPhotoUploadBytes = 8 << 20

type PhotoHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewPhotoHandler(db *gorm.DB, uploader *storage.Uploader) *PhotoHandler {
	return &PhotoHandler{
		db:       db,
		uploader: uploader,
	}
}

// Upload replaces the caller's profile photo. The image is re-encoded as
// webp and stored in object storage; the stored URL becomes the profile
// photo reference.
func (h *PhotoHandler) Upload(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A photo file is required.")
		return
	}
	if file.Size > maxPhotoUploadBytes {
		httperr.BadRequest(c, "photo_too_large", "Photo exceeds the size limit.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Could not read the upload.")
		return
	}
	defer src.Close()

	key := fmt.Sprintf("profiles/%s/%d/%s", role, userID, uuid.NewString())

	url, err := h.uploader.UploadProfilePhoto(c.Request.Context(), key, src)
	if err != nil {
		httperr.Internal(c, "failed_to_store_photo", "Could not store the photo.")
		return
	}

	var updateErr error
	switch role {
	case middleware.RoleClient:
		updateErr = h.db.Model(&models.Client{}).
			Where("id = ?", userID).
			Update("profile_photo", url).Error
	case middleware.RoleProvider:
		updateErr = h.db.Model(&models.Provider{}).
			Where("id = ?", userID).
			Update("profile_photo", url).Error
	}
	if updateErr != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not save the photo reference.")
		return
	}

	c.JSON(200, gin.H{"profile_photo": url})
}
