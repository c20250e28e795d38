package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/httpresp"
	"github.com/smartserve-app/smartserve-api/internal/middleware"
	"github.com/smartserve-app/smartserve-api/internal/models"
	ucReview "github.com/smartserve-app/smartserve-api/internal/usecase/review"
)

type ReviewHandler struct {
	db       *gorm.DB
	submitUC *ucReview.SubmitReview
}

func NewReviewHandler(db *gorm.DB, submitUC *ucReview.SubmitReview) *ReviewHandler {
	return &ReviewHandler{
		db:       db,
		submitUC: submitUC,
	}
}

type SubmitReviewRequest struct {
	Rating  *int   `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// Submit fills in the pending review stub created when the provider marked
// the request completed.
func (h *ReviewHandler) Submit(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	rev, err := h.submitUC.Execute(c.Request.Context(), clientID, id, *req.Rating, req.Comment)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, rev)
}

// ListMine returns the caller's reviews: for clients, the reviews they wrote
// (pending stubs included); for providers, the reviews written about them.
func (h *ReviewHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	column := "client_id"
	if role == middleware.RoleProvider {
		column = "provider_id"
	}

	var reviews []models.Review
	if err := h.db.
		Where(column+" = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Could not load reviews.")
		return
	}

	httpresp.List(c, reviews)
}

// ListForProvider is the public review feed of a provider; only submitted
// reviews are shown.
func (h *ReviewHandler) ListForProvider(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var reviews []models.Review
	if err := h.db.
		Where("provider_id = ? AND completed = ?", id, true).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Could not load reviews.")
		return
	}

	httpresp.List(c, reviews)
}
