package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/smartserve-app/smartserve-api/internal/domain/review"
	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) GetReviewByID(
	ctx context.Context,
	id uint,
) (*models.Review, error) {

	var rev models.Review
	if err := r.db.WithContext(ctx).First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewGormRepository) GetProviderByID(
	ctx context.Context,
	id uint,
) (*models.Provider, error) {

	var provider models.Provider
	if err := r.db.WithContext(ctx).First(&provider, id).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

// SubmitReview writes the review and the folded provider aggregate together.
// The review update is conditional on it still being pending, so a double
// submit loses cleanly. The provider row is re-read under a row lock before
// folding; a concurrent submit for the same provider waits on the lock
// instead of overwriting the aggregate with stale values.
func (r *ReviewGormRepository) SubmitReview(
	ctx context.Context,
	rev *models.Review,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.Model(&models.Review{}).
			Where("id = ? AND completed = ?", rev.ID, false).
			Updates(map[string]any{
				"rating":    rev.Rating,
				"comment":   rev.Comment,
				"completed": true,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("review_already_submitted")
		}

		var provider models.Provider
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&provider, rev.ProviderID).Error; err != nil {
			return err
		}

		domain.Fold(&provider, rev.Rating)

		return tx.Model(&models.Provider{}).
			Where("id = ?", provider.ID).
			Updates(map[string]any{
				"rating":       provider.Rating,
				"review_count": provider.ReviewCount,
				"rating_total": provider.RatingTotal,
			}).Error
	})
}

func (r *ReviewGormRepository) ListByProvider(
	ctx context.Context,
	providerID uint,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) ListByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
