package review

import (
	"context"

	"github.com/smartserve-app/smartserve-api/internal/models"
)

type Repository interface {
	GetReviewByID(
		ctx context.Context,
		id uint,
	) (*models.Review, error)

	GetProviderByID(
		ctx context.Context,
		id uint,
	) (*models.Provider, error)

	// SubmitReview writes the completed review and folds its rating into the
	// provider aggregate in one transaction. The review update is conditional
	// on it still being pending, and the provider row is read under a row
	// lock so concurrent submits never lose a rating.
	SubmitReview(
		ctx context.Context,
		rev *models.Review,
	) error

	ListByProvider(
		ctx context.Context,
		providerID uint,
	) ([]models.Review, error)

	ListByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Review, error)
}
