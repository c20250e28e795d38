package review

import (
	"context"

	"github.com/smartserve-app/smartserve-api/internal/audit"
	domain "github.com/smartserve-app/smartserve-api/internal/domain/review"
	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

type SubmitReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSubmitReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SubmitReview {
	return &SubmitReview{
		repo:  repo,
		audit: audit,
	}
}

// Execute fills in a pending review. The repository folds the rating into
// the provider's running aggregate under a row lock, in the same transaction
// as the review write.
func (uc *SubmitReview) Execute(
	ctx context.Context,
	clientID uint,
	reviewID uint,
	rating int,
	comment string,
) (*models.Review, error) {

	rev, err := uc.repo.GetReviewByID(ctx, reviewID)
	if err != nil {
		return nil, httperr.ErrBusiness("review_not_found")
	}

	if rev.ClientID != clientID {
		return nil, httperr.ErrBusiness("review_not_owned")
	}

	if _, err := uc.repo.GetProviderByID(ctx, rev.ProviderID); err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	if err := domain.Submit(rev, rating, comment); err != nil {
		return nil, err
	}

	if err := uc.repo.SubmitReview(ctx, rev); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &clientID,
		ActorRole: "client",
		Action:    "review_submitted",
		Entity:    "review",
		EntityID:  &rev.ID,
		Metadata: map[string]any{
			"rating": rating,
		},
	})

	return rev, nil
}
