package request

import (
	"context"

	domain "github.com/smartserve-app/smartserve-api/internal/domain/request"
	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

type ListRequests struct {
	repo domain.Repository
}

func NewListRequests(repo domain.Repository) *ListRequests {
	return &ListRequests{repo: repo}
}

func (uc *ListRequests) ForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Request, error) {
	return uc.repo.ListByClient(ctx, clientID)
}

func (uc *ListRequests) ForProvider(
	ctx context.Context,
	providerID uint,
) ([]models.Request, error) {
	return uc.repo.ListByProvider(ctx, providerID)
}

// Payments lists the client's requests by paid flag ("unpaid" pending
// payments, "paid" completed ones).
func (uc *ListRequests) Payments(
	ctx context.Context,
	clientID uint,
	paid string,
) ([]models.Request, error) {

	if paid != domain.PaidUnpaid && paid != domain.PaidPaid {
		return nil, httperr.ErrBusiness("invalid_paid_filter")
	}
	return uc.repo.ListByClientAndPaid(ctx, clientID, paid)
}
