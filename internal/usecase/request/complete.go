package request

import (
	"context"

	"github.com/smartserve-app/smartserve-api/internal/audit"
	domain "github.com/smartserve-app/smartserve-api/internal/domain/request"
	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

type CompleteRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteRequest {
	return &CompleteRequest{
		repo:  repo,
		audit: audit,
	}
}

// Execute flips the request to completed and seeds the pending review in the
// same transaction, so a failed write never leaves an orphaned stub.
func (uc *CompleteRequest) Execute(
	ctx context.Context,
	providerID uint,
	requestID uint,
) (*models.Request, error) {

	req, err := uc.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, httperr.ErrBusiness("request_not_found")
	}

	if req.ProviderID != providerID {
		return nil, httperr.ErrBusiness("request_not_owned")
	}

	from := domain.StatusPair{User: req.UserStatus, Service: req.ServiceStatus}
	if err := domain.Complete(req); err != nil {
		return nil, err
	}

	review := domain.PendingReview(req)

	if err := uc.repo.CompleteWithReview(ctx, req, from, review); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &providerID,
		ActorRole: string(domain.RoleProvider),
		Action:    "request_completed",
		Entity:    "request",
		EntityID:  &req.ID,
	})

	return req, nil
}
