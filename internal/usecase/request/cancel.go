package request

import (
	"context"

	"github.com/smartserve-app/smartserve-api/internal/audit"
	domain "github.com/smartserve-app/smartserve-api/internal/domain/request"
	"github.com/smartserve-app/smartserve-api/internal/httperr"
)

type CancelRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelRequest {
	return &CancelRequest{
		repo:  repo,
		audit: audit,
	}
}

// Execute hard-deletes a still-pending request. Once a provider has moved it
// along, cancellation is no longer legal.
func (uc *CancelRequest) Execute(
	ctx context.Context,
	clientID uint,
	requestID uint,
) error {

	req, err := uc.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return httperr.ErrBusiness("request_not_found")
	}

	if req.ClientID != clientID {
		return httperr.ErrBusiness("request_not_owned")
	}

	if err := domain.CanCancel(req); err != nil {
		return err
	}

	if err := uc.repo.DeleteRequest(ctx, requestID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &clientID,
		ActorRole: string(domain.RoleClient),
		Action:    "request_cancelled",
		Entity:    "request",
		EntityID:  &requestID,
	})

	return nil
}
