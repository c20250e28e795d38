package request

import (
	"context"

	"github.com/smartserve-app/smartserve-api/internal/audit"
	domain "github.com/smartserve-app/smartserve-api/internal/domain/request"
	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

type DeclineRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeclineRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeclineRequest {
	return &DeclineRequest{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeclineRequest) Execute(
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
	if err := domain.Decline(req); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateTransition(ctx, req, from); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &providerID,
		ActorRole: string(domain.RoleProvider),
		Action:    "request_declined",
		Entity:    "request",
		EntityID:  &req.ID,
	})

	return req, nil
}
