package request

import (
	"context"

	"github.com/smartserve-app/smartserve-api/internal/audit"
	domain "github.com/smartserve-app/smartserve-api/internal/domain/request"
	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

type RebookRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRebookRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RebookRequest {
	return &RebookRequest{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RebookRequest) Execute(
	ctx context.Context,
	clientID uint,
	requestID uint,
) (*models.Request, error) {

	req, err := uc.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, httperr.ErrBusiness("request_not_found")
	}

	if req.ClientID != clientID {
		return nil, httperr.ErrBusiness("request_not_owned")
	}

	from := domain.StatusPair{User: req.UserStatus, Service: req.ServiceStatus}
	if err := domain.Rebook(req); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateTransition(ctx, req, from); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &clientID,
		ActorRole: string(domain.RoleClient),
		Action:    "request_rebooked",
		Entity:    "request",
		EntityID:  &req.ID,
	})

	return req, nil
}
