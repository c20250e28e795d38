package request

import (
	"context"

	"github.com/smartserve-app/smartserve-api/internal/audit"
	domain "github.com/smartserve-app/smartserve-api/internal/domain/request"
	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

// ======================================================
// USE CASE — client books a provider
// ======================================================

type CreateRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateRequest {
	return &CreateRequest{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateRequest) Execute(
	ctx context.Context,
	clientID uint,
	providerID uint,
) (*models.Request, error) {

	provider, err := uc.repo.GetProviderByID(ctx, providerID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	client, err := uc.repo.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	initial := domain.InitialStatus()

	// Terms are snapshotted at booking time; later profile edits do not
	// touch existing requests.
	req := &models.Request{
		ClientID:   client.ID,
		ProviderID: provider.ID,

		ServiceName:    provider.SubCategory,
		ProviderName:   provider.FullName,
		Description:    provider.Description,
		Price:          provider.Price,
		ClientName:     client.FullName,
		ClientLocation: client.Location,
		ClientPhoto:    client.ProfilePhoto,

		UserStatus:    initial.User,
		ServiceStatus: initial.Service,
		Paid:          domain.PaidNone,
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &clientID,
		ActorRole: string(domain.RoleClient),
		Action:    "request_created",
		Entity:    "request",
		EntityID:  &req.ID,
	})

	return req, nil
}
