package request

import (
	"context"
	"time"

	"github.com/smartserve-app/smartserve-api/internal/audit"
	domain "github.com/smartserve-app/smartserve-api/internal/domain/request"
	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RecordPaymentInput struct {
	ClientID  uint
	RequestID uint

	Method     string
	CardNumber string
	UpiID      string
}

// ======================================================
// USE CASE
// ======================================================

type RecordPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRecordPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RecordPayment {
	return &RecordPayment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RecordPayment) Execute(
	ctx context.Context,
	in RecordPaymentInput,
) (*models.Request, error) {

	req, err := uc.repo.GetRequestByID(ctx, in.RequestID)
	if err != nil {
		return nil, httperr.ErrBusiness("request_not_found")
	}

	if req.ClientID != in.ClientID {
		return nil, httperr.ErrBusiness("request_not_owned")
	}

	now := time.Now()
	if err := domain.MarkPaid(req, in.Method, in.CardNumber, in.UpiID, now); err != nil {
		return nil, err
	}

	if err := uc.repo.RecordPayment(ctx, req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &in.ClientID,
		ActorRole: string(domain.RoleClient),
		Action:    "payment_recorded",
		Entity:    "request",
		EntityID:  &req.ID,
		Metadata: map[string]any{
			"method": in.Method,
		},
	})

	return req, nil
}
