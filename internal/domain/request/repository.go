package request

import (
	"context"

	"github.com/smartserve-app/smartserve-api/internal/models"
)

type Repository interface {
	// -------- Principals --------
	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetProviderByID(
		ctx context.Context,
		id uint,
	) (*models.Provider, error)

	// -------- Request (create / read) --------
	CreateRequest(
		ctx context.Context,
		req *models.Request,
	) error

	GetRequestByID(
		ctx context.Context,
		id uint,
	) (*models.Request, error)

	// -------- Request (state change) --------

	// UpdateTransition persists the already-applied status change, but only
	// if the stored row is still in `from`. A concurrent writer winning the
	// race surfaces as an invalid_state business error, never a lost update.
	UpdateTransition(
		ctx context.Context,
		req *models.Request,
		from StatusPair,
	) error

	// CompleteWithReview flips the request to completed and creates the
	// pending review stub in the same transaction.
	CompleteWithReview(
		ctx context.Context,
		req *models.Request,
		from StatusPair,
		review *models.Review,
	) error

	// DeleteRequest hard-deletes, conditional on the request still being
	// pending.
	DeleteRequest(
		ctx context.Context,
		requestID uint,
	) error

	// RecordPayment persists the payment fields, conditional on the stored
	// paid flag still being "unpaid".
	RecordPayment(
		ctx context.Context,
		req *models.Request,
	) error

	// -------- Listings --------
	ListByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Request, error)

	ListByProvider(
		ctx context.Context,
		providerID uint,
	) ([]models.Request, error)

	ListByClientAndPaid(
		ctx context.Context,
		clientID uint,
		paid string,
	) ([]models.Request, error)
}
