package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/smartserve-app/smartserve-api/internal/domain/request"
	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

type RequestGormRepository struct {
	db *gorm.DB
}

func NewRequestGormRepository(db *gorm.DB) *RequestGormRepository {
	return &RequestGormRepository{db: db}
}

// --------------------------------------------------
// Principals
// --------------------------------------------------

func (r *RequestGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *RequestGormRepository) GetProviderByID(
	ctx context.Context,
	id uint,
) (*models.Provider, error) {

	var provider models.Provider
	if err := r.db.WithContext(ctx).First(&provider, id).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

// --------------------------------------------------
// Request
// --------------------------------------------------

func (r *RequestGormRepository) CreateRequest(
	ctx context.Context,
	req *models.Request,
) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RequestGormRepository) GetRequestByID(
	ctx context.Context,
	id uint,
) (*models.Request, error) {

	var req models.Request
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// --------------------------------------------------
// State changes (conditional writes)
// --------------------------------------------------

// The WHERE clause pins the row to the status pair the transition was
// validated against; losing the race leaves zero rows affected.
func (r *RequestGormRepository) UpdateTransition(
	ctx context.Context,
	req *models.Request,
	from domain.StatusPair,
) error {
	return r.updateTransition(r.db.WithContext(ctx), req, from)
}

func (r *RequestGormRepository) updateTransition(
	tx *gorm.DB,
	req *models.Request,
	from domain.StatusPair,
) error {

	res := tx.Model(&models.Request{}).
		Where(
			"id = ? AND user_status = ? AND service_status = ?",
			req.ID, from.User, from.Service,
		).
		Updates(map[string]any{
			"user_status":    req.UserStatus,
			"service_status": req.ServiceStatus,
			"paid":           req.Paid,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func (r *RequestGormRepository) CompleteWithReview(
	ctx context.Context,
	req *models.Request,
	from domain.StatusPair,
	review *models.Review,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.updateTransition(tx, req, from); err != nil {
			return err
		}
		return tx.Create(review).Error
	})
}

func (r *RequestGormRepository) DeleteRequest(
	ctx context.Context,
	requestID uint,
) error {

	res := r.db.WithContext(ctx).
		Where(
			"id = ? AND user_status = ? AND service_status = ?",
			requestID, domain.UserPending, domain.ServiceNone,
		).
		Delete(&models.Request{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func (r *RequestGormRepository) RecordPayment(
	ctx context.Context,
	req *models.Request,
) error {

	res := r.db.WithContext(ctx).Model(&models.Request{}).
		Where("id = ? AND paid = ?", req.ID, domain.PaidUnpaid).
		Updates(map[string]any{
			"paid":           req.Paid,
			"payment_method": req.PaymentMethod,
			"card_number":    req.CardNumber,
			"upi_id":         req.UpiID,
			"paid_at":        req.PaidAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("payment_already_recorded")
	}
	return nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *RequestGormRepository) ListByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Request, error) {

	var reqs []models.Request
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *RequestGormRepository) ListByProvider(
	ctx context.Context,
	providerID uint,
) ([]models.Request, error) {

	var reqs []models.Request
	if err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *RequestGormRepository) ListByClientAndPaid(
	ctx context.Context,
	clientID uint,
	paid string,
) ([]models.Request, error) {

	var reqs []models.Request
	if err := r.db.WithContext(ctx).
		Where("client_id = ? AND paid = ?", clientID, paid).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// Compile-time check
var _ domain.Repository = (*RequestGormRepository)(nil)
