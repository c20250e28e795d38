package request

import (
	"github.com/smartserve-app/smartserve-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func statusOf(req *models.Request) StatusPair {
	return StatusPair{User: req.UserStatus, Service: req.ServiceStatus}
}

func apply(req *models.Request, to StatusPair) {
	req.UserStatus = to.User
	req.ServiceStatus = to.Service
}

func Accept(req *models.Request) error {
	to, err := Transition(statusOf(req), ActionAccept, RoleProvider)
	if err != nil {
		return err
	}

	apply(req, to)
	req.Paid = PaidUnpaid
	return nil
}

func Decline(req *models.Request) error {
	to, err := Transition(statusOf(req), ActionDecline, RoleProvider)
	if err != nil {
		return err
	}

	apply(req, to)
	return nil
}

func Complete(req *models.Request) error {
	to, err := Transition(statusOf(req), ActionComplete, RoleProvider)
	if err != nil {
		return err
	}

	apply(req, to)
	return nil
}

// Rebook re-enters the queue with the original snapshot; the provider's
// current price and description are deliberately not re-copied.
func Rebook(req *models.Request) error {
	to, err := Transition(statusOf(req), ActionRebook, RoleClient)
	if err != nil {
		return err
	}

	apply(req, to)
	return nil
}

// CanCancel reports whether the client may still hard-delete the request.
func CanCancel(req *models.Request) error {
	_, err := Transition(statusOf(req), ActionCancel, RoleClient)
	return err
}

// PendingReview seeds the review stub created when a provider marks the
// request completed. Rating and comment stay empty until the client fills
// them in.
func PendingReview(req *models.Request) *models.Review {
	return &models.Review{
		ClientID:   req.ClientID,
		ProviderID: req.ProviderID,
		RequestID:  req.ID,

		ServiceName:  req.ServiceName,
		ProviderName: req.ProviderName,
		ClientName:   req.ClientName,
		ClientPhoto:  req.ClientPhoto,
	}
}
