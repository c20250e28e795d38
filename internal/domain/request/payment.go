package request

import (
	"regexp"
	"time"

	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

// ===============================
// Payment sub-state
// ===============================

const (
	PaidNone   = ""
	PaidUnpaid = "unpaid"
	PaidPaid   = "paid"
)

const (
	MethodCard = "Card"
	MethodUPI  = "UPI"
)

var (
	cardPattern = regexp.MustCompile(`^\d{16}$`)
	upiPattern  = regexp.MustCompile(`^[\w.-]+@[\w.-]+$`)
)

// ValidatePayment checks the method and its method-specific identifier.
// Cards must be exactly sixteen digits; UPI handles must have a local part
// and a domain.
func ValidatePayment(method, cardNumber, upiID string) error {
	switch method {
	case MethodCard:
		if !cardPattern.MatchString(cardNumber) {
			return httperr.ErrBusiness("invalid_card_number")
		}
	case MethodUPI:
		if !upiPattern.MatchString(upiID) {
			return httperr.ErrBusiness("invalid_upi_id")
		}
	default:
		return httperr.ErrBusiness("invalid_payment_method")
	}
	return nil
}

// MarkPaid records a validated payment against the request. Payment is only
// due once the provider has accepted (paid == "unpaid"); a second payment is
// a conflict.
func MarkPaid(req *models.Request, method, cardNumber, upiID string, now time.Time) error {
	switch req.Paid {
	case PaidPaid:
		return httperr.ErrBusiness("payment_already_recorded")
	case PaidNone:
		return httperr.ErrBusiness("payment_not_due")
	}

	if err := ValidatePayment(method, cardNumber, upiID); err != nil {
		return err
	}

	req.Paid = PaidPaid
	req.PaymentMethod = method
	req.CardNumber = cardNumber
	req.UpiID = upiID
	req.PaidAt = &now
	return nil
}
