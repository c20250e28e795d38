package request

import (
	"testing"
	"time"

	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

func TestValidatePayment_Card(t *testing.T) {
	if err := ValidatePayment(MethodCard, "4111111111111111", ""); err != nil {
		t.Fatalf("expected valid card, got %v", err)
	}

	for _, card := range []string{
		"",
		"411111111111111",   // fifteen digits
		"41111111111111111", // seventeen digits
		"4111-1111-1111-11", // separators
		"4111111111111abc",
	} {
		err := ValidatePayment(MethodCard, card, "")
		if code, ok := httperr.BusinessCode(err); !ok || code != "invalid_card_number" {
			t.Fatalf("card %q: expected invalid_card_number, got %v", card, err)
		}
	}
}

func TestValidatePayment_UPI(t *testing.T) {
	for _, upi := range []string{"alice@upi", "bob.smith@okbank", "a-b_c@pay.io"} {
		if err := ValidatePayment(MethodUPI, "", upi); err != nil {
			t.Fatalf("upi %q: expected valid, got %v", upi, err)
		}
	}

	for _, upi := range []string{"", "aliceupi", "@upi", "alice@", "ali ce@upi"} {
		err := ValidatePayment(MethodUPI, "", upi)
		if code, ok := httperr.BusinessCode(err); !ok || code != "invalid_upi_id" {
			t.Fatalf("upi %q: expected invalid_upi_id, got %v", upi, err)
		}
	}
}

func TestValidatePayment_UnknownMethod(t *testing.T) {
	err := ValidatePayment("Cash", "", "")
	if code, ok := httperr.BusinessCode(err); !ok || code != "invalid_payment_method" {
		t.Fatalf("expected invalid_payment_method, got %v", err)
	}
}

func TestMarkPaid(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	req := &models.Request{Paid: PaidUnpaid}
	if err := MarkPaid(req, MethodCard, "4111111111111111", "", now); err != nil {
		t.Fatalf("expected payment to be recorded, got %v", err)
	}
	if req.Paid != PaidPaid {
		t.Fatalf("expected paid flag, got %q", req.Paid)
	}
	if req.PaymentMethod != MethodCard || req.CardNumber != "4111111111111111" {
		t.Fatalf("payment fields not recorded: %+v", req)
	}
	if req.PaidAt == nil || !req.PaidAt.Equal(now) {
		t.Fatalf("expected paid_at %v, got %v", now, req.PaidAt)
	}
	if got := req.CardLast4(); got != "1111" {
		t.Fatalf("expected last4 1111, got %q", got)
	}
}

func TestMarkPaid_Twice(t *testing.T) {
	req := &models.Request{Paid: PaidPaid}
	err := MarkPaid(req, MethodCard, "4111111111111111", "", time.Now())
	if code, ok := httperr.BusinessCode(err); !ok || code != "payment_already_recorded" {
		t.Fatalf("expected payment_already_recorded, got %v", err)
	}
}

func TestMarkPaid_NotDue(t *testing.T) {
	// Before the provider accepts, there is nothing to pay for.
	req := &models.Request{Paid: PaidNone}
	err := MarkPaid(req, MethodUPI, "", "alice@upi", time.Now())
	if code, ok := httperr.BusinessCode(err); !ok || code != "payment_not_due" {
		t.Fatalf("expected payment_not_due, got %v", err)
	}
}

func TestMarkPaid_InvalidLeavesStateUntouched(t *testing.T) {
	req := &models.Request{Paid: PaidUnpaid}
	if err := MarkPaid(req, MethodCard, "not-a-card", "", time.Now()); err == nil {
		t.Fatalf("expected rejection")
	}
	if req.Paid != PaidUnpaid || req.PaidAt != nil {
		t.Fatalf("rejected payment must not mutate the request: %+v", req)
	}
}
