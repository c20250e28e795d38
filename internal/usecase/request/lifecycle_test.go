package request

import (
	"context"
	"errors"
	"testing"

	"github.com/smartserve-app/smartserve-api/internal/audit"
	domain "github.com/smartserve-app/smartserve-api/internal/domain/request"
	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

// fakeRepo mirrors the conditional-write semantics of the gorm repository:
// state changes only land when the stored row still matches the expected
// prior state.
type fakeRepo struct {
	clients   map[uint]*models.Client
	providers map[uint]*models.Provider
	requests  map[uint]*models.Request
	reviews   []*models.Review
	nextID    uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:   map[uint]*models.Client{},
		providers: map[uint]*models.Provider{},
		requests:  map[uint]*models.Request{},
	}
}

func (f *fakeRepo) GetClientByID(_ context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *c
	return &cp, nil
}

func (f *fakeRepo) GetProviderByID(_ context.Context, id uint) (*models.Provider, error) {
	p, ok := f.providers[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepo) CreateRequest(_ context.Context, req *models.Request) error {
	f.nextID++
	req.ID = f.nextID
	cp := *req
	f.requests[req.ID] = &cp
	return nil
}

func (f *fakeRepo) GetRequestByID(_ context.Context, id uint) (*models.Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRepo) UpdateTransition(_ context.Context, req *models.Request, from domain.StatusPair) error {
	stored, ok := f.requests[req.ID]
	if !ok || stored.UserStatus != from.User || stored.ServiceStatus != from.Service {
		return httperr.ErrBusiness("invalid_state")
	}
	stored.UserStatus = req.UserStatus
	stored.ServiceStatus = req.ServiceStatus
	stored.Paid = req.Paid
	return nil
}

func (f *fakeRepo) CompleteWithReview(ctx context.Context, req *models.Request, from domain.StatusPair, review *models.Review) error {
	if err := f.UpdateTransition(ctx, req, from); err != nil {
		return err
	}
	f.nextID++
	review.ID = f.nextID
	cp := *review
	f.reviews = append(f.reviews, &cp)
	return nil
}

func (f *fakeRepo) DeleteRequest(_ context.Context, requestID uint) error {
	stored, ok := f.requests[requestID]
	if !ok || stored.UserStatus != domain.UserPending || stored.ServiceStatus != domain.ServiceNone {
		return httperr.ErrBusiness("invalid_state")
	}
	delete(f.requests, requestID)
	return nil
}

func (f *fakeRepo) RecordPayment(_ context.Context, req *models.Request) error {
	stored, ok := f.requests[req.ID]
	if !ok || stored.Paid != domain.PaidUnpaid {
		return httperr.ErrBusiness("payment_already_recorded")
	}
	stored.Paid = req.Paid
	stored.PaymentMethod = req.PaymentMethod
	stored.CardNumber = req.CardNumber
	stored.UpiID = req.UpiID
	stored.PaidAt = req.PaidAt
	return nil
}

func (f *fakeRepo) ListByClient(_ context.Context, clientID uint) ([]models.Request, error) {
	var out []models.Request
	for _, r := range f.requests {
		if r.ClientID == clientID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByProvider(_ context.Context, providerID uint) ([]models.Request, error) {
	var out []models.Request
	for _, r := range f.requests {
		if r.ProviderID == providerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByClientAndPaid(_ context.Context, clientID uint, paid string) ([]models.Request, error) {
	var out []models.Request
	for _, r := range f.requests {
		if r.ClientID == clientID && r.Paid == paid {
			out = append(out, *r)
		}
	}
	return out, nil
}

// ======================================================
// FIXTURE
// ======================================================

const (
	clientID   = uint(1)
	providerID = uint(2)
)

func seededRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.clients[clientID] = &models.Client{
		ID:           clientID,
		FullName:     "Alex Mercer",
		Location:     "Riverside",
		ProfilePhoto: "https://cdn.example.com/alex.webp",
	}
	repo.providers[providerID] = &models.Provider{
		ID:          providerID,
		FullName:    "Dana Cole",
		Category:    "home",
		SubCategory: "Plumbing",
		Description: "Emergency repairs and installs",
		Price:       75,
	}
	return repo
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func expectBusiness(t *testing.T, err error, want string) {
	t.Helper()
	code, ok := httperr.BusinessCode(err)
	if !ok || code != want {
		t.Fatalf("expected %s, got %v", want, err)
	}
}

// ======================================================
// LIFECYCLE
// ======================================================

func TestLifecycle_BookAcceptCompletePayReview(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	disp := testDispatcher()

	createUC := NewCreateRequest(repo, disp)
	acceptUC := NewAcceptRequest(repo, disp)
	completeUC := NewCompleteRequest(repo, disp)
	payUC := NewRecordPayment(repo, disp)

	// Book: the provider's current terms are snapshotted.
	req, err := createUC.Execute(ctx, clientID, providerID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if req.UserStatus != domain.UserPending || req.ServiceStatus != domain.ServiceNone {
		t.Fatalf("new request must be pending, got %q/%q", req.UserStatus, req.ServiceStatus)
	}
	if req.ServiceName != "Plumbing" || req.ProviderName != "Dana Cole" || req.Price != 75 {
		t.Fatalf("provider terms not snapshotted: %+v", req)
	}
	if req.ClientName != "Alex Mercer" || req.ClientLocation != "Riverside" {
		t.Fatalf("client details not snapshotted: %+v", req)
	}

	// Payment is not due before acceptance.
	_, err = payUC.Execute(ctx, RecordPaymentInput{
		ClientID: clientID, RequestID: req.ID,
		Method: domain.MethodCard, CardNumber: "4111111111111111",
	})
	expectBusiness(t, err, "payment_not_due")

	// Only the booked provider may accept.
	_, err = acceptUC.Execute(ctx, providerID+1, req.ID)
	expectBusiness(t, err, "request_not_owned")

	req, err = acceptUC.Execute(ctx, providerID, req.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if req.UserStatus != domain.UserPursuing || req.ServiceStatus != domain.ServiceAccepted {
		t.Fatalf("expected pursuing/accepted, got %q/%q", req.UserStatus, req.ServiceStatus)
	}
	if req.Paid != domain.PaidUnpaid {
		t.Fatalf("accepting must open the payment, got %q", req.Paid)
	}

	// Accepting twice is rejected by the guard.
	_, err = acceptUC.Execute(ctx, providerID, req.ID)
	expectBusiness(t, err, "invalid_state")

	// Complete seeds the pending review alongside the status flip.
	req, err = completeUC.Execute(ctx, providerID, req.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if req.UserStatus != domain.UserCompleted || req.ServiceStatus != domain.ServiceCompleted {
		t.Fatalf("expected completed/completed, got %q/%q", req.UserStatus, req.ServiceStatus)
	}
	if len(repo.reviews) != 1 {
		t.Fatalf("expected one pending review, got %d", len(repo.reviews))
	}
	stub := repo.reviews[0]
	if stub.Completed || stub.Rating != 0 {
		t.Fatalf("review stub must start pending: %+v", stub)
	}
	if stub.RequestID != req.ID || stub.ClientID != clientID || stub.ProviderID != providerID {
		t.Fatalf("review stub not bound to the request: %+v", stub)
	}

	// Pay, then verify the stored row.
	req, err = payUC.Execute(ctx, RecordPaymentInput{
		ClientID: clientID, RequestID: req.ID,
		Method: domain.MethodCard, CardNumber: "4111111111111111",
	})
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if req.Paid != domain.PaidPaid || req.PaidAt == nil {
		t.Fatalf("payment not recorded: %+v", req)
	}

	stored, _ := repo.GetRequestByID(ctx, req.ID)
	if stored.Paid != domain.PaidPaid || stored.PaymentMethod != domain.MethodCard {
		t.Fatalf("payment not persisted: %+v", stored)
	}

	// Double payment is a conflict.
	_, err = payUC.Execute(ctx, RecordPaymentInput{
		ClientID: clientID, RequestID: req.ID,
		Method: domain.MethodCard, CardNumber: "4111111111111111",
	})
	expectBusiness(t, err, "payment_already_recorded")
}

func TestLifecycle_DeclineIsTerminal(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	disp := testDispatcher()

	req, err := NewCreateRequest(repo, disp).Execute(ctx, clientID, providerID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	req, err = NewDeclineRequest(repo, disp).Execute(ctx, providerID, req.ID)
	if err != nil {
		t.Fatalf("decline: %v", err)
	}
	if req.UserStatus != domain.UserDeclined || req.ServiceStatus != domain.ServiceRejected {
		t.Fatalf("expected declined/rejected, got %q/%q", req.UserStatus, req.ServiceStatus)
	}

	// Nothing moves a declined request.
	_, err = NewAcceptRequest(repo, disp).Execute(ctx, providerID, req.ID)
	expectBusiness(t, err, "invalid_state")

	_, err = NewRebookRequest(repo, disp).Execute(ctx, clientID, req.ID)
	expectBusiness(t, err, "invalid_state")
}

func TestLifecycle_RebookReentersQueue(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	disp := testDispatcher()

	req, err := NewCreateRequest(repo, disp).Execute(ctx, clientID, providerID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := NewAcceptRequest(repo, disp).Execute(ctx, providerID, req.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	// Rebooking is only legal once the work is done.
	rebookUC := NewRebookRequest(repo, disp)
	_, err = rebookUC.Execute(ctx, clientID, req.ID)
	expectBusiness(t, err, "invalid_state")

	if _, err := NewCompleteRequest(repo, disp).Execute(ctx, providerID, req.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// Raise the provider's price; the rebooked request keeps the old terms.
	repo.providers[providerID].Price = 120

	req, err = rebookUC.Execute(ctx, clientID, req.ID)
	if err != nil {
		t.Fatalf("rebook: %v", err)
	}
	if req.UserStatus != domain.UserPending || req.ServiceStatus != domain.ServiceNone {
		t.Fatalf("expected pending, got %q/%q", req.UserStatus, req.ServiceStatus)
	}
	if req.Price != 75 {
		t.Fatalf("rebooking must keep the booked price, got %v", req.Price)
	}

	// Only the booking client may rebook.
	_, err = rebookUC.Execute(ctx, clientID+1, req.ID)
	expectBusiness(t, err, "request_not_owned")
}

func TestLifecycle_CancelOnlyWhilePending(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	disp := testDispatcher()

	cancelUC := NewCancelRequest(repo, disp)

	req, err := NewCreateRequest(repo, disp).Execute(ctx, clientID, providerID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Someone else's request cannot be cancelled.
	expectBusiness(t, cancelUC.Execute(ctx, clientID+1, req.ID), "request_not_owned")

	if err := cancelUC.Execute(ctx, clientID, req.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// The row is gone.
	expectBusiness(t, cancelUC.Execute(ctx, clientID, req.ID), "request_not_found")

	// Once accepted, cancellation is closed.
	req, err = NewCreateRequest(repo, disp).Execute(ctx, clientID, providerID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := NewAcceptRequest(repo, disp).Execute(ctx, providerID, req.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	expectBusiness(t, cancelUC.Execute(ctx, clientID, req.ID), "invalid_state")
}

func TestListRequests_PaidFilter(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	disp := testDispatcher()

	listUC := NewListRequests(repo)

	first, err := NewCreateRequest(repo, disp).Execute(ctx, clientID, providerID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := NewCreateRequest(repo, disp).Execute(ctx, clientID, providerID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	acceptUC := NewAcceptRequest(repo, disp)
	for _, id := range []uint{first.ID, second.ID} {
		if _, err := acceptUC.Execute(ctx, providerID, id); err != nil {
			t.Fatalf("accept %d: %v", id, err)
		}
	}

	if _, err := NewRecordPayment(repo, disp).Execute(ctx, RecordPaymentInput{
		ClientID: clientID, RequestID: first.ID,
		Method: domain.MethodUPI, UpiID: "alex@upi",
	}); err != nil {
		t.Fatalf("pay: %v", err)
	}

	paid, err := listUC.Payments(ctx, clientID, domain.PaidPaid)
	if err != nil {
		t.Fatalf("list paid: %v", err)
	}
	if len(paid) != 1 || paid[0].ID != first.ID {
		t.Fatalf("expected only the paid request, got %+v", paid)
	}

	unpaid, err := listUC.Payments(ctx, clientID, domain.PaidUnpaid)
	if err != nil {
		t.Fatalf("list unpaid: %v", err)
	}
	if len(unpaid) != 1 || unpaid[0].ID != second.ID {
		t.Fatalf("expected only the unpaid request, got %+v", unpaid)
	}

	_, err = listUC.Payments(ctx, clientID, "pending")
	expectBusiness(t, err, "invalid_paid_filter")
}
