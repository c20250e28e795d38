package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/httpresp"
	"github.com/smartserve-app/smartserve-api/internal/middleware"
	"github.com/smartserve-app/smartserve-api/internal/models"
	ucRequest "github.com/smartserve-app/smartserve-api/internal/usecase/request"
)

// ======================================================
// HANDLER
// ======================================================

type RequestHandler struct {
	createUC   *ucRequest.CreateRequest
	acceptUC   *ucRequest.AcceptRequest
	declineUC  *ucRequest.DeclineRequest
	completeUC *ucRequest.CompleteRequest
	rebookUC   *ucRequest.RebookRequest
	cancelUC   *ucRequest.CancelRequest
	payUC      *ucRequest.RecordPayment
	listUC     *ucRequest.ListRequests
}

func NewRequestHandler(
	createUC *ucRequest.CreateRequest,
	acceptUC *ucRequest.AcceptRequest,
	declineUC *ucRequest.DeclineRequest,
	completeUC *ucRequest.CompleteRequest,
	rebookUC *ucRequest.RebookRequest,
	cancelUC *ucRequest.CancelRequest,
	payUC *ucRequest.RecordPayment,
	listUC *ucRequest.ListRequests,
) *RequestHandler {
	return &RequestHandler{
		createUC:   createUC,
		acceptUC:   acceptUC,
		declineUC:  declineUC,
		completeUC: completeUC,
		rebookUC:   rebookUC,
		cancelUC:   cancelUC,
		payUC:      payUC,
		listUC:     listUC,
	}
}

// ======================================================
// REQUESTS / VIEWS
// ======================================================

type CreateRequestRequest struct {
	ProviderID uint `json:"provider_id" binding:"required"`
}

type RecordPaymentRequest struct {
	Method     string `json:"method" binding:"required"`
	CardNumber string `json:"card_number"`
	UpiID      string `json:"upi_id"`
}

// The card number itself never leaves the server; responses carry the last
// four digits only.
type RequestView struct {
	models.Request
	CardLast4 string `json:"card_last4,omitempty"`
}

func requestView(req *models.Request) RequestView {
	return RequestView{Request: *req, CardLast4: req.CardLast4()}
}

func requestViews(reqs []models.Request) []RequestView {
	views := make([]RequestView, 0, len(reqs))
	for i := range reqs {
		views = append(views, requestView(&reqs[i]))
	}
	return views
}

// ======================================================
// HELPERS
// ======================================================

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// CREATE (client)
// ======================================================

func (h *RequestHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), clientID, req.ProviderID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, requestView(created))
}

// ======================================================
// LIFECYCLE (provider)
// ======================================================

func (h *RequestHandler) Accept(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := pathID(c)
	if !ok {
		return
	}

	req, err := h.acceptUC.Execute(c.Request.Context(), providerID, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, requestView(req))
}

func (h *RequestHandler) Decline(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := pathID(c)
	if !ok {
		return
	}

	req, err := h.declineUC.Execute(c.Request.Context(), providerID, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, requestView(req))
}

func (h *RequestHandler) Complete(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := pathID(c)
	if !ok {
		return
	}

	req, err := h.completeUC.Execute(c.Request.Context(), providerID, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, requestView(req))
}

// ======================================================
// LIFECYCLE (client)
// ======================================================

func (h *RequestHandler) Rebook(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := pathID(c)
	if !ok {
		return
	}

	req, err := h.rebookUC.Execute(c.Request.Context(), clientID, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, requestView(req))
}

func (h *RequestHandler) Cancel(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), clientID, id); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// PAYMENT (client)
// ======================================================

func (h *RequestHandler) Pay(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	paid, err := h.payUC.Execute(c.Request.Context(), ucRequest.RecordPaymentInput{
		ClientID:   clientID,
		RequestID:  id,
		Method:     req.Method,
		CardNumber: req.CardNumber,
		UpiID:      req.UpiID,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, requestView(paid))
}

// ======================================================
// LISTINGS
// ======================================================

func (h *RequestHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	// The paid filter is a client-side view; anyone else asking for it is
	// rejected, not silently served the unfiltered list.
	if paid := c.Query("paid"); paid != "" {
		if role != middleware.RoleClient {
			writeBusinessError(c, httperr.ErrBusiness("invalid_paid_filter"))
			return
		}
		reqs, err := h.listUC.Payments(c.Request.Context(), userID, paid)
		if err != nil {
			writeBusinessError(c, err)
			return
		}
		httpresp.List(c, requestViews(reqs))
		return
	}

	var (
		reqs []models.Request
		err  error
	)
	if role == middleware.RoleProvider {
		reqs, err = h.listUC.ForProvider(c.Request.Context(), userID)
	} else {
		reqs, err = h.listUC.ForClient(c.Request.Context(), userID)
	}
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, requestViews(reqs))
}
