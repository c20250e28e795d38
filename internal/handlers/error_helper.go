package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/smartserve-app/smartserve-api/internal/httperr"
)

// Maps business error codes coming out of the domain/usecase layers onto the
// HTTP taxonomy. Anything unrecognized is a 500.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch code {
	case "request_not_found", "review_not_found",
		"provider_not_found", "client_not_found", "room_not_found":
		httperr.NotFound(c, code, "Resource not found.")

	case "request_not_owned", "review_not_owned", "room_not_owned":
		httperr.Forbidden(c, code, "You are not allowed to act on this resource.")

	case "payment_already_recorded", "review_already_submitted":
		httperr.Conflict(c, code, "Already recorded.")

	case "invalid_state":
		httperr.BadRequest(c, code, "The request is not in a state that allows this action.")

	case "invalid_payment_method", "invalid_card_number", "invalid_upi_id",
		"payment_not_due", "invalid_rating", "invalid_paid_filter":
		httperr.BadRequest(c, code, "Invalid input.")

	default:
		httperr.Internal(c, code, "Something went wrong.")
	}
}
