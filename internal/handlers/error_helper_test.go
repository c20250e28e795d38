package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/smartserve-app/smartserve-api/internal/httperr"
)

func TestWriteBusinessError_Taxonomy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		code   string
		status int
	}{
		{"request_not_found", http.StatusNotFound},
		{"review_not_found", http.StatusNotFound},
		{"provider_not_found", http.StatusNotFound},
		{"client_not_found", http.StatusNotFound},
		{"room_not_found", http.StatusNotFound},
		{"request_not_owned", http.StatusForbidden},
		{"review_not_owned", http.StatusForbidden},
		{"room_not_owned", http.StatusForbidden},
		{"payment_already_recorded", http.StatusConflict},
		{"review_already_submitted", http.StatusConflict},
		{"invalid_state", http.StatusBadRequest},
		{"invalid_payment_method", http.StatusBadRequest},
		{"invalid_card_number", http.StatusBadRequest},
		{"invalid_upi_id", http.StatusBadRequest},
		{"payment_not_due", http.StatusBadRequest},
		{"invalid_rating", http.StatusBadRequest},
		{"invalid_paid_filter", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeBusinessError(c, httperr.ErrBusiness(tc.code))
			if w.Code != tc.status {
				t.Fatalf("code %s: expected %d, got %d", tc.code, tc.status, w.Code)
			}
		})
	}
}

func TestWriteBusinessError_Unrecognized(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Plain errors and unknown business codes both fall through to 500.
	for _, err := range []error{errors.New("boom"), httperr.ErrBusiness("mystery_code")} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		writeBusinessError(c, err)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500 for %v, got %d", err, w.Code)
		}
	}
}
