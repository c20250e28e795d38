package httpresp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestOKAndCreated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	OK(c, gin.H{"id": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Created(c, gin.H{"id": 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	List(c, []string{"a", "b"})

	var body ListResponse[string]
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 2 || len(body.Data) != 2 {
		t.Fatalf("unexpected list payload: %+v", body)
	}

	// An empty slice still serializes as data: [].
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	List(c, []string(nil))
	if got := w.Body.String(); got != `{"data":[],"total":0}` {
		t.Fatalf("unexpected empty list payload: %s", got)
	}
}
