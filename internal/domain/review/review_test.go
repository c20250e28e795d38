package review

import (
	"testing"

	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

func TestValidateRating(t *testing.T) {
	for _, rating := range []int{0, 1, 5} {
		if err := ValidateRating(rating); err != nil {
			t.Fatalf("rating %d: expected valid, got %v", rating, err)
		}
	}

	for _, rating := range []int{-1, 6, 100} {
		err := ValidateRating(rating)
		if code, ok := httperr.BusinessCode(err); !ok || code != "invalid_rating" {
			t.Fatalf("rating %d: expected invalid_rating, got %v", rating, err)
		}
	}
}

func TestSubmit(t *testing.T) {
	rev := &models.Review{}

	if err := Submit(rev, 4, "great work"); err != nil {
		t.Fatalf("expected submit, got %v", err)
	}
	if !rev.Completed || rev.Rating != 4 || rev.Comment != "great work" {
		t.Fatalf("review not filled in: %+v", rev)
	}

	err := Submit(rev, 5, "changed my mind")
	if code, ok := httperr.BusinessCode(err); !ok || code != "review_already_submitted" {
		t.Fatalf("expected review_already_submitted, got %v", err)
	}
	if rev.Rating != 4 {
		t.Fatalf("second submit must not overwrite, got rating %d", rev.Rating)
	}
}

func TestFold_RoundedMean(t *testing.T) {
	p := &models.Provider{}

	// 5, 4, 4 -> mean 4.33 -> 4
	for _, rating := range []int{5, 4, 4} {
		Fold(p, rating)
	}
	if p.ReviewCount != 3 || p.RatingTotal != 13 {
		t.Fatalf("unexpected aggregate: total=%d count=%d", p.RatingTotal, p.ReviewCount)
	}
	if p.Rating != 4 {
		t.Fatalf("expected rounded mean 4, got %d", p.Rating)
	}

	// 5, 4, 4, 5 -> mean 4.5 -> 5
	Fold(p, 5)
	if p.Rating != 5 {
		t.Fatalf("expected rounded mean 5, got %d", p.Rating)
	}
}

func TestFold_SingleRating(t *testing.T) {
	p := &models.Provider{}
	Fold(p, 3)

	if p.Rating != 3 || p.ReviewCount != 1 || p.RatingTotal != 3 {
		t.Fatalf("unexpected aggregate: %+v", p)
	}
}
