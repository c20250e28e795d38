package review

import (
	"math"

	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

// Ratings are whole stars, 0 through 5.
func ValidateRating(rating int) error {
	if rating < 0 || rating > 5 {
		return httperr.ErrBusiness("invalid_rating")
	}
	return nil
}

// Submit fills in a pending review. A review is submitted exactly once.
func Submit(rev *models.Review, rating int, comment string) error {
	if rev.Completed {
		return httperr.ErrBusiness("review_already_submitted")
	}
	if err := ValidateRating(rating); err != nil {
		return err
	}

	rev.Rating = rating
	rev.Comment = comment
	rev.Completed = true
	return nil
}

// Fold adds a submitted rating to the provider's running aggregate. The
// stored rating is the nearest-integer mean over every folded rating; the
// aggregate is the single source of truth.
func Fold(p *models.Provider, rating int) {
	p.RatingTotal += rating
	p.ReviewCount++
	p.Rating = int(math.Round(float64(p.RatingTotal) / float64(p.ReviewCount)))
}
