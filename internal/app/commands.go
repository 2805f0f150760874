package app

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"

	"github.com/cmeynet/holbertonschool-hbnb/internal/domain"
)

// ReviewForm carries the raw form input. Rating arrives as the select's
// string value and is parsed after validation.
type ReviewForm struct {
	Text    string `validate:"required"`
	Rating  string `validate:"required,number"`
	PlaceID string `validate:"required"`
}

type ReviewService struct {
	api      domain.PlacesAPI
	validate *validator.Validate
	inflight singleflight.Group
}

func NewReviewService(api domain.PlacesAPI) *ReviewService {
	return &ReviewService{api: api, validate: validator.New()}
}

// Submit validates the form and posts the review. Duplicate submissions for
// the same session and place while one is in flight collapse into the first
// call instead of posting twice.
func (s *ReviewService) Submit(ctx context.Context, sess domain.Session, form ReviewForm) error {
	if err := s.validate.Struct(form); err != nil {
		return &domain.ReviewError{Status: 0, Message: "text and rating are required"}
	}
	rating, err := strconv.Atoi(form.Rating)
	if err != nil || rating < 1 || rating > 5 {
		return &domain.ReviewError{Status: 0, Message: "rating must be between 1 and 5"}
	}

	key := sess.ID + "|" + form.PlaceID
	_, submitErr, _ := s.inflight.Do(key, func() (any, error) {
		return nil, s.api.SubmitReview(ctx, sess.Token, domain.Review{
			Text:    form.Text,
			Rating:  rating,
			PlaceID: form.PlaceID,
		})
	})
	return submitErr
}
