package services

import (
	"context"
	"log"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"trustmap/internal/models/api_models"
	"trustmap/internal/models/request_models"
	"trustmap/internal/models/response_models"
	"trustmap/internal/upstream"
	"trustmap/pkg/utils"
)

// NoRatingsDisplay is what an empty review set averages to. Never a zero
// division, never NaN.
const NoRatingsDisplay = "No ratings"

const reviewPageSize = 100

type ReviewServiceInterface interface {
	BranchReviews(branchID string, ctx context.Context) (response_models.ReviewList, error)
	UserReviews(ctx context.Context) ([]api_models.Review, error)
	Submit(review request_models.CreateReviewRequest, ctx context.Context) error
	// Update replaces a review by deleting the old one and creating the new
	// one, which is how the upstream expects edits to happen.
	Update(reviewID string, review request_models.CreateReviewRequest, ctx context.Context) error
	Delete(reviewID string, ctx context.Context) error
}

type reviewService struct {
	reviewClient upstream.ReviewClient
}

func NewReviewService(reviewClient upstream.ReviewClient) ReviewServiceInterface {
	return &reviewService{reviewClient: reviewClient}
}

func (s *reviewService) BranchReviews(branchID string, ctx context.Context) (response_models.ReviewList, error) {
	reviews, err := s.reviewClient.GetBranchReviews(ctx, branchID, 1, reviewPageSize)
	if err != nil {
		log.Printf("Error fetching reviews for branch %s: %v", branchID, err)
		return response_models.ReviewList{}, err
	}
	return response_models.ReviewList{
		Reviews:       reviews,
		AverageRating: AverageRatingDisplay(reviews),
		StarDisplay:   StarDisplay(reviews),
	}, nil
}

func (s *reviewService) UserReviews(ctx context.Context) ([]api_models.Review, error) {
	reviews, err := s.reviewClient.GetUserReviews(ctx)
	if err != nil {
		log.Printf("Error fetching user reviews: %v", err)
		return nil, err
	}
	return reviews, nil
}

func (s *reviewService) Submit(review request_models.CreateReviewRequest, ctx context.Context) error {
	if review.Rating < 1 || review.Rating > 5 {
		return utils.ErrInvalidRating
	}
	return s.reviewClient.CreateReview(ctx, review)
}

func (s *reviewService) Update(reviewID string, review request_models.CreateReviewRequest, ctx context.Context) error {
	if review.Rating < 1 || review.Rating > 5 {
		return utils.ErrInvalidRating
	}
	if err := s.reviewClient.DeleteReview(ctx, reviewID); err != nil {
		return err
	}
	return s.reviewClient.CreateReview(ctx, review)
}

func (s *reviewService) Delete(reviewID string, ctx context.Context) error {
	return s.reviewClient.DeleteReview(ctx, reviewID)
}

// AverageRatingDisplay renders the arithmetic mean of the ratings to one
// decimal ("4.0"), or the no-ratings sentinel for an empty set.
func AverageRatingDisplay(reviews []api_models.Review) string {
	if len(reviews) == 0 {
		return NoRatingsDisplay
	}
	sum := decimal.Zero
	for _, r := range reviews {
		sum = sum.Add(decimal.NewFromInt(int64(r.Rating)))
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(reviews))))
	return avg.StringFixed(1)
}

// StarDisplay buckets the average into five glyphs: full stars, a half star
// when the fraction reaches .5, empty stars for the rest.
func StarDisplay(reviews []api_models.Review) string {
	if len(reviews) == 0 {
		return strings.Repeat("☆", 5)
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	avg := float64(total) / float64(len(reviews))
	full := int(math.Floor(avg))
	hasHalf := avg-float64(full) >= 0.5

	var sb strings.Builder
	for i := 0; i < 5; i++ {
		switch {
		case i < full:
			sb.WriteString("★")
		case i == full && hasHalf:
			sb.WriteString("½")
		default:
			sb.WriteString("☆")
		}
	}
	return sb.String()
}
