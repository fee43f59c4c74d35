package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"trustmap/internal/models/api_models"
	"trustmap/internal/models/response_models"
	"trustmap/internal/session"
	"trustmap/internal/upstream"
	"trustmap/pkg/utils"
)

// SelectionServiceInterface is the selected-location state machine: None or
// Selected(item). Entering Selected fires the three secondary fetches (hours,
// photos, reviews); leaving clears all three result sets.
type SelectionServiceInterface interface {
	Select(sess *session.Session, item api_models.CombinedItem, ctx context.Context) (*response_models.SelectionDetails, error)
	Deselect(sess *session.Session)
	Current(sess *session.Session) (*response_models.SelectionDetails, error)
}

type selectionService struct {
	branchClient upstream.BranchClient
	reviewClient upstream.ReviewClient
}

func NewSelectionService(branchClient upstream.BranchClient, reviewClient upstream.ReviewClient) SelectionServiceInterface {
	return &selectionService{
		branchClient: branchClient,
		reviewClient: reviewClient,
	}
}

// Select advances the session's selection generation, fetches the three
// detail sets concurrently, and installs the result only if no newer
// selection arrived in the meantime. A slow response for an old selection can
// never overwrite a faster, newer one.
func (s *selectionService) Select(sess *session.Session, item api_models.CombinedItem, ctx context.Context) (*response_models.SelectionDetails, error) {
	gen := sess.NextSelectionGeneration()
	details := &response_models.SelectionDetails{
		Item:          item,
		Generation:    gen,
		AverageRating: NoRatingsDisplay,
		StarDisplay:   StarDisplay(nil),
	}

	if !item.IsBranch() {
		// Searched places have no branch behind them; every detail fetch
		// would be asking for an invalid branch id.
		invalid := fmt.Sprintf("Failed to load details for %s: Invalid branch ID provided.", item.Key())
		details.HoursError = invalid
		details.PhotosError = invalid
		details.ReviewsError = invalid
	} else {
		id := item.Branch.ID

		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			details.OpeningHours, details.HoursError = fetchBranchHours(ctx, s.branchClient, id)
		}()
		go func() {
			defer wg.Done()
			details.Photos, details.PhotosError = fetchBranchPhotos(ctx, s.branchClient, id.String())
		}()
		go func() {
			defer wg.Done()
			reviews, err := s.reviewClient.GetBranchReviews(ctx, id.String(), 1, reviewPageSize)
			if err != nil {
				log.Printf("Error fetching reviews for branch %s: %v", id, err)
				details.ReviewsError = fmt.Sprintf("Failed to load reviews: %v", err)
				return
			}
			details.Reviews = reviews
			details.AverageRating = AverageRatingDisplay(reviews)
			details.StarDisplay = StarDisplay(reviews)
		}()
		wg.Wait()
	}

	if !sess.ApplySelection(details) {
		log.Printf("Discarding stale selection result for %s (generation %d)", item.Key(), gen)
		return nil, utils.ErrSelectionSuperseded
	}
	return details, nil
}

func (s *selectionService) Deselect(sess *session.Session) {
	sess.ClearSelection()
}

func (s *selectionService) Current(sess *session.Session) (*response_models.SelectionDetails, error) {
	details := sess.Selection()
	if details == nil {
		return nil, utils.ErrNoSelection
	}
	return details, nil
}
