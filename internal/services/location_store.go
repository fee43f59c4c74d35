package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"trustmap/internal/infra"
	"trustmap/internal/models/api_models"
	"trustmap/internal/upstream"
	"trustmap/pkg/utils"
)

type LocationStoreInterface interface {
	// LoadAll pulls the full branch list and enriches every record with its
	// opening hours, photos and accessibility tier. A secondary fetch failing
	// degrades that one record; it never fails the load.
	LoadAll(ctx context.Context) ([]api_models.Branch, error)
	Branches() []api_models.Branch
	GetBranch(id string) (*api_models.Branch, bool)
}

type locationStore struct {
	branchClient upstream.BranchClient

	mu       sync.RWMutex
	branches []api_models.Branch
	byID     map[string]int
}

func NewLocationStore(branchClient upstream.BranchClient) LocationStoreInterface {
	return &locationStore{
		branchClient: branchClient,
		byID:         make(map[string]int),
	}
}

func (s *locationStore) LoadAll(ctx context.Context) ([]api_models.Branch, error) {
	branches, err := s.branchClient.GetAllBranches(ctx)
	if err != nil {
		log.Printf("Error fetching branches: %v", err)
		return nil, err
	}
	if len(branches) == 0 {
		return nil, utils.ErrNoBranches
	}

	// One goroutine per branch, hours and photos fetched independently with
	// their failures captured on the record. No cap; the expected dataset is
	// small enough that a burst is acceptable.
	var wg sync.WaitGroup
	for i := range branches {
		wg.Add(1)
		go func(b *api_models.Branch) {
			defer wg.Done()
			s.enrich(ctx, b)
		}(&branches[i])
	}
	wg.Wait()

	s.mu.Lock()
	s.branches = branches
	s.byID = make(map[string]int, len(branches))
	for i := range branches {
		s.byID[branches[i].ID.String()] = i
	}
	s.mu.Unlock()

	return s.Branches(), nil
}

func (s *locationStore) enrich(ctx context.Context, b *api_models.Branch) {
	b.Classify()
	b.OpeningHours, b.HoursError = fetchBranchHours(ctx, s.branchClient, b.ID)
	b.Photos, b.PhotosError = fetchBranchPhotos(ctx, s.branchClient, b.ID.String())
}

// fetchBranchHours returns the sorted hours plus an advisory string when the
// fetch degraded. The recognized "none defined" answer and an empty list both
// collapse into the single sentinel record, so renderers can tell "fetched,
// none exist" apart from "never fetched".
func fetchBranchHours(ctx context.Context, client upstream.BranchClient, branchID api_models.FlexID) ([]api_models.OpeningHour, string) {
	id := branchID.String()
	hours, err := client.GetBranchOpeningHours(ctx, id)
	switch {
	case errors.Is(err, utils.ErrNoOpeningHours):
		return []api_models.OpeningHour{api_models.SentinelOpeningHour(branchID)},
			fmt.Sprintf("Failed to load opening hours for branch %s: No data found.", id)
	case err != nil:
		log.Printf("Error fetching hours for branch %s: %v", id, err)
		return nil, fmt.Sprintf("Failed to load hours for branch %s: %v.", id, err)
	case len(hours) == 0:
		return []api_models.OpeningHour{api_models.SentinelOpeningHour(branchID)},
			fmt.Sprintf("Failed to load opening hours for branch %s: No data found.", id)
	default:
		return hours, ""
	}
}

func fetchBranchPhotos(ctx context.Context, client upstream.BranchClient, id string) ([]api_models.Photo, string) {
	photos, err := client.GetBranchPhotos(ctx, id)
	switch {
	case err != nil:
		log.Printf("Error fetching photos for branch %s: %v", id, err)
		var ue *infra.UpstreamError
		if errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound {
			return nil, fmt.Sprintf("Failed to load photos for branch %s: No data found.", id)
		}
		return nil, fmt.Sprintf("Failed to load photos for branch %s: %v.", id, err)
	case len(photos) == 0:
		return []api_models.Photo{}, fmt.Sprintf("No photos available for branch %s.", id)
	default:
		return photos, ""
	}
}

func (s *locationStore) Branches() []api_models.Branch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]api_models.Branch, len(s.branches))
	copy(out, s.branches)
	return out
}

func (s *locationStore) GetBranch(id string) (*api_models.Branch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	at, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	b := s.branches[at]
	return &b, true
}
