package session

import (
	"sync"
	"time"

	"trustmap/internal/canvas"
	"trustmap/internal/models/api_models"
	"trustmap/internal/models/request_models"
	"trustmap/internal/models/response_models"
)

// Session is one user's map view: filter state, the append-only searched
// places, the favorite-id set, the current selection and the canvas the
// markers live on. Everything place-shaped still comes from the location
// store; a session only holds what the view itself owns.
type Session struct {
	ID string

	mu             sync.RWMutex
	filters        request_models.FilterState
	searchedPlaces []api_models.SearchedPlace
	favorites      map[string]struct{}
	selection      *response_models.SelectionDetails
	selectionGen   uint64
	canvas         *canvas.InMemoryCanvas
	lastSeen       time.Time
}

func newSession(id string) *Session {
	return &Session{
		ID:        id,
		favorites: make(map[string]struct{}),
		canvas:    canvas.NewInMemoryCanvas(),
		lastSeen:  time.Now(),
	}
}

func (s *Session) Canvas() canvas.MapCanvas { return s.canvas }

func (s *Session) SetFilters(f request_models.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

func (s *Session) Filters() request_models.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// AddSearchedPlace appends; searched places are never deduplicated or removed
// for the lifetime of the session.
func (s *Session) AddSearchedPlace(p api_models.SearchedPlace) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchedPlaces = append(s.searchedPlaces, p)
}

func (s *Session) SearchedPlaces() []api_models.SearchedPlace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]api_models.SearchedPlace, len(s.searchedPlaces))
	copy(out, s.searchedPlaces)
	return out
}

func (s *Session) SearchedPlace(key string) (api_models.SearchedPlace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.searchedPlaces) - 1; i >= 0; i-- {
		if s.searchedPlaces[i].ID == key {
			return s.searchedPlaces[i], true
		}
	}
	return api_models.SearchedPlace{}, false
}

func (s *Session) ReplaceFavorites(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.favorites[id] = struct{}{}
	}
}

func (s *Session) HasFavorite(branchID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.favorites[branchID]
	return ok
}

func (s *Session) AddFavorite(branchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites[branchID] = struct{}{}
}

func (s *Session) RemoveFavorite(branchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.favorites, branchID)
}

func (s *Session) FavoriteIDs() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]struct{}, len(s.favorites))
	for id := range s.favorites {
		out[id] = struct{}{}
	}
	return out
}

// NextSelectionGeneration advances the selection generation and drops the
// previous selection's result sets so a new selection never shows stale data.
func (s *Session) NextSelectionGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectionGen++
	s.selection = nil
	return s.selectionGen
}

// ApplySelection installs enrichment results, unless the generation advanced
// while they were in flight; stale results are discarded.
func (s *Session) ApplySelection(details *response_models.SelectionDetails) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if details.Generation != s.selectionGen {
		return false
	}
	s.selection = details
	return true
}

func (s *Session) Selection() *response_models.SelectionDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// ClearSelection returns the state machine to None and blanks the secondary
// result sets.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectionGen++
	s.selection = nil
}

func (s *Session) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

func (s *Session) expired(ttl time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.lastSeen) > ttl
}
